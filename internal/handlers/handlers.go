// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers of the studio site.
// Handlers are grouped by concern (public, auth, dashboard) and receive
// their dependencies through the handler struct. They own no data: every
// read and write goes through the content API client, and every page
// load settles to fallback data rather than failing.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"bridalstudio/internal/client"
	"bridalstudio/internal/toast"
)

// errNoData is returned for a successful response that carried no value.
var errNoData = errors.New("empty response")

// value adapts a client getter returning *T to the T a page fetch
// settles into. A nil result counts as a failure.
func value[T any](fn func(context.Context) (*T, error)) func(context.Context) (T, error) {
	return func(ctx context.Context) (T, error) {
		var zero T
		v, err := fn(ctx)
		if err != nil {
			return zero, err
		}
		if v == nil {
			return zero, errNoData
		}
		return *v, nil
	}
}

// flash redirects to target with a toast for the next render.
type flash struct {
	secure bool
}

func (f flash) ok(w http.ResponseWriter, r *http.Request, target, message string) {
	toast.Success(w, message, f.secure)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (f flash) fail(w http.ResponseWriter, r *http.Request, target, message string) {
	toast.Error(w, message, f.secure)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// failAPI logs a failed mutation and redirects with the API's own message
// when it sent one.
func (f flash) failAPI(w http.ResponseWriter, r *http.Request, target, action string, err error) {
	slog.Error(action+" failed", "error", err)
	msg := client.Message(err, "Something went wrong. Please try again.")
	if errors.Is(err, client.ErrTransport) {
		msg = "We couldn't reach the server. Please try again."
	}
	f.fail(w, r, target, msg)
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	return id, err == nil
}

// formText returns a trimmed form value.
func formText(r *http.Request, key string) string {
	return strings.TrimSpace(r.FormValue(key))
}

// formInt parses an integer form value, returning def when it is empty
// and an error when it is not a number.
func formInt(r *http.Request, key string, def int) (int, error) {
	raw := formText(r, key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", key)
	}
	return n, nil
}

// formBool reports whether a checkbox was ticked.
func formBool(r *http.Request, key string) bool {
	switch strings.ToLower(formText(r, key)) {
	case "1", "on", "true", "yes":
		return true
	}
	return false
}

// formLines splits a textarea into trimmed, non-empty lines.
func formLines(r *http.Request, key string) []string {
	var out []string
	for _, line := range strings.Split(r.FormValue(key), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// formUUID parses an optional id. Empty yields nil.
func formUUID(r *http.Request, key string) (*uuid.UUID, error) {
	raw := formText(r, key)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s", key)
	}
	return &id, nil
}

// uploadField sends the file in field to the media endpoint and returns
// its URL, or current when no file was chosen.
func uploadField(ctx context.Context, api *client.Client, r *http.Request, field, current string) (string, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return current, nil
	}
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	defer file.Close()
	if header.Size == 0 {
		return current, nil
	}

	url, err := api.UploadMedia(ctx, header.Filename, file)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", header.Filename, err)
	}
	return url, nil
}
