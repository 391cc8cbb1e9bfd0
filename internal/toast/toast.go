// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package toast carries short-lived notices from an action to the page
// rendered after its redirect. A toast rides in a cookie that is read and
// cleared on the next render, and expires DismissAfter after it was
// created; the browser removes it at that moment unless the user closes
// it first.
package toast

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CookieName is the cookie that holds a pending toast.
const CookieName = "bs_toast"

// DismissAfter is how long a toast stays visible.
const DismissAfter = 5 * time.Second

// Kind classifies toast presentation.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Toast is one notice.
type Toast struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// New creates a toast stamped with now.
func New(kind Kind, message string, now time.Time) Toast {
	return Toast{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   message,
		CreatedAt: now,
	}
}

// Expired reports whether the toast should no longer be shown. It is true
// from exactly DismissAfter onwards.
func (t Toast) Expired(now time.Time) bool {
	return !now.Before(t.CreatedAt.Add(DismissAfter))
}

// Remaining returns how long the toast has left, never negative.
func (t Toast) Remaining(now time.Time) time.Duration {
	d := t.CreatedAt.Add(DismissAfter).Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// RemainingMillis is Remaining in milliseconds, for the dismiss timer in
// the page script.
func (t Toast) RemainingMillis(now time.Time) int64 {
	return t.Remaining(now).Milliseconds()
}

// Set stores a toast for the next page render. secure marks the cookie
// Secure for HTTPS deployments.
func Set(w http.ResponseWriter, t Toast, secure bool) {
	normalized, ok := normalize(t)
	if !ok {
		return
	}
	payload, err := json.Marshal(normalized)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(DismissAfter.Seconds()) + 1,
	})
}

// Success stores a success toast.
func Success(w http.ResponseWriter, message string, secure bool) {
	Set(w, New(KindSuccess, message, time.Now()), secure)
}

// Error stores an error toast.
func Error(w http.ResponseWriter, message string, secure bool) {
	Set(w, New(KindError, message, time.Now()), secure)
}

// Pop reads and clears the pending toast. Returns false when there is
// none, or when it expired before it could be shown.
func Pop(w http.ResponseWriter, r *http.Request, now time.Time) (Toast, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return Toast{}, false
	}
	Dismiss(w)

	t, ok := decode(cookie.Value)
	if !ok || t.Expired(now) {
		return Toast{}, false
	}
	return t, true
}

// Dismiss clears any pending toast.
func Dismiss(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

func decode(raw string) (Toast, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Toast{}, false
	}
	decoded, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return Toast{}, false
	}
	var t Toast
	if err := json.Unmarshal(decoded, &t); err != nil {
		return Toast{}, false
	}
	return normalize(t)
}

func normalize(t Toast) (Toast, bool) {
	t.Message = strings.TrimSpace(t.Message)
	if t.Message == "" || t.CreatedAt.IsZero() {
		return Toast{}, false
	}
	t.Kind = Kind(strings.ToLower(strings.TrimSpace(string(t.Kind))))
	switch t.Kind {
	case KindSuccess, KindInfo, KindWarning, KindError:
		return t, true
	default:
		return Toast{}, false
	}
}
