// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package client

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds. Callers use errors.Is to classify a failure; page loads
// treat all of them the same way.
var (
	ErrTransport    = errors.New("content api unreachable")
	ErrStatus       = errors.New("content api returned an error status")
	ErrNotFound     = errors.New("content api resource not found")
	ErrMalformed    = errors.New("content api returned a malformed payload")
	ErrUnsuccessful = errors.New("content api reported failure")
)

// Error describes one failed call.
type Error struct {
	Op      string // "GET /services"
	Status  int    // HTTP status, 0 when no response was received
	Message string // envelope message, if the API sent one
	Kind    error  // one of the Err* sentinels
	Err     error  // underlying cause, may be nil
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Op, e.Kind)
	if e.Status != 0 {
		msg += fmt.Sprintf(" (status %d)", e.Status)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
// ErrNotFound also matches ErrStatus.
func (e *Error) Unwrap() []error {
	errs := []error{e.Kind}
	if e.Kind == ErrNotFound {
		errs = append(errs, ErrStatus)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// Message returns the API's own explanation for err when there is one,
// otherwise fallback. Used to show validation messages in toasts.
func Message(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return fallback
}

// IsUnauthorized reports whether err is a 401 or 403 from the API.
func IsUnauthorized(err error) bool {
	var e *Error
	return errors.As(err, &e) && (e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden)
}
