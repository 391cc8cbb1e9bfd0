// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"runtime/debug"
)

// errorPage is the static root-level fallback shown when a render panics.
// It depends on nothing that could itself fail.
const errorPage = `<!doctype html>
<html lang="en">
<head><meta charset="utf-8"><title>Something went wrong</title></head>
<body style="font-family:sans-serif;text-align:center;padding:4rem 1rem">
<h1>Something went wrong</h1>
<p>We couldn't load this page. Please try again.</p>
<p><a href="%s">Try again</a></p>
</body>
</html>`

// Recoverer catches panics in downstream handlers, logs the stack trace,
// and renders a static error page with a retry link instead of crashing
// the server.
func Recoverer(next http.Handler) http.Handler {
	return recoverWith(next, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		retry := html.EscapeString(r.URL.RequestURI())
		if r.Method != http.MethodGet {
			retry = "/"
		}
		fmt.Fprintf(w, errorPage, retry)
	})
}

// RecovererJSON is Recoverer for the content API: it answers with an
// unsuccessful envelope.
func RecovererJSON(next http.Handler) http.Handler {
	return recoverWith(next, func(w http.ResponseWriter, r *http.Request) {
		WriteJSONError(w, http.StatusInternalServerError, "internal server error")
	})
}

func recoverWith(next http.Handler, respond func(http.ResponseWriter, *http.Request)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				slog.Error("panic recovered",
					"error", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)
				respond(w, r)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
