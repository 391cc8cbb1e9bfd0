// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"

	"bridalstudio/internal/auth"
)

const (
	// ViewerKey is the context key for the site's resolved viewer.
	ViewerKey contextKey = "viewer"

	// LoginPath is where unauthenticated dashboard viewers are sent.
	LoginPath = "/login"

	// DashboardPath is where non-admins are sent from admin-only screens.
	DashboardPath = "/dashboard"
)

// ViewerResolver resolves the dashboard viewer. *auth.Context implements it.
type ViewerResolver interface {
	Resolve(ctx context.Context, r *http.Request) auth.Session
}

// LoadViewer resolves the viewer's session once per request and stores it
// in the context. It never blocks the request.
func LoadViewer(resolver ViewerResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := resolver.Resolve(r.Context(), r)
			ctx := context.WithValue(r.Context(), ViewerKey, s)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireViewer redirects unauthenticated viewers to the login page. A
// viewer still in the loading state is treated as unauthenticated.
func RequireViewer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !ViewerFromCtx(r.Context()).Authenticated() {
			http.Redirect(w, r, LoginPath, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdminViewer redirects non-admin viewers back to the dashboard
// home. This only hides screens; the content API enforces the role.
func RequireAdminViewer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := ViewerFromCtx(r.Context())
		if !s.Authenticated() {
			http.Redirect(w, r, LoginPath, http.StatusSeeOther)
			return
		}
		if !s.IsAdmin() {
			http.Redirect(w, r, DashboardPath, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ViewerFromCtx returns the viewer loaded by LoadViewer. Without one it
// returns an unauthenticated session.
func ViewerFromCtx(ctx context.Context) auth.Session {
	s, ok := ctx.Value(ViewerKey).(auth.Session)
	if !ok {
		return auth.Session{State: auth.StateUnauthenticated}
	}
	return s
}

// WithViewer returns a copy of ctx carrying s.
func WithViewer(ctx context.Context, s auth.Session) context.Context {
	return context.WithValue(ctx, ViewerKey, s)
}
