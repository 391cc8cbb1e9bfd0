// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"bridalstudio/internal/auth"
	"bridalstudio/internal/client"
	"bridalstudio/internal/fallback"
	"bridalstudio/internal/middleware"
	"bridalstudio/internal/models"
	"bridalstudio/internal/render"
)

// Auth groups the login and logout handlers.
type Auth struct {
	renderer *render.Renderer
	auth     *auth.Context
	siteName string
	flash    flash
}

// NewAuth creates the auth handler group.
func NewAuth(renderer *render.Renderer, authCtx *auth.Context, siteName string, secureCookies bool) *Auth {
	return &Auth{
		renderer: renderer,
		auth:     authCtx,
		siteName: siteName,
		flash:    flash{secure: secureCookies},
	}
}

// LoginPage renders the login form. Signed-in viewers go straight to the
// dashboard.
func (a *Auth) LoginPage(w http.ResponseWriter, r *http.Request) {
	if middleware.ViewerFromCtx(r.Context()).Authenticated() {
		http.Redirect(w, r, middleware.DashboardPath, http.StatusSeeOther)
		return
	}

	a.renderer.Page(w, r, "site/login", &render.PageData{
		Title:    "Staff login",
		Settings: fallback.Settings(a.siteName),
		Data:     map[string]any{"Email": r.URL.Query().Get("email")},
	})
}

// LoginSubmit exchanges the form's credentials for a session.
func (a *Auth) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	req := models.LoginRequest{
		Email:    strings.ToLower(formText(r, "email")),
		Password: r.FormValue("password"),
		Code:     formText(r, "code"),
	}
	if req.Email == "" || req.Password == "" {
		a.flash.fail(w, r, middleware.LoginPath, "Please enter your email and password.")
		return
	}

	ip := middleware.ClientIPFromCtx(r.Context())
	if ip == "" {
		ip = middleware.RemoteIP(r)
	}
	s, err := a.auth.Login(r.Context(), w, ip, req)
	if err != nil {
		msg := client.Message(err, "Invalid email or password.")
		switch {
		case errors.Is(err, client.ErrTransport):
			msg = "We couldn't reach the server. Please try again."
		case errors.Is(err, auth.ErrInvalidLogin):
			msg = "This account cannot access the dashboard."
		}
		slog.Warn("login failed", "email", req.Email, "error", err)
		a.flash.fail(w, r, middleware.LoginPath, msg)
		return
	}

	slog.Info("viewer logged in", "user_id", s.User.ID)
	a.flash.ok(w, r, middleware.DashboardPath, "Welcome back, "+s.User.Name+".")
}

// Logout ends the session. The token cookie is cleared even when the API
// cannot be reached.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.auth.Logout(r.Context(), w, r); err != nil {
		slog.Warn("logout failed", "error", err)
	}
	a.flash.ok(w, r, middleware.LoginPath, "You have been logged out.")
}

// TooManyAttempts answers a rate-limited login.
func (a *Auth) TooManyAttempts(w http.ResponseWriter, r *http.Request) {
	slog.Warn("login rate limited", "path", r.URL.Path)
	a.renderer.Error(w, r, http.StatusTooManyRequests, "Too many login attempts. Please wait a minute and try again.")
}
