// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package auth resolves the dashboard viewer's session against the
// content API. A single Context is built in main and shared by every
// request; it holds no per-user state. The session token lives in a
// cookie that only Login and Logout change.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"bridalstudio/internal/client"
	"bridalstudio/internal/models"
	"bridalstudio/internal/session"
)

// CookieName holds the content API session token on the site.
const CookieName = session.CookieName

// State is the viewer's authentication state.
type State int

const (
	StateLoading State = iota
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Session is the resolved viewer for one request.
type Session struct {
	State State
	User  *models.User
	Token string
}

// Authenticated reports whether the viewer is signed in.
func (s Session) Authenticated() bool {
	return s.State == StateAuthenticated && s.User != nil
}

// IsAdmin reports whether the viewer is a signed-in admin.
func (s Session) IsAdmin() bool {
	return s.Authenticated() && s.User.IsAdmin()
}

// ErrInvalidLogin is returned by Login when the API accepts the request
// but returns no usable session.
var ErrInvalidLogin = errors.New("invalid login")

// Context resolves sessions and performs the login/logout transitions.
type Context struct {
	api    *client.Client
	secure bool
	maxAge time.Duration
}

// New creates the process-wide auth context. secure marks the token
// cookie Secure; maxAge is the cookie lifetime used when the API does not
// report the session's own.
func New(api *client.Client, secure bool, maxAge time.Duration) *Context {
	if maxAge == 0 {
		maxAge = session.DefaultTTL
	}
	return &Context{api: api, secure: secure, maxAge: maxAge}
}

// Resolve checks the request's token with GET /session. It starts in
// StateLoading and always returns Authenticated or Unauthenticated; an
// unreachable API counts as Unauthenticated.
func (c *Context) Resolve(ctx context.Context, r *http.Request) Session {
	s := Session{State: StateLoading}

	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		s.State = StateUnauthenticated
		return s
	}

	user, err := c.api.WithToken(cookie.Value).Session(ctx)
	if err != nil {
		if !client.IsUnauthorized(err) {
			slog.Warn("session check failed", "error", err)
		}
		s.State = StateUnauthenticated
		return s
	}
	if user == nil || !user.HasRole() {
		s.State = StateUnauthenticated
		return s
	}

	s.State = StateAuthenticated
	s.User = user
	s.Token = cookie.Value
	return s
}

// Client returns an API client acting as the viewer.
func (c *Context) Client(s Session) *client.Client {
	return c.api.WithToken(s.Token)
}

// Login exchanges credentials for a session and stores its token.
// clientIP is the visitor's address, forwarded so the API limits login
// attempts per visitor; "" sends none.
func (c *Context) Login(ctx context.Context, w http.ResponseWriter, clientIP string, req models.LoginRequest) (Session, error) {
	res, err := c.api.WithClientIP(clientIP).Login(ctx, req)
	if err != nil {
		return Session{State: StateUnauthenticated}, err
	}
	if res == nil || res.Token == "" || !res.User.HasRole() {
		return Session{State: StateUnauthenticated}, ErrInvalidLogin
	}

	maxAge := int(c.maxAge.Seconds())
	if res.ExpiresIn > 0 {
		maxAge = res.ExpiresIn
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    res.Token,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})

	user := res.User
	return Session{State: StateAuthenticated, User: &user, Token: res.Token}, nil
}

// Logout ends the session on the API and clears the token cookie. The
// cookie is cleared even if the API call fails.
func (c *Context) Logout(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	if err := c.api.WithToken(cookie.Value).Logout(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}
