// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package api

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pquerna/otp/totp"
	qrcode "github.com/skip2/go-qrcode"

	"bridalstudio/internal/middleware"
	"bridalstudio/internal/models"
	"bridalstudio/internal/session"
)

// Session returns the user behind the presented token. Mounted behind
// RequireAuth, so a missing or expired token never reaches it.
func (a *API) Session(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	user, err := a.users.FindByID(sess.UserID)
	if err != nil {
		internalError(w, "session user lookup failed", err)
		return
	}
	if user == nil {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	writeOK(w, http.StatusOK, user)
}

// Login validates credentials, and the TOTP code when the account has
// two-factor enabled, then issues a session token.
func (a *API) Login(w http.ResponseWriter, r *http.Request) {
	var in models.LoginRequest
	if !decodeJSON(w, r, &in) {
		return
	}
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if in.Email == "" || in.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required.")
		return
	}

	user, err := a.users.FindByEmail(in.Email)
	if err != nil {
		internalError(w, "login lookup failed", err)
		return
	}
	if user == nil || !a.users.CheckPassword(user, in.Password) {
		writeError(w, http.StatusUnauthorized, "Invalid email or password.")
		return
	}

	if user.TOTPEnabled && user.TOTPSecret != nil {
		code := strings.TrimSpace(in.Code)
		if code == "" {
			writeError(w, http.StatusUnauthorized, "Two-factor code required.")
			return
		}
		if !totp.Validate(code, *user.TOTPSecret) {
			writeError(w, http.StatusUnauthorized, "Invalid two-factor code.")
			return
		}
	}

	token, err := a.sessions.Create(r.Context(), &session.Data{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   string(user.Role),
	})
	if err != nil {
		internalError(w, "session create failed", err)
		return
	}

	slog.Info("user logged in", "user_id", user.ID, "role", user.Role)
	writeOK(w, http.StatusOK, models.LoginResult{
		Token:     token,
		User:      *user,
		ExpiresIn: int(a.sessions.TTL().Seconds()),
	})
}

// Logout revokes the presented token. Always succeeds.
func (a *API) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.sessions.Destroy(r.Context(), session.TokenFromRequest(r)); err != nil {
		slog.Warn("session destroy failed", "error", err)
	}
	writeOK(w, http.StatusOK, struct{}{})
}

// SetupTOTP generates a fresh TOTP secret for the caller and returns it
// with its QR code. The secret is stored but not enforced until
// EnableTOTP confirms a code.
func (a *API) SetupTOTP(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	user, err := a.users.FindByID(sess.UserID)
	if err != nil {
		internalError(w, "user lookup for 2fa failed", err)
		return
	}
	if user == nil {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	if user.TOTPEnabled {
		writeError(w, http.StatusBadRequest, "Two-factor authentication is already enabled.")
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      a.issuer,
		AccountName: user.Email,
	})
	if err != nil {
		internalError(w, "totp generate failed", err)
		return
	}

	if err := a.users.SetTOTPSecret(user.ID, key.Secret()); err != nil {
		internalError(w, "save totp secret failed", err)
		return
	}

	qrPNG, err := qrcode.Encode(key.URL(), qrcode.Medium, 256)
	if err != nil {
		internalError(w, "qr code generation failed", err)
		return
	}

	writeOK(w, http.StatusOK, models.TOTPSetup{
		Secret: key.Secret(),
		URL:    key.URL(),
		QRCode: base64.StdEncoding.EncodeToString(qrPNG),
	})
}

// EnableTOTP turns two-factor on after the caller proves possession of
// the secret issued by SetupTOTP.
func (a *API) EnableTOTP(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Code string `json:"code"`
	}
	if !decodeJSON(w, r, &in) {
		return
	}

	sess := middleware.SessionFromCtx(r.Context())
	user, err := a.users.FindByID(sess.UserID)
	if err != nil {
		internalError(w, "user lookup for 2fa failed", err)
		return
	}
	if user == nil {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	if user.TOTPSecret == nil {
		writeError(w, http.StatusBadRequest, "Set up two-factor authentication first.")
		return
	}
	if !totp.Validate(strings.TrimSpace(in.Code), *user.TOTPSecret) {
		writeError(w, http.StatusBadRequest, "Invalid code. Please try again.")
		return
	}

	if !user.TOTPEnabled {
		if err := a.users.EnableTOTP(user.ID); err != nil {
			internalError(w, "enable totp failed", err)
			return
		}
	}
	slog.Info("two-factor enabled", "user_id", user.ID)
	writeOK(w, http.StatusOK, struct{}{})
}

// DisableTOTP turns two-factor off and clears the stored secret. The
// caller must present a current code.
func (a *API) DisableTOTP(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Code string `json:"code"`
	}
	if !decodeJSON(w, r, &in) {
		return
	}

	sess := middleware.SessionFromCtx(r.Context())
	user, err := a.users.FindByID(sess.UserID)
	if err != nil {
		internalError(w, "user lookup for 2fa failed", err)
		return
	}
	if user == nil {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	if !user.TOTPEnabled || user.TOTPSecret == nil {
		writeError(w, http.StatusBadRequest, "Two-factor authentication is not enabled.")
		return
	}
	if !totp.Validate(strings.TrimSpace(in.Code), *user.TOTPSecret) {
		writeError(w, http.StatusBadRequest, "Invalid code. Please try again.")
		return
	}

	if err := a.users.ResetTOTP(user.ID); err != nil {
		internalError(w, "disable totp failed", err)
		return
	}
	slog.Info("two-factor disabled", "user_id", user.ID)
	writeOK(w, http.StatusOK, struct{}{})
}
