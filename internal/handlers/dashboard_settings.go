// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"bridalstudio/internal/fallback"
	"bridalstudio/internal/middleware"
	"bridalstudio/internal/models"
	"bridalstudio/internal/pageload"
)

// Settings shows the general settings form and the SEO form of one page,
// chosen with ?page=. Admin only.
func (d *Dashboard) Settings(w http.ResponseWriter, r *http.Request) {
	page := r.URL.Query().Get("page")
	if !slices.Contains(fallback.PageKeys, page) {
		page = fallback.PageHome
	}
	api := d.api(r)
	var (
		general models.GeneralSettings
		seo     models.SEO
	)

	g := pageload.New(r.Context())
	pageload.Fetch(g, "settings", &general, fallback.Settings(d.siteName), value(api.GetGeneralSettings))
	pageload.Fetch(g, "seo", &seo, fallback.SEO(page, d.siteName),
		value(func(ctx context.Context) (*models.SEO, error) { return api.GetSEO(ctx, page) }))
	res := g.Wait()
	seo.PageName = page

	d.page(w, r, "settings", "settings", "Settings", map[string]any{
		"General": &general,
		"PageSEO": &seo,
		"Pages":   fallback.PageKeys,
		"SEOPage": page,
	}, res)
}

// SettingsUpdate saves the general settings.
func (d *Dashboard) SettingsUpdate(w http.ResponseWriter, r *http.Request) {
	const back = "/dashboard/settings"
	api := d.api(r)

	gs := &models.GeneralSettings{
		SiteName:     formText(r, "site_name"),
		Logo:         formText(r, "logo"),
		Tagline:      formText(r, "tagline"),
		Phone:        formText(r, "phone"),
		Email:        formText(r, "email"),
		Address:      formText(r, "address"),
		OpeningHours: formText(r, "opening_hours"),
		Instagram:    formText(r, "instagram"),
		Facebook:     formText(r, "facebook"),
		WhatsApp:     formText(r, "whatsapp"),
	}
	if msg := gs.Validate(); msg != "" {
		d.flash.fail(w, r, back, msg)
		return
	}
	var err error
	if gs.Logo, err = uploadField(r.Context(), api, r, "logo_file", gs.Logo); err != nil {
		d.flash.failAPI(w, r, back, "logo upload", err)
		return
	}

	if _, err := api.UpdateGeneralSettings(r.Context(), gs); err != nil {
		d.flash.failAPI(w, r, back, "update settings", err)
		return
	}
	d.flash.ok(w, r, back, "Settings saved.")
}

// SEOUpdate saves the metadata of one public page.
func (d *Dashboard) SEOUpdate(w http.ResponseWriter, r *http.Request) {
	page := chi.URLParam(r, "pageName")
	if !slices.Contains(fallback.PageKeys, page) {
		d.renderer.Error(w, r, http.StatusNotFound, "")
		return
	}
	back := "/dashboard/settings?page=" + page

	seo := &models.SEO{
		PageName:    page,
		Title:       formText(r, "title"),
		Description: formText(r, "description"),
		Keywords:    formText(r, "keywords"),
		OGImage:     formText(r, "og_image"),
	}
	if msg := seo.Validate(); msg != "" {
		d.flash.fail(w, r, back, msg)
		return
	}

	if _, err := d.api(r).UpdateSEO(r.Context(), seo); err != nil {
		d.flash.failAPI(w, r, back, "update seo", err)
		return
	}
	d.flash.ok(w, r, back, "SEO for "+page+" saved.")
}

// --- Security ---

// Security shows the viewer's two-factor status.
func (d *Dashboard) Security(w http.ResponseWriter, r *http.Request) {
	d.page(w, r, "security", "security", "Security", map[string]any{}, pageload.Result{})
}

// SecuritySetup starts two-factor enrollment and shows the QR code. The
// secret is only shown in this response.
func (d *Dashboard) SecuritySetup(w http.ResponseWriter, r *http.Request) {
	const back = "/dashboard/security"
	if middleware.ViewerFromCtx(r.Context()).User.TOTPEnabled {
		d.flash.fail(w, r, back, "Two-factor authentication is already on.")
		return
	}

	setup, err := d.api(r).SetupTOTP(r.Context())
	if err != nil || setup == nil {
		if err == nil {
			err = errNoData
		}
		d.flash.failAPI(w, r, back, "two-factor setup", err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	d.page(w, r, "security", "security", "Security", map[string]any{"Setup": setup}, pageload.Result{})
}

// SecurityEnable confirms enrollment with a code from the app.
func (d *Dashboard) SecurityEnable(w http.ResponseWriter, r *http.Request) {
	const back = "/dashboard/security"
	code := formText(r, "code")
	if code == "" {
		d.flash.fail(w, r, back, "Enter the code from your authenticator app.")
		return
	}

	if err := d.api(r).EnableTOTP(r.Context(), code); err != nil {
		d.flash.failAPI(w, r, back, "enable two-factor", err)
		return
	}
	slog.Info("two-factor enabled from dashboard", "user_id", middleware.ViewerFromCtx(r.Context()).User.ID)
	d.flash.ok(w, r, back, "Two-factor authentication is on.")
}

// SecurityDisable turns two-factor off after checking a current code.
func (d *Dashboard) SecurityDisable(w http.ResponseWriter, r *http.Request) {
	const back = "/dashboard/security"
	code := formText(r, "code")
	if code == "" {
		d.flash.fail(w, r, back, "Enter the code from your authenticator app.")
		return
	}

	if err := d.api(r).DisableTOTP(r.Context(), code); err != nil {
		d.flash.failAPI(w, r, back, "disable two-factor", err)
		return
	}
	slog.Info("two-factor disabled from dashboard", "user_id", middleware.ViewerFromCtx(r.Context()).User.ID)
	d.flash.ok(w, r, back, "Two-factor authentication is off.")
}
