// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"bridalstudio/internal/models"
)

// GetGeneralSettings returns the site-wide settings.
func (a *API) GetGeneralSettings(w http.ResponseWriter, r *http.Request) {
	g, err := a.settings.General()
	if err != nil {
		internalError(w, "load settings failed", err)
		return
	}
	writeOK(w, http.StatusOK, g)
}

// UpdateGeneralSettings replaces the site-wide settings. Admin only.
func (a *API) UpdateGeneralSettings(w http.ResponseWriter, r *http.Request) {
	var in models.GeneralSettings
	if !decodeJSON(w, r, &in) {
		return
	}
	if msg := in.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if err := a.settings.SetGeneral(in); err != nil {
		internalError(w, "save settings failed", err)
		return
	}
	a.changed(r.Context(), "settings")
	writeOK(w, http.StatusOK, in)
}

// GetSEO returns the metadata of one public page.
func (a *API) GetSEO(w http.ResponseWriter, r *http.Request) {
	s, err := a.seo.Find(chi.URLParam(r, "pageName"))
	if err != nil {
		internalError(w, "find seo failed", err)
		return
	}
	if s == nil {
		writeError(w, http.StatusNotFound, "seo not found")
		return
	}
	writeOK(w, http.StatusOK, s)
}

// UpdateSEO creates or replaces the metadata of a public page. Admin only.
func (a *API) UpdateSEO(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "pageName")
	if !knownPage(name) {
		writeError(w, http.StatusBadRequest, "unknown page")
		return
	}
	var in models.SEO
	if !decodeJSON(w, r, &in) {
		return
	}
	in.PageName = name
	if msg := in.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	saved, err := a.seo.Upsert(&in)
	if err != nil {
		internalError(w, "save seo failed", err)
		return
	}
	a.changed(r.Context(), "seo")
	writeOK(w, http.StatusOK, saved)
}
