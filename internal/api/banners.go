// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package api

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"bridalstudio/internal/fallback"
	"bridalstudio/internal/models"
)

// --- Banners ---

// ListBanners returns homepage banners in display order.
func (a *API) ListBanners(w http.ResponseWriter, r *http.Request) {
	items, err := a.banners.List(!includeInactive(r))
	if err != nil {
		internalError(w, "list banners failed", err)
		return
	}
	if items == nil {
		items = []models.Banner{}
	}
	writeOK(w, http.StatusOK, items)
}

// CreateBanner creates a banner.
func (a *API) CreateBanner(w http.ResponseWriter, r *http.Request) {
	var in models.Banner
	if !decodeJSON(w, r, &in) {
		return
	}
	if msg := in.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	created, err := a.banners.Create(&in)
	if err != nil {
		internalError(w, "create banner failed", err)
		return
	}
	a.changed(r.Context(), "banner")
	writeOK(w, http.StatusCreated, created)
}

// UpdateBanner replaces a banner.
func (a *API) UpdateBanner(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in models.Banner
	if !decodeJSON(w, r, &in) {
		return
	}
	in.ID = id
	if msg := in.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	updated, err := a.banners.Update(&in)
	if err != nil {
		internalError(w, "update banner failed", err)
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "banner not found")
		return
	}
	a.changed(r.Context(), "banner")
	writeOK(w, http.StatusOK, updated)
}

// DeleteBanner removes a banner.
func (a *API) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	found, err := a.banners.Delete(id)
	if err != nil {
		internalError(w, "delete banner failed", err)
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "banner not found")
		return
	}
	a.changed(r.Context(), "banner")
	writeOK(w, http.StatusOK, deletedResponse{ID: id})
}

// --- Offers ---

// ListOffers returns offers in display order. Public callers never see
// inactive or expired offers.
func (a *API) ListOffers(w http.ResponseWriter, r *http.Request) {
	items, err := a.offers.List(!includeInactive(r))
	if err != nil {
		internalError(w, "list offers failed", err)
		return
	}
	if items == nil {
		items = []models.Offer{}
	}
	writeOK(w, http.StatusOK, items)
}

// CreateOffer creates an offer.
func (a *API) CreateOffer(w http.ResponseWriter, r *http.Request) {
	var in models.Offer
	if !decodeJSON(w, r, &in) {
		return
	}
	if msg := in.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	created, err := a.offers.Create(&in)
	if err != nil {
		internalError(w, "create offer failed", err)
		return
	}
	a.changed(r.Context(), "offer")
	writeOK(w, http.StatusCreated, created)
}

// UpdateOffer replaces an offer.
func (a *API) UpdateOffer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in models.Offer
	if !decodeJSON(w, r, &in) {
		return
	}
	in.ID = id
	if msg := in.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	updated, err := a.offers.Update(&in)
	if err != nil {
		internalError(w, "update offer failed", err)
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "offer not found")
		return
	}
	a.changed(r.Context(), "offer")
	writeOK(w, http.StatusOK, updated)
}

// DeleteOffer removes an offer.
func (a *API) DeleteOffer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	found, err := a.offers.Delete(id)
	if err != nil {
		internalError(w, "delete offer failed", err)
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "offer not found")
		return
	}
	a.changed(r.Context(), "offer")
	writeOK(w, http.StatusOK, deletedResponse{ID: id})
}

// --- Page banners ---

// knownPage reports whether key names a public page.
func knownPage(key string) bool {
	return slices.Contains(fallback.PageKeys, key)
}

// GetPageBanner returns the banner of one public page.
func (a *API) GetPageBanner(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "pageKey")
	pb, err := a.pageBanners.Find(key)
	if err != nil {
		internalError(w, "find page banner failed", err)
		return
	}
	if pb == nil {
		writeError(w, http.StatusNotFound, "page banner not found")
		return
	}
	writeOK(w, http.StatusOK, pb)
}

// UpdatePageBanner creates or replaces the banner of a public page.
func (a *API) UpdatePageBanner(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "pageKey")
	if !knownPage(key) {
		writeError(w, http.StatusBadRequest, "unknown page")
		return
	}
	var in models.PageBanner
	if !decodeJSON(w, r, &in) {
		return
	}
	in.PageKey = key
	if msg := in.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	saved, err := a.pageBanners.Upsert(&in)
	if err != nil {
		internalError(w, "save page banner failed", err)
		return
	}
	a.changed(r.Context(), "page_banner")
	writeOK(w, http.StatusOK, saved)
}
