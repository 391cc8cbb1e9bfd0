// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package api contains the HTTP handlers of the content API. Every
// response is a models.Envelope. Handlers receive their dependencies
// through the API struct; stores are consumed through small interfaces so
// the handlers can be exercised without PostgreSQL or Valkey.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"bridalstudio/internal/cache"
	"bridalstudio/internal/middleware"
	"bridalstudio/internal/models"
	"bridalstudio/internal/session"
	"bridalstudio/internal/storage"
)

// maxBodySize caps JSON request bodies.
const maxBodySize = 1 << 20

// ServiceStore persists services. *store.ServiceStore implements it.
type ServiceStore interface {
	List(activeOnly bool) ([]models.Service, error)
	FindByID(id uuid.UUID) (*models.Service, error)
	FindBySlug(slug string) (*models.Service, error)
	SlugExists(slug string, excludeID *uuid.UUID) (bool, error)
	Create(in *models.Service) (*models.Service, error)
	Update(in *models.Service) (*models.Service, error)
	Delete(id uuid.UUID) (bool, error)
}

// BannerStore persists homepage banners. *store.BannerStore implements it.
type BannerStore interface {
	List(activeOnly bool) ([]models.Banner, error)
	Create(in *models.Banner) (*models.Banner, error)
	Update(in *models.Banner) (*models.Banner, error)
	Delete(id uuid.UUID) (bool, error)
}

// OfferStore persists offers. *store.OfferStore implements it.
type OfferStore interface {
	List(activeOnly bool) ([]models.Offer, error)
	Create(in *models.Offer) (*models.Offer, error)
	Update(in *models.Offer) (*models.Offer, error)
	Delete(id uuid.UUID) (bool, error)
}

// TestimonialStore persists testimonials. *store.TestimonialStore implements it.
type TestimonialStore interface {
	List() ([]models.Testimonial, error)
	Create(in *models.Testimonial) (*models.Testimonial, error)
	Delete(id uuid.UUID) (bool, error)
}

// PageBannerStore persists per-page banners. *store.PageBannerStore implements it.
type PageBannerStore interface {
	Find(pageKey string) (*models.PageBanner, error)
	Upsert(in *models.PageBanner) (*models.PageBanner, error)
}

// SEOStore persists per-page metadata. *store.SEOStore implements it.
type SEOStore interface {
	Find(pageName string) (*models.SEO, error)
	Upsert(in *models.SEO) (*models.SEO, error)
}

// SettingStore persists the general settings group.
// *store.SiteSettingStore implements it.
type SettingStore interface {
	General() (models.GeneralSettings, error)
	SetGeneral(g models.GeneralSettings) error
}

// UserStore is the subset of *store.UserStore the auth handlers need.
type UserStore interface {
	FindByEmail(email string) (*models.User, error)
	FindByID(id uuid.UUID) (*models.User, error)
	CheckPassword(user *models.User, password string) bool
	SetTOTPSecret(userID uuid.UUID, secret string) error
	EnableTOTP(userID uuid.UUID) error
	ResetTOTP(userID uuid.UUID) error
}

// SessionStore issues and revokes session tokens. *session.Store implements it.
type SessionStore interface {
	Create(ctx context.Context, data *session.Data) (string, error)
	Destroy(ctx context.Context, token string) error
	TTL() time.Duration
}

// Deps lists the API's collaborators. Media and Pages may be nil: uploads
// are then rejected with 503 and no page cache is cleared.
type Deps struct {
	Services     ServiceStore
	Banners      BannerStore
	Offers       OfferStore
	Testimonials TestimonialStore
	PageBanners  PageBannerStore
	SEO          SEOStore
	Settings     SettingStore
	Users        UserStore
	Sessions     SessionStore
	Media        storage.Uploader
	Pages        *cache.PageCache
	Issuer       string // TOTP issuer shown in authenticator apps
}

// API groups all content API handlers and their dependencies.
type API struct {
	services     ServiceStore
	banners      BannerStore
	offers       OfferStore
	testimonials TestimonialStore
	pageBanners  PageBannerStore
	seo          SEOStore
	settings     SettingStore
	users        UserStore
	sessions     SessionStore
	media        storage.Uploader
	pages        *cache.PageCache
	issuer       string
}

// New creates the API handler group.
func New(d Deps) *API {
	issuer := d.Issuer
	if issuer == "" {
		issuer = "Bridal Studio"
	}
	return &API{
		services:     d.Services,
		banners:      d.Banners,
		offers:       d.Offers,
		testimonials: d.Testimonials,
		pageBanners:  d.PageBanners,
		seo:          d.SEO,
		settings:     d.Settings,
		users:        d.Users,
		sessions:     d.Sessions,
		media:        d.Media,
		pages:        d.Pages,
		issuer:       issuer,
	}
}

// Health reports liveness.
func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	writeOK(w, http.StatusOK, map[string]string{"status": "ok"})
}

// changed clears the site's rendered pages after a content mutation.
// Content is shared across pages, so everything goes.
func (a *API) changed(ctx context.Context, what string) {
	slog.Info("content changed", "resource", what)
	a.pages.InvalidateAll(ctx)
}

// discardMedia removes an uploaded image no longer referenced by the
// record that owned it. The content change has already succeeded, so
// failures are only logged.
func (a *API) discardMedia(ctx context.Context, fileURL string) {
	if a.media == nil || fileURL == "" {
		return
	}
	if err := a.media.Delete(ctx, fileURL); err != nil {
		slog.Warn("discard media failed", "url", fileURL, "error", err)
	}
}

// writeOK writes a successful envelope.
func writeOK[T any](w http.ResponseWriter, status int, data T) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(models.OK(data)); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// writeError writes an unsuccessful envelope.
func writeError(w http.ResponseWriter, status int, message string) {
	middleware.WriteJSONError(w, status, message)
}

// internalError logs err and writes a generic 500 envelope.
func internalError(w http.ResponseWriter, msg string, err error) {
	slog.Error(msg, "error", err)
	writeError(w, http.StatusInternalServerError, "internal server error")
}

// decodeJSON reads a JSON body into dst. Malformed bodies get a 400,
// oversized ones a 413.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		case errors.Is(err, io.EOF):
			writeError(w, http.StatusBadRequest, "request body is required")
		default:
			writeError(w, http.StatusBadRequest, "invalid JSON body")
		}
		return false
	}
	return true
}

// pathID parses the {id} URL parameter, writing a 400 if it is not a UUID.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

// includeInactive reports whether an authenticated caller asked for
// inactive rows with ?all=1. Anonymous callers always get active rows.
func includeInactive(r *http.Request) bool {
	if middleware.SessionFromCtx(r.Context()) == nil {
		return false
	}
	v := strings.ToLower(r.URL.Query().Get("all"))
	return v == "1" || v == "true"
}

// deletedResponse is the data payload of delete responses.
type deletedResponse struct {
	ID uuid.UUID `json:"id"`
}
