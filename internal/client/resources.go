// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"bridalstudio/internal/models"
)

// deleted is the data payload of delete responses.
type deleted struct {
	ID uuid.UUID `json:"id"`
}

func allQuery(includeInactive bool) string {
	if includeInactive {
		return "?all=1"
	}
	return ""
}

// --- Services ---

// ListServices returns services in display order. includeInactive requires
// an authenticated client.
func (c *Client) ListServices(ctx context.Context, includeInactive bool) ([]models.Service, error) {
	return call[[]models.Service](ctx, c, http.MethodGet, "/services"+allQuery(includeInactive), nil)
}

// GetService returns one service by id.
func (c *Client) GetService(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	return call[*models.Service](ctx, c, http.MethodGet, "/services/"+id.String(), nil)
}

// GetServiceBySlug returns one active service by slug.
func (c *Client) GetServiceBySlug(ctx context.Context, slug string) (*models.Service, error) {
	return call[*models.Service](ctx, c, http.MethodGet, "/services/slug/"+url.PathEscape(slug), nil)
}

// CreateService creates a service. An empty slug is derived from the title.
func (c *Client) CreateService(ctx context.Context, s *models.Service) (*models.Service, error) {
	return call[*models.Service](ctx, c, http.MethodPost, "/services", s)
}

// UpdateService replaces the editable fields of s.ID.
func (c *Client) UpdateService(ctx context.Context, s *models.Service) (*models.Service, error) {
	return call[*models.Service](ctx, c, http.MethodPut, "/services/"+s.ID.String(), s)
}

// DeleteService removes a service.
func (c *Client) DeleteService(ctx context.Context, id uuid.UUID) error {
	_, err := call[deleted](ctx, c, http.MethodDelete, "/services/"+id.String(), nil)
	return err
}

// --- Banners ---

// ListBanners returns homepage banners in display order.
func (c *Client) ListBanners(ctx context.Context, includeInactive bool) ([]models.Banner, error) {
	return call[[]models.Banner](ctx, c, http.MethodGet, "/banners"+allQuery(includeInactive), nil)
}

// CreateBanner creates a banner.
func (c *Client) CreateBanner(ctx context.Context, b *models.Banner) (*models.Banner, error) {
	return call[*models.Banner](ctx, c, http.MethodPost, "/banners", b)
}

// UpdateBanner replaces banner b.ID.
func (c *Client) UpdateBanner(ctx context.Context, b *models.Banner) (*models.Banner, error) {
	return call[*models.Banner](ctx, c, http.MethodPut, "/banners/"+b.ID.String(), b)
}

// DeleteBanner removes a banner.
func (c *Client) DeleteBanner(ctx context.Context, id uuid.UUID) error {
	_, err := call[deleted](ctx, c, http.MethodDelete, "/banners/"+id.String(), nil)
	return err
}

// --- Offers ---

// ListOffers returns offers in display order. Without includeInactive,
// inactive and expired offers are omitted.
func (c *Client) ListOffers(ctx context.Context, includeInactive bool) ([]models.Offer, error) {
	return call[[]models.Offer](ctx, c, http.MethodGet, "/offers"+allQuery(includeInactive), nil)
}

// CreateOffer creates an offer.
func (c *Client) CreateOffer(ctx context.Context, o *models.Offer) (*models.Offer, error) {
	return call[*models.Offer](ctx, c, http.MethodPost, "/offers", o)
}

// UpdateOffer replaces offer o.ID.
func (c *Client) UpdateOffer(ctx context.Context, o *models.Offer) (*models.Offer, error) {
	return call[*models.Offer](ctx, c, http.MethodPut, "/offers/"+o.ID.String(), o)
}

// DeleteOffer removes an offer.
func (c *Client) DeleteOffer(ctx context.Context, id uuid.UUID) error {
	_, err := call[deleted](ctx, c, http.MethodDelete, "/offers/"+id.String(), nil)
	return err
}

// --- Page banners ---

// GetPageBanner returns the hero for a page key.
func (c *Client) GetPageBanner(ctx context.Context, pageKey string) (*models.PageBanner, error) {
	return call[*models.PageBanner](ctx, c, http.MethodGet, "/page-banners/"+url.PathEscape(pageKey), nil)
}

// UpdatePageBanner replaces the hero for pb.PageKey.
func (c *Client) UpdatePageBanner(ctx context.Context, pb *models.PageBanner) (*models.PageBanner, error) {
	return call[*models.PageBanner](ctx, c, http.MethodPut, "/page-banners/"+url.PathEscape(pb.PageKey), pb)
}

// --- Testimonials ---

// ListTestimonials returns testimonials newest first.
func (c *Client) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	return call[[]models.Testimonial](ctx, c, http.MethodGet, "/testimonials", nil)
}

// CreateTestimonial submits a testimonial. Anonymous callers always
// create a "User Submitted" entry.
func (c *Client) CreateTestimonial(ctx context.Context, t *models.Testimonial) (*models.Testimonial, error) {
	return call[*models.Testimonial](ctx, c, http.MethodPost, "/testimonials", t)
}

// DeleteTestimonial removes a testimonial.
func (c *Client) DeleteTestimonial(ctx context.Context, id uuid.UUID) error {
	_, err := call[deleted](ctx, c, http.MethodDelete, "/testimonials/"+id.String(), nil)
	return err
}

// --- Settings and SEO ---

// GetGeneralSettings returns the site-wide settings.
func (c *Client) GetGeneralSettings(ctx context.Context) (*models.GeneralSettings, error) {
	return call[*models.GeneralSettings](ctx, c, http.MethodGet, "/settings/general", nil)
}

// UpdateGeneralSettings replaces the site-wide settings. Admin only.
func (c *Client) UpdateGeneralSettings(ctx context.Context, g *models.GeneralSettings) (*models.GeneralSettings, error) {
	return call[*models.GeneralSettings](ctx, c, http.MethodPut, "/settings/general", g)
}

// GetSEO returns the metadata for a page.
func (c *Client) GetSEO(ctx context.Context, pageName string) (*models.SEO, error) {
	return call[*models.SEO](ctx, c, http.MethodGet, "/seo/"+url.PathEscape(pageName), nil)
}

// UpdateSEO replaces the metadata for s.PageName. Admin only.
func (c *Client) UpdateSEO(ctx context.Context, s *models.SEO) (*models.SEO, error) {
	return call[*models.SEO](ctx, c, http.MethodPut, "/seo/"+url.PathEscape(s.PageName), s)
}

// --- Session and auth ---

// Session returns the user behind the client's token.
func (c *Client) Session(ctx context.Context) (*models.User, error) {
	return call[*models.User](ctx, c, http.MethodGet, "/session", nil)
}

// Login exchanges credentials (and a TOTP code when 2FA is enabled) for a
// session token.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResult, error) {
	return call[*models.LoginResult](ctx, c, http.MethodPost, "/auth/login", req)
}

// Logout ends the client's session.
func (c *Client) Logout(ctx context.Context) error {
	_, err := call[struct{}](ctx, c, http.MethodPost, "/auth/logout", nil)
	return err
}

// SetupTOTP starts 2FA enrollment and returns the secret and QR code.
func (c *Client) SetupTOTP(ctx context.Context) (*models.TOTPSetup, error) {
	return call[*models.TOTPSetup](ctx, c, http.MethodPost, "/auth/2fa/setup", nil)
}

// EnableTOTP confirms enrollment with a code from the authenticator app.
func (c *Client) EnableTOTP(ctx context.Context, code string) error {
	_, err := call[struct{}](ctx, c, http.MethodPost, "/auth/2fa/enable", map[string]string{"code": code})
	return err
}

// DisableTOTP turns two-factor off; code must come from the enrolled app.
func (c *Client) DisableTOTP(ctx context.Context, code string) error {
	_, err := call[struct{}](ctx, c, http.MethodPost, "/auth/2fa/disable", map[string]string{"code": code})
	return err
}

// --- Media ---

// MediaUpload is the data payload of POST /media.
type MediaUpload struct {
	URL string `json:"url"`
}

// UploadMedia sends a file to the API's media backend and returns its
// public URL.
func (c *Client) UploadMedia(ctx context.Context, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("media form: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("media copy: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("media form close: %w", err)
	}

	res, err := send[MediaUpload](ctx, c, http.MethodPost, "/media", &buf, mw.FormDataContentType())
	if err != nil {
		return "", err
	}
	return res.URL, nil
}
