// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"bridalstudio/internal/client"
	"bridalstudio/internal/fallback"
	"bridalstudio/internal/models"
	"bridalstudio/internal/pageload"
)

// --- Banners ---

// Banners lists the home page slider banners.
func (d *Dashboard) Banners(w http.ResponseWriter, r *http.Request) {
	api := d.api(r)
	var banners []models.Banner

	g := pageload.New(r.Context())
	pageload.Fetch(g, "banners", &banners, fallback.Banners(), func(ctx context.Context) ([]models.Banner, error) {
		return api.ListBanners(ctx, true)
	})
	res := g.Wait()

	d.page(w, r, "banners", "banners", "Banners", map[string]any{"Banners": banners}, res)
}

// BannerNew renders an empty banner form.
func (d *Dashboard) BannerNew(w http.ResponseWriter, r *http.Request) {
	d.page(w, r, "banner_form", "banners", "New banner", map[string]any{
		"Banner": &models.Banner{Active: true},
		"Action": "/dashboard/banners/new",
	}, pageload.Result{})
}

// BannerCreate posts a new banner.
func (d *Dashboard) BannerCreate(w http.ResponseWriter, r *http.Request) {
	d.saveBanner(w, r, uuid.Nil, "/dashboard/banners/new")
}

// BannerEdit renders the form for an existing banner. The API has no
// single-banner read, so the banner is picked from the full list.
func (d *Dashboard) BannerEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		d.renderer.Error(w, r, http.StatusNotFound, "")
		return
	}
	banners, err := d.api(r).ListBanners(r.Context(), true)
	if err != nil {
		d.flash.failAPI(w, r, "/dashboard/banners", "load banners", err)
		return
	}
	i := slices.IndexFunc(banners, func(b models.Banner) bool { return b.ID == id })
	if i < 0 {
		d.flash.fail(w, r, "/dashboard/banners", "That banner no longer exists.")
		return
	}

	d.page(w, r, "banner_form", "banners", "Edit banner", map[string]any{
		"Banner": &banners[i],
		"Action": "/dashboard/banners/" + id.String(),
	}, pageload.Result{})
}

// BannerUpdate saves the edited banner.
func (d *Dashboard) BannerUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		d.renderer.Error(w, r, http.StatusNotFound, "")
		return
	}
	d.saveBanner(w, r, id, "/dashboard/banners/"+id.String())
}

// BannerDelete removes a banner.
func (d *Dashboard) BannerDelete(w http.ResponseWriter, r *http.Request) {
	d.remove(w, r, "/dashboard/banners", "Banner deleted.", "delete banner",
		func(ctx context.Context, api *client.Client, id uuid.UUID) error { return api.DeleteBanner(ctx, id) })
}

// saveBanner creates (id == uuid.Nil) or updates a banner from the form.
func (d *Dashboard) saveBanner(w http.ResponseWriter, r *http.Request, id uuid.UUID, back string) {
	api := d.api(r)
	order, err := formInt(r, "order", 0)
	if err != nil {
		d.flash.fail(w, r, back, "Order must be a whole number.")
		return
	}
	b := &models.Banner{
		ID:       id,
		Image:    formText(r, "image"),
		Title:    formText(r, "title"),
		Subtitle: formText(r, "subtitle"),
		Link:     formText(r, "link"),
		Order:    order,
		Active:   formBool(r, "active"),
	}
	if b.Image, err = uploadField(r.Context(), api, r, "image_file", b.Image); err != nil {
		d.flash.failAPI(w, r, back, "banner image upload", err)
		return
	}
	if msg := b.Validate(); msg != "" {
		d.flash.fail(w, r, back, msg)
		return
	}

	if id == uuid.Nil {
		_, err = api.CreateBanner(r.Context(), b)
	} else {
		_, err = api.UpdateBanner(r.Context(), b)
	}
	if err != nil {
		d.flash.failAPI(w, r, back, "save banner", err)
		return
	}
	d.flash.ok(w, r, "/dashboard/banners", "Banner saved.")
}

// --- Offers ---

// Offers lists every offer, expired and hidden ones included.
func (d *Dashboard) Offers(w http.ResponseWriter, r *http.Request) {
	api := d.api(r)
	var offers []models.Offer

	g := pageload.New(r.Context())
	pageload.Fetch(g, "offers", &offers, fallback.Offers(), func(ctx context.Context) ([]models.Offer, error) {
		return api.ListOffers(ctx, true)
	})
	res := g.Wait()

	d.page(w, r, "offers", "offers", "Offers", map[string]any{"Offers": offers}, res)
}

// OfferNew renders an empty offer form.
func (d *Dashboard) OfferNew(w http.ResponseWriter, r *http.Request) {
	d.page(w, r, "offer_form", "offers", "New offer", map[string]any{
		"Offer":  &models.Offer{Active: true},
		"Action": "/dashboard/offers/new",
	}, pageload.Result{})
}

// OfferCreate posts a new offer.
func (d *Dashboard) OfferCreate(w http.ResponseWriter, r *http.Request) {
	d.saveOffer(w, r, uuid.Nil, "/dashboard/offers/new")
}

// OfferEdit renders the form for an existing offer.
func (d *Dashboard) OfferEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		d.renderer.Error(w, r, http.StatusNotFound, "")
		return
	}
	offers, err := d.api(r).ListOffers(r.Context(), true)
	if err != nil {
		d.flash.failAPI(w, r, "/dashboard/offers", "load offers", err)
		return
	}
	i := slices.IndexFunc(offers, func(o models.Offer) bool { return o.ID == id })
	if i < 0 {
		d.flash.fail(w, r, "/dashboard/offers", "That offer no longer exists.")
		return
	}

	d.page(w, r, "offer_form", "offers", "Edit "+offers[i].Title, map[string]any{
		"Offer":  &offers[i],
		"Action": "/dashboard/offers/" + id.String(),
	}, pageload.Result{})
}

// OfferUpdate saves the edited offer.
func (d *Dashboard) OfferUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		d.renderer.Error(w, r, http.StatusNotFound, "")
		return
	}
	d.saveOffer(w, r, id, "/dashboard/offers/"+id.String())
}

// OfferDelete removes an offer.
func (d *Dashboard) OfferDelete(w http.ResponseWriter, r *http.Request) {
	d.remove(w, r, "/dashboard/offers", "Offer deleted.", "delete offer",
		func(ctx context.Context, api *client.Client, id uuid.UUID) error { return api.DeleteOffer(ctx, id) })
}

// saveOffer creates (id == uuid.Nil) or updates an offer from the form.
func (d *Dashboard) saveOffer(w http.ResponseWriter, r *http.Request, id uuid.UUID, back string) {
	api := d.api(r)
	order, err := formInt(r, "order", 0)
	if err != nil {
		d.flash.fail(w, r, back, "Order must be a whole number.")
		return
	}
	o := &models.Offer{
		ID:          id,
		Title:       formText(r, "title"),
		Description: formText(r, "description"),
		Image:       formText(r, "image"),
		Discount:    formText(r, "discount"),
		Order:       order,
		Active:      formBool(r, "active"),
	}
	if raw := formText(r, "valid_until"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			d.flash.fail(w, r, back, "Valid until must be a date.")
			return
		}
		// Valid through the whole day.
		end := t.Add(24*time.Hour - time.Second)
		o.ValidUntil = &end
	}
	if msg := o.Validate(); msg != "" {
		d.flash.fail(w, r, back, msg)
		return
	}
	if o.Image, err = uploadField(r.Context(), api, r, "image_file", o.Image); err != nil {
		d.flash.failAPI(w, r, back, "offer image upload", err)
		return
	}

	if id == uuid.Nil {
		_, err = api.CreateOffer(r.Context(), o)
	} else {
		_, err = api.UpdateOffer(r.Context(), o)
	}
	if err != nil {
		d.flash.failAPI(w, r, back, "save offer", err)
		return
	}
	d.flash.ok(w, r, "/dashboard/offers", "Offer saved.")
}

// --- Testimonials ---

// Testimonials lists every testimonial with its source.
func (d *Dashboard) Testimonials(w http.ResponseWriter, r *http.Request) {
	api := d.api(r)
	var testimonials []models.Testimonial

	g := pageload.New(r.Context())
	pageload.Fetch(g, "testimonials", &testimonials, fallback.Testimonials(), api.ListTestimonials)
	res := g.Wait()

	d.page(w, r, "testimonials", "testimonials", "Testimonials", map[string]any{"Testimonials": testimonials}, res)
}

// TestimonialNew renders the form for adding a testimonial received
// outside the site.
func (d *Dashboard) TestimonialNew(w http.ResponseWriter, r *http.Request) {
	api := d.api(r)
	var services []models.Service

	g := pageload.New(r.Context())
	pageload.Fetch(g, "services", &services, fallback.Services(), func(ctx context.Context) ([]models.Service, error) {
		return api.ListServices(ctx, true)
	})
	res := g.Wait()

	d.page(w, r, "testimonial_form", "testimonials", "Add testimonial", map[string]any{
		"Form":            models.Testimonial{Rating: models.MaxRating},
		"Services":        services,
		"SelectedService": "",
	}, res)
}

// TestimonialCreate posts a testimonial tagged as added by staff.
func (d *Dashboard) TestimonialCreate(w http.ResponseWriter, r *http.Request) {
	const back = "/dashboard/testimonials/new"
	api := d.api(r)

	rating, err := formInt(r, "rating", models.MaxRating)
	if err != nil {
		d.flash.fail(w, r, back, "Rating must be between 1 and 5.")
		return
	}
	t := &models.Testimonial{
		Name:    formText(r, "name"),
		Rating:  rating,
		Message: formText(r, "message"),
		Image:   formText(r, "image"),
		Source:  models.SourceAdmin,
	}
	if t.ServiceID, err = formUUID(r, "service_id"); err != nil {
		d.flash.fail(w, r, back, "Please choose a service from the list.")
		return
	}
	if msg := t.Validate(); msg != "" {
		d.flash.fail(w, r, back, msg)
		return
	}
	if t.Image, err = uploadField(r.Context(), api, r, "image_file", t.Image); err != nil {
		d.flash.failAPI(w, r, back, "testimonial image upload", err)
		return
	}

	if _, err := api.CreateTestimonial(r.Context(), t); err != nil {
		d.flash.failAPI(w, r, back, "create testimonial", err)
		return
	}
	d.flash.ok(w, r, "/dashboard/testimonials", "Testimonial added.")
}

// TestimonialDelete removes a testimonial.
func (d *Dashboard) TestimonialDelete(w http.ResponseWriter, r *http.Request) {
	d.remove(w, r, "/dashboard/testimonials", "Testimonial deleted.", "delete testimonial",
		func(ctx context.Context, api *client.Client, id uuid.UUID) error { return api.DeleteTestimonial(ctx, id) })
}

// --- Page banners ---

// PageBanners shows the hero of every public page, fetched in parallel.
func (d *Dashboard) PageBanners(w http.ResponseWriter, r *http.Request) {
	api := d.api(r)
	banners := make([]models.PageBanner, len(fallback.PageKeys))

	g := pageload.New(r.Context())
	for i, key := range fallback.PageKeys {
		pageload.Fetch(g, "page banner "+key, &banners[i], fallback.PageBanner(key),
			value(func(ctx context.Context) (*models.PageBanner, error) { return api.GetPageBanner(ctx, key) }))
	}
	res := g.Wait()

	d.page(w, r, "page_banners", "page-banners", "Page banners", map[string]any{"Banners": banners}, res)
}

// PageBannerEdit renders the form for one page's hero.
func (d *Dashboard) PageBannerEdit(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "pageKey")
	if !slices.Contains(fallback.PageKeys, key) {
		d.renderer.Error(w, r, http.StatusNotFound, "")
		return
	}
	api := d.api(r)
	var pb models.PageBanner

	g := pageload.New(r.Context())
	pageload.Fetch(g, "page banner", &pb, fallback.PageBanner(key),
		value(func(ctx context.Context) (*models.PageBanner, error) { return api.GetPageBanner(ctx, key) }))
	res := g.Wait()
	pb.PageKey = key

	d.page(w, r, "page_banner_form", "page-banners", "Banner: "+key, map[string]any{"PageBanner": &pb}, res)
}

// PageBannerUpdate saves one page's hero.
func (d *Dashboard) PageBannerUpdate(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "pageKey")
	if !slices.Contains(fallback.PageKeys, key) {
		d.renderer.Error(w, r, http.StatusNotFound, "")
		return
	}
	back := "/dashboard/page-banners/" + key
	api := d.api(r)

	pb := &models.PageBanner{
		PageKey:  key,
		Image:    formText(r, "image"),
		Title:    formText(r, "title"),
		Subtitle: formText(r, "subtitle"),
	}
	var err error
	if pb.Image, err = uploadField(r.Context(), api, r, "image_file", pb.Image); err != nil {
		d.flash.failAPI(w, r, back, "page banner upload", err)
		return
	}
	if msg := pb.Validate(); msg != "" {
		d.flash.fail(w, r, back, msg)
		return
	}

	if _, err := api.UpdatePageBanner(r.Context(), pb); err != nil {
		d.flash.failAPI(w, r, back, "update page banner", err)
		return
	}
	d.flash.ok(w, r, "/dashboard/page-banners", "Banner for "+key+" saved.")
}
