// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bridalstudio/internal/cache"
	"bridalstudio/internal/client"
	"bridalstudio/internal/fallback"
	"bridalstudio/internal/models"
	"bridalstudio/internal/pageload"
	"bridalstudio/internal/render"
	"bridalstudio/internal/slug"
	"bridalstudio/internal/toast"
)

// Public groups handlers for the public-facing site. It checks the Valkey
// page cache before fetching, and stores rendered pages whose data all
// came from the API.
type Public struct {
	renderer  *render.Renderer
	api       *client.Client
	pageCache *cache.PageCache
	siteName  string
	flash     flash
}

// NewPublic creates the public handler group. pageCache may be nil.
func NewPublic(renderer *render.Renderer, api *client.Client, pageCache *cache.PageCache, siteName string, secureCookies bool) *Public {
	return &Public{
		renderer:  renderer,
		api:       api,
		pageCache: pageCache,
		siteName:  siteName,
		flash:     flash{secure: secureCookies},
	}
}

// shell queues the fetches every public page needs: general settings,
// the page's SEO entry and its hero banner.
func (p *Public) shell(g *pageload.Group, page string, d *render.PageData) {
	pageload.Fetch(g, "settings", &d.Settings, fallback.Settings(p.siteName),
		value(p.api.GetGeneralSettings))
	pageload.Fetch(g, "seo", &d.SEO, fallback.SEO(page, p.siteName),
		value(func(ctx context.Context) (*models.SEO, error) { return p.api.GetSEO(ctx, page) }))
	pageload.Fetch(g, "page banner", &d.Banner, fallback.PageBanner(page),
		value(func(ctx context.Context) (*models.PageBanner, error) { return p.api.GetPageBanner(ctx, page) }))
}

func (p *Public) fetchServices(g *pageload.Group, dst *[]models.Service) {
	pageload.Fetch(g, "services", dst, fallback.Services(), func(ctx context.Context) ([]models.Service, error) {
		return p.api.ListServices(ctx, false)
	})
}

func (p *Public) fetchTestimonials(g *pageload.Group, dst *[]models.Testimonial) {
	pageload.Fetch(g, "testimonials", dst, fallback.Testimonials(), p.api.ListTestimonials)
}

// serveCached writes the cached copy of the page, if any. Requests that
// carry a pending toast always render fresh.
func (p *Public) serveCached(w http.ResponseWriter, r *http.Request) bool {
	if _, err := r.Cookie(toast.CookieName); err == nil {
		return false
	}
	html, ok := p.pageCache.Get(r.Context(), cache.PathKey(r.URL.Path))
	if !ok {
		return false
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
	return true
}

// renderCached renders the page and caches it when every fetch returned
// live data and no toast was shown.
func (p *Public) renderCached(w http.ResponseWriter, r *http.Request, name string, d *render.PageData, res pageload.Result) {
	d.Degraded = res.Degraded
	html := p.renderer.Page(w, r, name, d)
	if html != nil && res.OK() && d.Toast == nil {
		p.pageCache.Set(r.Context(), cache.PathKey(r.URL.Path), html)
	}
}

// Home renders the landing page: banner slider, services, offers and
// recent testimonials.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	if p.serveCached(w, r) {
		return
	}

	var (
		banners      []models.Banner
		services     []models.Service
		offers       []models.Offer
		testimonials []models.Testimonial
	)
	d := &render.PageData{Title: "Home", Section: fallback.PageHome}

	g := pageload.New(r.Context())
	p.shell(g, fallback.PageHome, d)
	pageload.Fetch(g, "banners", &banners, fallback.Banners(), func(ctx context.Context) ([]models.Banner, error) {
		return p.api.ListBanners(ctx, false)
	})
	p.fetchServices(g, &services)
	pageload.Fetch(g, "offers", &offers, fallback.Offers(), func(ctx context.Context) ([]models.Offer, error) {
		return p.api.ListOffers(ctx, false)
	})
	p.fetchTestimonials(g, &testimonials)
	res := g.Wait()

	d.Data = map[string]any{
		"Banners":      banners,
		"Services":     services,
		"Offers":       offers,
		"Testimonials": latest(testimonials, 6),
	}
	p.renderCached(w, r, "site/home", d, res)
}

// About renders the studio introduction.
func (p *Public) About(w http.ResponseWriter, r *http.Request) {
	if p.serveCached(w, r) {
		return
	}

	var services []models.Service
	d := &render.PageData{Title: "About", Section: fallback.PageAbout}

	g := pageload.New(r.Context())
	p.shell(g, fallback.PageAbout, d)
	p.fetchServices(g, &services)
	res := g.Wait()

	d.Data = map[string]any{"Services": services}
	p.renderCached(w, r, "site/about", d, res)
}

// Services renders the service list with current offers.
func (p *Public) Services(w http.ResponseWriter, r *http.Request) {
	if p.serveCached(w, r) {
		return
	}

	var (
		services []models.Service
		offers   []models.Offer
	)
	d := &render.PageData{Title: "Services", Section: fallback.PageServices}

	g := pageload.New(r.Context())
	p.shell(g, fallback.PageServices, d)
	p.fetchServices(g, &services)
	pageload.Fetch(g, "offers", &offers, fallback.Offers(), func(ctx context.Context) ([]models.Offer, error) {
		return p.api.ListOffers(ctx, false)
	})
	res := g.Wait()

	d.Data = map[string]any{"Services": services, "Offers": offers}
	p.renderCached(w, r, "site/services", d, res)
}

// ServiceDetail renders one service by slug. An unknown slug is a 404; if
// the API is unreachable the built-in copy of the service is shown.
func (p *Public) ServiceDetail(w http.ResponseWriter, r *http.Request) {
	if p.serveCached(w, r) {
		return
	}
	name := chi.URLParam(r, "slug")
	if !slug.Valid(name) {
		p.renderer.Error(w, r, http.StatusNotFound, "")
		return
	}

	var (
		svc          *models.Service
		svcErr       error
		testimonials []models.Testimonial
	)
	d := &render.PageData{Section: fallback.PageServices}

	g := pageload.New(r.Context())
	p.shell(g, fallback.PageServices, d)
	pageload.Fetch(g, "service", &svc, nil, func(ctx context.Context) (*models.Service, error) {
		s, err := p.api.GetServiceBySlug(ctx, name)
		if err == nil && s == nil {
			err = errNoData
		}
		svcErr = err
		return s, err
	})
	p.fetchTestimonials(g, &testimonials)
	res := g.Wait()

	if svcErr != nil {
		if errors.Is(svcErr, client.ErrNotFound) {
			p.renderer.Error(w, r, http.StatusNotFound, "")
			return
		}
		fb, ok := fallback.ServiceBySlug(name)
		if !ok {
			p.renderer.Error(w, r, http.StatusNotFound, "")
			return
		}
		svc = &fb
	}
	if !svc.Active {
		p.renderer.Error(w, r, http.StatusNotFound, "")
		return
	}

	d.Title = svc.Title
	d.SEO.Title = svc.Title + " | " + d.Settings.SiteName
	if svc.Description != "" {
		d.SEO.Description = svc.Description
	}
	if svc.Image != "" {
		d.SEO.OGImage = svc.Image
	}
	d.Data = map[string]any{
		"Service":      svc,
		"Testimonials": forService(testimonials, svc),
	}
	p.renderCached(w, r, "site/service", d, res)
}

// Gallery renders every service's images grouped by service.
func (p *Public) Gallery(w http.ResponseWriter, r *http.Request) {
	if p.serveCached(w, r) {
		return
	}

	var services []models.Service
	d := &render.PageData{Title: "Gallery", Section: fallback.PageGallery}

	g := pageload.New(r.Context())
	p.shell(g, fallback.PageGallery, d)
	p.fetchServices(g, &services)
	res := g.Wait()

	d.Data = map[string]any{"Services": services}
	p.renderCached(w, r, "site/gallery", d, res)
}

// Contact renders the studio's contact details from general settings.
func (p *Public) Contact(w http.ResponseWriter, r *http.Request) {
	if p.serveCached(w, r) {
		return
	}

	d := &render.PageData{Title: "Contact", Section: fallback.PageContact, Data: map[string]any{}}
	g := pageload.New(r.Context())
	p.shell(g, fallback.PageContact, d)
	res := g.Wait()

	p.renderCached(w, r, "site/contact", d, res)
}

// TestimonialForm renders the review form next to recent reviews. It
// carries a CSRF token, so it is never cached.
func (p *Public) TestimonialForm(w http.ResponseWriter, r *http.Request) {
	var (
		services     []models.Service
		testimonials []models.Testimonial
	)
	d := &render.PageData{Title: "Share your experience", Section: fallback.PageTestimonials}

	g := pageload.New(r.Context())
	p.shell(g, fallback.PageTestimonials, d)
	p.fetchServices(g, &services)
	p.fetchTestimonials(g, &testimonials)
	res := g.Wait()

	d.Degraded = res.Degraded
	d.Data = map[string]any{
		"Form":            models.Testimonial{Rating: models.MaxRating},
		"Services":        services,
		"SelectedService": r.URL.Query().Get("service"),
		"Testimonials":    testimonials,
	}
	p.renderer.Page(w, r, "site/testimonial_new", d)
}

// TestimonialSubmit validates the review locally, then posts it. An empty
// name or message never reaches the API.
func (p *Public) TestimonialSubmit(w http.ResponseWriter, r *http.Request) {
	const back = "/testimonials/new"

	t := &models.Testimonial{
		Name:    formText(r, "name"),
		Message: formText(r, "message"),
		Source:  models.SourceUserSubmitted,
	}
	if t.Name == "" || t.Message == "" {
		p.flash.fail(w, r, back, "Please enter your name and a message.")
		return
	}

	rating, err := formInt(r, "rating", models.MaxRating)
	if err != nil {
		p.flash.fail(w, r, back, "Please choose a rating between 1 and 5.")
		return
	}
	t.Rating = rating
	if t.ServiceID, err = formUUID(r, "service_id"); err != nil {
		p.flash.fail(w, r, back, "Please choose a service from the list.")
		return
	}
	if msg := t.Validate(); msg != "" {
		p.flash.fail(w, r, back, msg)
		return
	}

	if _, err := p.api.CreateTestimonial(r.Context(), t); err != nil {
		p.flash.failAPI(w, r, back, "submit testimonial", err)
		return
	}
	slog.Info("testimonial submitted", "rating", t.Rating)
	p.flash.ok(w, r, back, "Thank you! Your review has been submitted.")
}

// latest returns at most n testimonials, newest first as the API sends them.
func latest(ts []models.Testimonial, n int) []models.Testimonial {
	if len(ts) > n {
		return ts[:n]
	}
	return ts
}

// forService returns the testimonials linked to svc.
func forService(ts []models.Testimonial, svc *models.Service) []models.Testimonial {
	var out []models.Testimonial
	for _, t := range ts {
		if t.ServiceID != nil && *t.ServiceID == svc.ID {
			out = append(out, t)
		}
	}
	return out
}
