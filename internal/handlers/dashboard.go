// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"bridalstudio/internal/auth"
	"bridalstudio/internal/client"
	"bridalstudio/internal/fallback"
	"bridalstudio/internal/middleware"
	"bridalstudio/internal/models"
	"bridalstudio/internal/pageload"
	"bridalstudio/internal/render"
)

// Dashboard groups the admin screens. Every call acts as the signed-in
// viewer; the content API decides what that viewer may change.
type Dashboard struct {
	renderer *render.Renderer
	auth     *auth.Context
	siteName string
	flash    flash
}

// NewDashboard creates the dashboard handler group.
func NewDashboard(renderer *render.Renderer, authCtx *auth.Context, siteName string, secureCookies bool) *Dashboard {
	return &Dashboard{
		renderer: renderer,
		auth:     authCtx,
		siteName: siteName,
		flash:    flash{secure: secureCookies},
	}
}

// api returns a client acting as the request's viewer.
func (d *Dashboard) api(r *http.Request) *client.Client {
	return d.auth.Client(middleware.ViewerFromCtx(r.Context()))
}

// page renders a dashboard screen.
func (d *Dashboard) page(w http.ResponseWriter, r *http.Request, name, section, title string, data map[string]any, res pageload.Result) {
	d.renderer.Page(w, r, "dashboard/"+name, &render.PageData{
		Title:    title,
		Section:  section,
		Settings: fallback.Settings(d.siteName),
		Degraded: res.Degraded,
		Data:     data,
	})
}

// Overview shows content counts and the latest testimonials.
func (d *Dashboard) Overview(w http.ResponseWriter, r *http.Request) {
	api := d.api(r)
	var (
		services     []models.Service
		banners      []models.Banner
		offers       []models.Offer
		testimonials []models.Testimonial
	)

	g := pageload.New(r.Context())
	pageload.Fetch(g, "services", &services, fallback.Services(), func(ctx context.Context) ([]models.Service, error) {
		return api.ListServices(ctx, true)
	})
	pageload.Fetch(g, "banners", &banners, fallback.Banners(), func(ctx context.Context) ([]models.Banner, error) {
		return api.ListBanners(ctx, true)
	})
	pageload.Fetch(g, "offers", &offers, fallback.Offers(), func(ctx context.Context) ([]models.Offer, error) {
		return api.ListOffers(ctx, true)
	})
	pageload.Fetch(g, "testimonials", &testimonials, fallback.Testimonials(), api.ListTestimonials)
	res := g.Wait()

	d.page(w, r, "overview", "overview", "Overview", map[string]any{
		"Services":     services,
		"Banners":      banners,
		"Offers":       offers,
		"Testimonials": testimonials,
	}, res)
}

// --- Services ---

// Services lists every service, hidden ones included.
func (d *Dashboard) Services(w http.ResponseWriter, r *http.Request) {
	api := d.api(r)
	var services []models.Service

	g := pageload.New(r.Context())
	pageload.Fetch(g, "services", &services, fallback.Services(), func(ctx context.Context) ([]models.Service, error) {
		return api.ListServices(ctx, true)
	})
	res := g.Wait()

	d.page(w, r, "services", "services", "Services", map[string]any{"Services": services}, res)
}

// ServiceNew renders an empty service form.
func (d *Dashboard) ServiceNew(w http.ResponseWriter, r *http.Request) {
	d.page(w, r, "service_form", "services", "New service", map[string]any{
		"Service": &models.Service{Active: true},
		"Action":  "/dashboard/services/new",
	}, pageload.Result{})
}

// ServiceCreate posts a new service.
func (d *Dashboard) ServiceCreate(w http.ResponseWriter, r *http.Request) {
	const back = "/dashboard/services/new"
	api := d.api(r)

	svc, msg := serviceFromForm(r)
	if msg != "" {
		d.flash.fail(w, r, back, msg)
		return
	}
	var err error
	if svc.Image, err = uploadField(r.Context(), api, r, "image_file", svc.Image); err != nil {
		d.flash.failAPI(w, r, back, "service image upload", err)
		return
	}

	if _, err := api.CreateService(r.Context(), svc); err != nil {
		d.flash.failAPI(w, r, back, "create service", err)
		return
	}
	d.flash.ok(w, r, "/dashboard/services", "Service \""+svc.Title+"\" created.")
}

// ServiceEdit renders the form for an existing service.
func (d *Dashboard) ServiceEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		d.renderer.Error(w, r, http.StatusNotFound, "")
		return
	}

	svc, err := d.api(r).GetService(r.Context(), id)
	if err != nil && !errors.Is(err, client.ErrNotFound) {
		d.flash.failAPI(w, r, "/dashboard/services", "load service", err)
		return
	}
	if svc == nil {
		d.flash.fail(w, r, "/dashboard/services", "That service no longer exists.")
		return
	}

	d.page(w, r, "service_form", "services", "Edit "+svc.Title, map[string]any{
		"Service": svc,
		"Action":  "/dashboard/services/" + id.String(),
	}, pageload.Result{})
}

// ServiceUpdate saves the edited service.
func (d *Dashboard) ServiceUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		d.renderer.Error(w, r, http.StatusNotFound, "")
		return
	}
	back := "/dashboard/services/" + id.String()
	api := d.api(r)

	svc, msg := serviceFromForm(r)
	if msg != "" {
		d.flash.fail(w, r, back, msg)
		return
	}
	svc.ID = id
	var err error
	if svc.Image, err = uploadField(r.Context(), api, r, "image_file", svc.Image); err != nil {
		d.flash.failAPI(w, r, back, "service image upload", err)
		return
	}

	if _, err := api.UpdateService(r.Context(), svc); err != nil {
		d.flash.failAPI(w, r, back, "update service", err)
		return
	}
	d.flash.ok(w, r, "/dashboard/services", "Service saved.")
}

// ServiceDelete removes a service.
func (d *Dashboard) ServiceDelete(w http.ResponseWriter, r *http.Request) {
	d.remove(w, r, "/dashboard/services", "Service deleted.", "delete service",
		func(ctx context.Context, api *client.Client, id uuid.UUID) error { return api.DeleteService(ctx, id) })
}

// serviceFromForm reads the service form. The second result is a
// validation message for the viewer, empty when the form is valid.
func serviceFromForm(r *http.Request) (*models.Service, string) {
	position, err := formInt(r, "position", 0)
	if err != nil {
		return nil, "Position must be a whole number."
	}
	svc := &models.Service{
		Title:       formText(r, "title"),
		Slug:        formText(r, "slug"),
		Description: formText(r, "description"),
		Image:       formText(r, "image"),
		Price:       formText(r, "price"),
		Position:    position,
		Active:      formBool(r, "active"),
		Content: &models.ServiceContent{
			HeroImage: formText(r, "hero_image"),
			Gallery:   formLines(r, "gallery"),
			Features:  formLines(r, "features"),
			Benefits:  formLines(r, "benefits"),
			Body:      formText(r, "body"),
		},
	}
	if svc.Content.IsEmpty() {
		svc.Content = nil
	}
	return svc, svc.Validate()
}

// remove runs a delete by path id and redirects to list with a toast.
func (d *Dashboard) remove(w http.ResponseWriter, r *http.Request, list, done, action string,
	del func(context.Context, *client.Client, uuid.UUID) error) {
	id, ok := pathID(r)
	if !ok {
		d.renderer.Error(w, r, http.StatusNotFound, "")
		return
	}
	if err := del(r.Context(), d.api(r), id); err != nil {
		if errors.Is(err, client.ErrNotFound) {
			d.flash.fail(w, r, list, "That item was already deleted.")
			return
		}
		d.flash.failAPI(w, r, list, action, err)
		return
	}
	d.flash.ok(w, r, list, done)
}
