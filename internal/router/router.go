// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up the HTTP routes and middleware chains of both
// binaries: the studio site (public pages plus the dashboard) and the
// content API.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"bridalstudio/internal/handlers"
	"bridalstudio/internal/middleware"
	"bridalstudio/web"
)

// maxFormBytes bounds site form posts, image uploads included.
const maxFormBytes = 12 << 20

// New creates the site router. The dashboard is gated on the viewer
// resolved by viewers; loginLimiter may be nil.
func New(viewers middleware.ViewerResolver, public *handlers.Public, auth *handlers.Auth, dash *handlers.Dashboard, loginLimiter *middleware.RateLimiter, secureCookies bool) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(chimw.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check and static assets — no CSRF.
	r.Get("/health", healthHandler)
	static, _ := fs.Sub(web.StaticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(static)))

	r.Group(func(r chi.Router) {
		r.Use(chimw.RequestSize(maxFormBytes))
		r.Use(middleware.NewCSRF(secureCookies))

		// Public pages.
		r.Get("/", public.Home)
		r.Get("/about", public.About)
		r.Get("/services", public.Services)
		r.Get("/services/{slug}", public.ServiceDetail)
		r.Get("/gallery", public.Gallery)
		r.Get("/contact", public.Contact)
		r.Get("/testimonials/new", public.TestimonialForm)
		r.Post("/testimonials/new", public.TestimonialSubmit)

		// Everything below knows who the viewer is.
		r.Group(func(r chi.Router) {
			r.Use(middleware.LoadViewer(viewers))

			r.Get("/login", auth.LoginPage)
			if loginLimiter != nil {
				r.With(loginLimiter.Middleware).Post("/login", auth.LoginSubmit)
			} else {
				r.Post("/login", auth.LoginSubmit)
			}
			r.Post("/logout", auth.Logout)

			r.Route("/dashboard", func(r chi.Router) {
				r.Use(middleware.RequireViewer)

				r.Get("/", dash.Overview)

				r.Route("/services", func(r chi.Router) {
					r.Get("/", dash.Services)
					r.Get("/new", dash.ServiceNew)
					r.Post("/new", dash.ServiceCreate)
					r.Get("/{id}", dash.ServiceEdit)
					r.Post("/{id}", dash.ServiceUpdate)
					r.Post("/{id}/delete", dash.ServiceDelete)
				})

				r.Route("/banners", func(r chi.Router) {
					r.Get("/", dash.Banners)
					r.Get("/new", dash.BannerNew)
					r.Post("/new", dash.BannerCreate)
					r.Get("/{id}", dash.BannerEdit)
					r.Post("/{id}", dash.BannerUpdate)
					r.Post("/{id}/delete", dash.BannerDelete)
				})

				r.Route("/offers", func(r chi.Router) {
					r.Get("/", dash.Offers)
					r.Get("/new", dash.OfferNew)
					r.Post("/new", dash.OfferCreate)
					r.Get("/{id}", dash.OfferEdit)
					r.Post("/{id}", dash.OfferUpdate)
					r.Post("/{id}/delete", dash.OfferDelete)
				})

				r.Route("/testimonials", func(r chi.Router) {
					r.Get("/", dash.Testimonials)
					r.Get("/new", dash.TestimonialNew)
					r.Post("/new", dash.TestimonialCreate)
					r.Post("/{id}/delete", dash.TestimonialDelete)
				})

				r.Get("/page-banners", dash.PageBanners)
				r.Get("/page-banners/{pageKey}", dash.PageBannerEdit)
				r.Post("/page-banners/{pageKey}", dash.PageBannerUpdate)

				r.Get("/security", dash.Security)
				r.Post("/security/setup", dash.SecuritySetup)
				r.Post("/security/enable", dash.SecurityEnable)
				r.Post("/security/disable", dash.SecurityDisable)

				// Admin only. The API enforces the role again.
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdminViewer)
					r.Get("/settings", dash.Settings)
					r.Post("/settings", dash.SettingsUpdate)
					r.Post("/settings/seo/{pageName}", dash.SEOUpdate)
				})
			})
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
