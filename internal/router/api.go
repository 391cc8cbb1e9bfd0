// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"bridalstudio/internal/api"
	"bridalstudio/internal/middleware"
)

// NewAPI creates the content API router. Reads are public; content
// mutations need a session; settings and SEO mutations need an admin.
// loginLimiter may be nil.
func NewAPI(a *api.API, sessions middleware.SessionLoader, loginLimiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(chimw.RequestID)
	r.Use(middleware.RecovererJSON)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessions))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteJSONError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/health", a.Health)

	// Public reads.
	r.Get("/services", a.ListServices)
	r.Get("/services/{id}", a.GetService)
	r.Get("/services/slug/{slug}", a.GetServiceBySlug)
	r.Get("/banners", a.ListBanners)
	r.Get("/offers", a.ListOffers)
	r.Get("/page-banners/{pageKey}", a.GetPageBanner)
	r.Get("/testimonials", a.ListTestimonials)
	r.Get("/settings/general", a.GetGeneralSettings)
	r.Get("/seo/{pageName}", a.GetSEO)

	// Public writes.
	r.Post("/testimonials", a.CreateTestimonial)
	r.Post("/auth/logout", a.Logout)
	if loginLimiter != nil {
		r.With(loginLimiter.Middleware).Post("/auth/login", a.Login)
	} else {
		r.Post("/auth/login", a.Login)
	}

	// Any dashboard user.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Get("/session", a.Session)
		r.Post("/auth/2fa/setup", a.SetupTOTP)
		r.Post("/auth/2fa/enable", a.EnableTOTP)
		r.Post("/auth/2fa/disable", a.DisableTOTP)

		r.Post("/services", a.CreateService)
		r.Put("/services/{id}", a.UpdateService)
		r.Delete("/services/{id}", a.DeleteService)

		r.Post("/banners", a.CreateBanner)
		r.Put("/banners/{id}", a.UpdateBanner)
		r.Delete("/banners/{id}", a.DeleteBanner)

		r.Post("/offers", a.CreateOffer)
		r.Put("/offers/{id}", a.UpdateOffer)
		r.Delete("/offers/{id}", a.DeleteOffer)

		r.Put("/page-banners/{pageKey}", a.UpdatePageBanner)
		r.Delete("/testimonials/{id}", a.DeleteTestimonial)
		r.Post("/media", a.UploadMedia)

		// Admin only.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Put("/settings/general", a.UpdateGeneralSettings)
			r.Put("/seo/{pageName}", a.UpdateSEO)
		})
	})

	return r
}
