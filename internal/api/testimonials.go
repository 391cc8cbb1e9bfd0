// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package api

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"bridalstudio/internal/middleware"
	"bridalstudio/internal/models"
	"bridalstudio/internal/store"
)

// ListTestimonials returns testimonials, newest first.
func (a *API) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	items, err := a.testimonials.List()
	if err != nil {
		internalError(w, "list testimonials failed", err)
		return
	}
	if items == nil {
		items = []models.Testimonial{}
	}
	writeOK(w, http.StatusOK, items)
}

// CreateTestimonial accepts a testimonial from anyone. Anonymous
// submissions are always tagged "User Submitted"; dashboard users may tag
// theirs "Admin".
func (a *API) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var in models.Testimonial
	if !decodeJSON(w, r, &in) {
		return
	}
	if msg := in.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	in.ID = uuid.Nil
	if middleware.SessionFromCtx(r.Context()) == nil || in.Source != models.SourceAdmin {
		in.Source = models.SourceUserSubmitted
	}
	if in.ServiceID != nil && *in.ServiceID == uuid.Nil {
		in.ServiceID = nil
	}

	created, err := a.testimonials.Create(&in)
	if errors.Is(err, store.ErrUnknownService) {
		writeError(w, http.StatusBadRequest, "Unknown service.")
		return
	}
	if err != nil {
		internalError(w, "create testimonial failed", err)
		return
	}
	a.changed(r.Context(), "testimonial")
	writeOK(w, http.StatusCreated, created)
}

// DeleteTestimonial removes a testimonial.
func (a *API) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	found, err := a.testimonials.Delete(id)
	if err != nil {
		internalError(w, "delete testimonial failed", err)
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "testimonial not found")
		return
	}
	a.changed(r.Context(), "testimonial")
	writeOK(w, http.StatusOK, deletedResponse{ID: id})
}
