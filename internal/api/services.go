// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"bridalstudio/internal/models"
	"bridalstudio/internal/slug"
	"bridalstudio/internal/store"
)

const slugTakenMessage = "A service with this slug already exists."

// ListServices returns services in display order. Inactive services are
// included only for authenticated callers passing ?all=1.
func (a *API) ListServices(w http.ResponseWriter, r *http.Request) {
	items, err := a.services.List(!includeInactive(r))
	if err != nil {
		internalError(w, "list services failed", err)
		return
	}
	if items == nil {
		items = []models.Service{}
	}
	writeOK(w, http.StatusOK, items)
}

// GetService returns one service by id, active or not.
func (a *API) GetService(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	svc, err := a.services.FindByID(id)
	if err != nil {
		internalError(w, "find service failed", err)
		return
	}
	if svc == nil {
		writeError(w, http.StatusNotFound, "service not found")
		return
	}
	writeOK(w, http.StatusOK, svc)
}

// GetServiceBySlug returns one active service by slug.
func (a *API) GetServiceBySlug(w http.ResponseWriter, r *http.Request) {
	svc, err := a.services.FindBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		internalError(w, "find service by slug failed", err)
		return
	}
	if svc == nil {
		writeError(w, http.StatusNotFound, "service not found")
		return
	}
	writeOK(w, http.StatusOK, svc)
}

// CreateService creates a service. An empty slug is derived from the title.
func (a *API) CreateService(w http.ResponseWriter, r *http.Request) {
	var in models.Service
	if !decodeJSON(w, r, &in) {
		return
	}
	if !a.prepareService(w, &in, nil) {
		return
	}

	created, err := a.services.Create(&in)
	if errors.Is(err, store.ErrSlugTaken) {
		writeError(w, http.StatusBadRequest, slugTakenMessage)
		return
	}
	if err != nil {
		internalError(w, "create service failed", err)
		return
	}
	a.changed(r.Context(), "service")
	writeOK(w, http.StatusCreated, created)
}

// UpdateService replaces the editable fields of a service.
func (a *API) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in models.Service
	if !decodeJSON(w, r, &in) {
		return
	}
	in.ID = id
	if !a.prepareService(w, &in, &id) {
		return
	}

	previous, err := a.services.FindByID(id)
	if err != nil {
		internalError(w, "find service failed", err)
		return
	}
	if previous == nil {
		writeError(w, http.StatusNotFound, "service not found")
		return
	}

	updated, err := a.services.Update(&in)
	if errors.Is(err, store.ErrSlugTaken) {
		writeError(w, http.StatusBadRequest, slugTakenMessage)
		return
	}
	if err != nil {
		internalError(w, "update service failed", err)
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "service not found")
		return
	}
	a.changed(r.Context(), "service")
	if previous.Image != updated.Image {
		a.discardMedia(r.Context(), previous.Image)
	}
	writeOK(w, http.StatusOK, updated)
}

// DeleteService removes a service and its uploaded image. Testimonials
// linked to it keep their text and lose the link.
func (a *API) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	previous, err := a.services.FindByID(id)
	if err != nil {
		internalError(w, "find service failed", err)
		return
	}
	found, err := a.services.Delete(id)
	if err != nil {
		internalError(w, "delete service failed", err)
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "service not found")
		return
	}
	a.changed(r.Context(), "service")
	if previous != nil {
		a.discardMedia(r.Context(), previous.Image)
	}
	writeOK(w, http.StatusOK, deletedResponse{ID: id})
}

// prepareService validates in, derives its slug and checks uniqueness.
// excludeID is the service being updated, nil on create.
func (a *API) prepareService(w http.ResponseWriter, in *models.Service, excludeID *uuid.UUID) bool {
	if msg := in.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return false
	}

	if in.Slug == "" {
		in.Slug = slug.Generate(in.Title)
	} else {
		in.Slug = slug.Generate(in.Slug)
	}
	if in.Slug == "" {
		writeError(w, http.StatusBadRequest, "Title must contain letters or digits.")
		return false
	}

	exists, err := a.services.SlugExists(in.Slug, excludeID)
	if err != nil {
		internalError(w, "check service slug failed", err)
		return false
	}
	if exists {
		writeError(w, http.StatusBadRequest, slugTakenMessage)
		return false
	}
	return true
}
