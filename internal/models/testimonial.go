// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Testimonial sources.
const (
	SourceUserSubmitted = "User Submitted"
	SourceAdmin         = "Admin"
)

// Rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// Testimonial is a client review. ServiceID is an optional link; the site
// forwards it unchecked and the API rejects ids that name no service.
type Testimonial struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Rating    int        `json:"rating"`
	Message   string     `json:"message"`
	Image     string     `json:"image,omitempty"`
	ServiceID *uuid.UUID `json:"service_id,omitempty"`
	Source    string     `json:"source"`
	CreatedAt time.Time  `json:"created_at"`
}

// ValidRating reports whether r is within [MinRating, MaxRating].
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}

// Stars returns a slice of length Rating, convenient for range loops in
// templates.
func (t *Testimonial) Stars() []struct{} {
	if !ValidRating(t.Rating) {
		return nil
	}
	return make([]struct{}, t.Rating)
}
