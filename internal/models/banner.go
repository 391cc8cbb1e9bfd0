// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Banner is a homepage hero slide.
type Banner struct {
	ID        uuid.UUID `json:"id"`
	Image     string    `json:"image"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	Link      string    `json:"link"`
	Order     int       `json:"order"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PageBanner is the hero image and heading for one public page, keyed by
// page identifier ("about", "contact", ...).
type PageBanner struct {
	PageKey   string    `json:"page_key"`
	Image     string    `json:"image"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Offer is a time-limited promotion shown on the home and services pages.
type Offer struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	Discount    string     `json:"discount"`
	ValidUntil  *time.Time `json:"valid_until,omitempty"`
	Order       int        `json:"order"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Expired reports whether the offer's validity ended before now.
func (o *Offer) Expired(now time.Time) bool {
	return o.ValidUntil != nil && o.ValidUntil.Before(now)
}
