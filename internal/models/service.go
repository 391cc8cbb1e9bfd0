// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Service is a studio offering such as bridal makeup or hair styling.
type Service struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Price       string          `json:"price,omitempty"`
	Position    int             `json:"position"`
	Active      bool            `json:"active"`
	Content     *ServiceContent `json:"content,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ServiceContent is the optional rich block shown on a service detail page.
// Body is Markdown.
type ServiceContent struct {
	HeroImage string   `json:"hero_image,omitempty"`
	Gallery   []string `json:"gallery,omitempty"`
	Features  []string `json:"features,omitempty"`
	Benefits  []string `json:"benefits,omitempty"`
	Body      string   `json:"body,omitempty"`
}

// IsEmpty reports whether the block carries nothing worth rendering.
func (c *ServiceContent) IsEmpty() bool {
	return c == nil || (c.HeroImage == "" && len(c.Gallery) == 0 &&
		len(c.Features) == 0 && len(c.Benefits) == 0 && c.Body == "")
}

// Images returns every image attached to the service, cover first.
// Used by the gallery page.
func (s *Service) Images() []string {
	var out []string
	if s.Image != "" {
		out = append(out, s.Image)
	}
	if s.Content != nil {
		if s.Content.HeroImage != "" && s.Content.HeroImage != s.Image {
			out = append(out, s.Content.HeroImage)
		}
		out = append(out, s.Content.Gallery...)
	}
	return out
}
