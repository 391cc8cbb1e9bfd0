// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Validation limits for user-editable fields.
const (
	MaxTitleLen       = 200
	MaxSlugLen        = 200
	MaxDescriptionLen = 2_000
	MaxBodyLen        = 50_000
	MaxURLLen         = 1_000
	MaxLabelLen       = 100
	MaxNameLen        = 100
	MaxMessageLen     = 2_000
	MaxMetaLen        = 500
)

// The Validate methods below return the first problem found as a message
// suitable for a toast or an error envelope, or "" if the record is valid.
// They also trim surrounding whitespace from required text fields.

func tooLong(field string, max int) string {
	return fmt.Sprintf("%s is too long (max %d characters).", field, max)
}

func longer(s string, max int) bool {
	return utf8.RuneCountInString(s) > max
}

// Validate checks a service.
func (s *Service) Validate() string {
	s.Title = strings.TrimSpace(s.Title)
	s.Slug = strings.TrimSpace(s.Slug)
	switch {
	case s.Title == "":
		return "Title is required."
	case longer(s.Title, MaxTitleLen):
		return tooLong("Title", MaxTitleLen)
	case longer(s.Slug, MaxSlugLen):
		return tooLong("Slug", MaxSlugLen)
	case longer(s.Description, MaxDescriptionLen):
		return tooLong("Description", MaxDescriptionLen)
	case longer(s.Image, MaxURLLen):
		return tooLong("Image URL", MaxURLLen)
	case longer(s.Price, MaxLabelLen):
		return tooLong("Price", MaxLabelLen)
	case s.Position < 0:
		return "Position cannot be negative."
	}
	if s.Content != nil {
		if longer(s.Content.Body, MaxBodyLen) {
			return tooLong("Body", MaxBodyLen)
		}
		if longer(s.Content.HeroImage, MaxURLLen) {
			return tooLong("Hero image URL", MaxURLLen)
		}
	}
	return ""
}

// Validate checks a banner.
func (b *Banner) Validate() string {
	b.Image = strings.TrimSpace(b.Image)
	switch {
	case b.Image == "":
		return "Image is required."
	case longer(b.Image, MaxURLLen):
		return tooLong("Image URL", MaxURLLen)
	case longer(b.Title, MaxTitleLen):
		return tooLong("Title", MaxTitleLen)
	case longer(b.Subtitle, MaxTitleLen):
		return tooLong("Subtitle", MaxTitleLen)
	case longer(b.Link, MaxURLLen):
		return tooLong("Link", MaxURLLen)
	case b.Order < 0:
		return "Order cannot be negative."
	}
	return ""
}

// Validate checks an offer.
func (o *Offer) Validate() string {
	o.Title = strings.TrimSpace(o.Title)
	switch {
	case o.Title == "":
		return "Title is required."
	case longer(o.Title, MaxTitleLen):
		return tooLong("Title", MaxTitleLen)
	case longer(o.Description, MaxDescriptionLen):
		return tooLong("Description", MaxDescriptionLen)
	case longer(o.Image, MaxURLLen):
		return tooLong("Image URL", MaxURLLen)
	case longer(o.Discount, MaxLabelLen):
		return tooLong("Discount", MaxLabelLen)
	case o.Order < 0:
		return "Order cannot be negative."
	}
	return ""
}

// Validate checks a testimonial. Name and message are required.
func (t *Testimonial) Validate() string {
	t.Name = strings.TrimSpace(t.Name)
	t.Message = strings.TrimSpace(t.Message)
	switch {
	case t.Name == "":
		return "Name is required."
	case t.Message == "":
		return "Message is required."
	case longer(t.Name, MaxNameLen):
		return tooLong("Name", MaxNameLen)
	case longer(t.Message, MaxMessageLen):
		return tooLong("Message", MaxMessageLen)
	case !ValidRating(t.Rating):
		return fmt.Sprintf("Rating must be between %d and %d.", MinRating, MaxRating)
	case longer(t.Image, MaxURLLen):
		return tooLong("Image URL", MaxURLLen)
	}
	return ""
}

// Validate checks a page banner.
func (p *PageBanner) Validate() string {
	switch {
	case longer(p.Image, MaxURLLen):
		return tooLong("Image URL", MaxURLLen)
	case longer(p.Title, MaxTitleLen):
		return tooLong("Title", MaxTitleLen)
	case longer(p.Subtitle, MaxTitleLen):
		return tooLong("Subtitle", MaxTitleLen)
	}
	return ""
}

// Validate checks the general settings. The email, if given, must parse.
func (g *GeneralSettings) Validate() string {
	g.SiteName = strings.TrimSpace(g.SiteName)
	g.Email = strings.TrimSpace(g.Email)
	switch {
	case g.SiteName == "":
		return "Site name is required."
	case longer(g.SiteName, MaxTitleLen):
		return tooLong("Site name", MaxTitleLen)
	case longer(g.Tagline, MaxTitleLen):
		return tooLong("Tagline", MaxTitleLen)
	case longer(g.Address, MaxMetaLen):
		return tooLong("Address", MaxMetaLen)
	case longer(g.OpeningHours, MaxMetaLen):
		return tooLong("Opening hours", MaxMetaLen)
	}
	if g.Email != "" {
		if _, err := mail.ParseAddress(g.Email); err != nil {
			return "Email address is not valid."
		}
	}
	for _, u := range []string{g.Logo, g.Instagram, g.Facebook, g.WhatsApp} {
		if longer(u, MaxURLLen) {
			return tooLong("Link", MaxURLLen)
		}
	}
	return ""
}

// Validate checks page metadata.
func (s *SEO) Validate() string {
	switch {
	case longer(s.Title, MaxTitleLen):
		return tooLong("SEO title", MaxTitleLen)
	case longer(s.Description, MaxMetaLen):
		return tooLong("Meta description", MaxMetaLen)
	case longer(s.Keywords, MaxMetaLen):
		return tooLong("Meta keywords", MaxMetaLen)
	case longer(s.OGImage, MaxURLLen):
		return tooLong("OG image URL", MaxURLLen)
	}
	return ""
}
