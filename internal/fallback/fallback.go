// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package fallback holds the static content each page renders when the
// content API cannot be reached or answers with success=false. Every
// function returns a fresh copy so callers may modify the result.
package fallback

import (
	"github.com/google/uuid"

	"bridalstudio/internal/models"
)

// Page keys with dedicated banners and SEO entries.
const (
	PageHome         = "home"
	PageAbout        = "about"
	PageServices     = "services"
	PageGallery      = "gallery"
	PageContact      = "contact"
	PageTestimonials = "testimonials"
)

// PageKeys lists every public page that carries a banner and SEO record.
var PageKeys = []string{PageHome, PageAbout, PageServices, PageGallery, PageContact, PageTestimonials}

// Stable IDs so fallback links survive across renders.
var (
	serviceBridalMakeupID = uuid.MustParse("5b0e4a8e-2f55-4f3c-9d1a-0c1b8f0a1001")
	serviceHairStylingID  = uuid.MustParse("5b0e4a8e-2f55-4f3c-9d1a-0c1b8f0a1002")
	serviceMehndiID       = uuid.MustParse("5b0e4a8e-2f55-4f3c-9d1a-0c1b8f0a1003")
	serviceSkinPrepID     = uuid.MustParse("5b0e4a8e-2f55-4f3c-9d1a-0c1b8f0a1004")
)

// Services returns the default service list.
func Services() []models.Service {
	return []models.Service{
		{
			ID:          serviceBridalMakeupID,
			Title:       "Bridal Makeup",
			Slug:        "bridal-makeup",
			Description: "Long-wear, camera-ready makeup designed around your dress, skin and light.",
			Image:       "/static/img/services/bridal-makeup.jpg",
			Position:    1,
			Active:      true,
			Content: &models.ServiceContent{
				HeroImage: "/static/img/services/bridal-makeup-hero.jpg",
				Features:  []string{"Pre-wedding trial", "HD airbrush finish", "Touch-up kit"},
				Benefits:  []string{"Lasts through ceremony and reception", "Photographs true to tone"},
			},
		},
		{
			ID:          serviceHairStylingID,
			Title:       "Hair Styling",
			Slug:        "hair-styling",
			Description: "Updos, waves and veil placement that hold from the first look to the last dance.",
			Image:       "/static/img/services/hair-styling.jpg",
			Position:    2,
			Active:      true,
		},
		{
			ID:          serviceMehndiID,
			Title:       "Mehndi",
			Slug:        "mehndi",
			Description: "Traditional and contemporary henna designs for the bride and her party.",
			Image:       "/static/img/services/mehndi.jpg",
			Position:    3,
			Active:      true,
		},
		{
			ID:          serviceSkinPrepID,
			Title:       "Skin Prep & Facials",
			Slug:        "skin-prep",
			Description: "A pre-wedding skin programme so makeup sits flawlessly on the day.",
			Image:       "/static/img/services/skin-prep.jpg",
			Position:    4,
			Active:      true,
		},
	}
}

// ServiceBySlug returns the fallback service with the given slug.
func ServiceBySlug(slug string) (models.Service, bool) {
	for _, s := range Services() {
		if s.Slug == slug {
			return s, true
		}
	}
	return models.Service{}, false
}

// Banners returns the default homepage slides.
func Banners() []models.Banner {
	return []models.Banner{
		{
			Image:    "/static/img/banners/hero-1.jpg",
			Title:    "Your Day, Your Glow",
			Subtitle: "Bridal makeup and hair by artists who listen.",
			Link:     "/services",
			Order:    1,
			Active:   true,
		},
		{
			Image:    "/static/img/banners/hero-2.jpg",
			Title:    "Book Your Trial",
			Subtitle: "Find your look before the big day.",
			Link:     "/contact",
			Order:    2,
			Active:   true,
		},
	}
}

// Offers returns the default promotions. Empty by default: an offer block
// with stale dates is worse than none.
func Offers() []models.Offer {
	return []models.Offer{}
}

// Testimonials returns the default reviews.
func Testimonials() []models.Testimonial {
	return []models.Testimonial{
		{
			Name:    "Ayesha K.",
			Rating:  5,
			Message: "I felt like myself, only more radiant. The makeup lasted fourteen hours.",
			Source:  models.SourceAdmin,
		},
		{
			Name:    "Maria L.",
			Rating:  5,
			Message: "Calm, punctual and so talented. My bridesmaids loved their looks too.",
			Source:  models.SourceAdmin,
		},
		{
			Name:    "Priya S.",
			Rating:  4,
			Message: "Beautiful mehndi and a lovely team. Would book again in a heartbeat.",
			Source:  models.SourceAdmin,
		},
	}
}

// Settings returns the default general settings. siteName overrides the
// built-in name when non-empty.
func Settings(siteName string) models.GeneralSettings {
	if siteName == "" {
		siteName = "Lumière Bridal Studio"
	}
	return models.GeneralSettings{
		SiteName:     siteName,
		Logo:         "/static/img/logo.svg",
		Tagline:      "Bridal beauty, thoughtfully done.",
		Phone:        "+1 (555) 010-0100",
		Email:        "hello@lumiere.studio",
		Address:      "12 Rosewood Lane, Suite 3",
		OpeningHours: "Tue–Sun, 9:00–19:00",
	}
}

// PageBanner returns the default hero for a page key.
func PageBanner(pageKey string) models.PageBanner {
	titles := map[string]string{
		PageHome:         "Bridal Beauty Studio",
		PageAbout:        "About Us",
		PageServices:     "Our Services",
		PageGallery:      "Gallery",
		PageContact:      "Contact Us",
		PageTestimonials: "Share Your Story",
	}
	title, ok := titles[pageKey]
	if !ok {
		title = "Bridal Beauty Studio"
	}
	return models.PageBanner{
		PageKey: pageKey,
		Image:   "/static/img/banners/page-default.jpg",
		Title:   title,
	}
}

// SEO returns the default metadata for a page name.
func SEO(pageName, siteName string) models.SEO {
	banner := PageBanner(pageName)
	settings := Settings(siteName)
	title := settings.SiteName
	if pageName != PageHome {
		title = banner.Title + " | " + settings.SiteName
	}
	return models.SEO{
		PageName:    pageName,
		Title:       title,
		Description: settings.Tagline,
		Keywords:    "bridal makeup, wedding hair, mehndi, bridal studio",
		OGImage:     "/static/img/og-default.jpg",
	}
}
