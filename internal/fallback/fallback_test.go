// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package fallback

import (
	"strings"
	"testing"
)

func TestDataSetsAreNotEmpty(t *testing.T) {
	if len(Services()) == 0 {
		t.Error("Services() is empty")
	}
	if len(Banners()) == 0 {
		t.Error("Banners() is empty")
	}
	if len(Testimonials()) == 0 {
		t.Error("Testimonials() is empty")
	}
	if Offers() == nil {
		t.Error("Offers() returned nil, want empty slice")
	}
}

func TestServicesReturnsFreshCopy(t *testing.T) {
	first := Services()
	first[0].Title = "mutated"
	first[0].Content.Features[0] = "mutated"

	second := Services()
	if second[0].Title == "mutated" {
		t.Error("Services() shares the slice between calls")
	}
	if second[0].Content.Features[0] == "mutated" {
		t.Error("Services() shares nested content between calls")
	}
}

func TestServiceSlugsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range Services() {
		if s.Slug == "" {
			t.Errorf("service %q has empty slug", s.Title)
		}
		if seen[s.Slug] {
			t.Errorf("duplicate slug %q", s.Slug)
		}
		seen[s.Slug] = true
	}
}

func TestServiceBySlug(t *testing.T) {
	s, ok := ServiceBySlug("mehndi")
	if !ok || s.Title != "Mehndi" {
		t.Errorf("ServiceBySlug(mehndi) = %+v, %v", s, ok)
	}
	if _, ok := ServiceBySlug("does-not-exist"); ok {
		t.Error("ServiceBySlug(unknown) ok = true, want false")
	}
}

func TestTestimonialRatingsValid(t *testing.T) {
	for _, tm := range Testimonials() {
		if tm.Rating < 1 || tm.Rating > 5 {
			t.Errorf("testimonial %q rating %d out of range", tm.Name, tm.Rating)
		}
	}
}

func TestSettingsSiteNameOverride(t *testing.T) {
	if got := Settings("").SiteName; got == "" {
		t.Error("Settings(\"\").SiteName is empty")
	}
	if got := Settings("Rose & Veil").SiteName; got != "Rose & Veil" {
		t.Errorf("SiteName = %q, want override", got)
	}
}

func TestPageBannerKnownAndUnknown(t *testing.T) {
	for _, key := range PageKeys {
		if b := PageBanner(key); b.Title == "" || b.PageKey != key {
			t.Errorf("PageBanner(%q) = %+v", key, b)
		}
	}
	if b := PageBanner("nope"); b.Title == "" {
		t.Error("PageBanner(unknown) has no title")
	}
}

func TestSEOTitles(t *testing.T) {
	home := SEO(PageHome, "Studio")
	if home.Title != "Studio" {
		t.Errorf("home title = %q, want %q", home.Title, "Studio")
	}
	about := SEO(PageAbout, "Studio")
	if !strings.HasSuffix(about.Title, "| Studio") {
		t.Errorf("about title = %q, want suffix %q", about.Title, "| Studio")
	}
}
