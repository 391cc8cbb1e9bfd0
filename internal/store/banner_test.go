// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"github.com/google/uuid"

	"bridalstudio/internal/models"
)

func listedBanner(items []models.Banner, id uuid.UUID) bool {
	for _, it := range items {
		if it.ID == id {
			return true
		}
	}
	return false
}

func TestBannerStoreCRUD(t *testing.T) {
	db := testDB(t)
	s := NewBannerStore(db)

	created, err := s.Create(&models.Banner{
		Image:  "/static/img/test-banner.jpg",
		Title:  "Store Test Banner",
		Link:   "/services",
		Order:  99,
		Active: true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { cleanRows(t, db, "banners", created.ID) })

	if created.ID == uuid.Nil {
		t.Error("expected generated UUID")
	}

	got, err := s.FindByID(created.ID)
	if err != nil || got == nil {
		t.Fatalf("FindByID = %+v, %v", got, err)
	}
	if got.Title != "Store Test Banner" || got.Link != "/services" || got.Order != 99 {
		t.Errorf("FindByID returned %+v", got)
	}

	got.Subtitle = "Updated"
	updated, err := s.Update(got)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated == nil || updated.Subtitle != "Updated" {
		t.Errorf("Update returned %+v", updated)
	}

	missing, err := s.Update(&models.Banner{ID: uuid.New(), Image: "/x.jpg"})
	if err != nil || missing != nil {
		t.Errorf("Update (missing) = %+v, %v; want nil, nil", missing, err)
	}

	ok, err := s.Delete(created.ID)
	if err != nil || !ok {
		t.Fatalf("Delete = %v, %v", ok, err)
	}
	ok, err = s.Delete(created.ID)
	if err != nil || ok {
		t.Errorf("second Delete = %v, %v; want false, nil", ok, err)
	}
	if gone, _ := s.FindByID(created.ID); gone != nil {
		t.Error("banner still found after Delete")
	}
}

func TestBannerStoreInactiveHidden(t *testing.T) {
	db := testDB(t)
	s := NewBannerStore(db)

	hidden, err := s.Create(&models.Banner{Image: "/static/img/test-hidden.jpg", Active: false})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { cleanRows(t, db, "banners", hidden.ID) })

	active, err := s.List(true)
	if err != nil {
		t.Fatalf("List(true): %v", err)
	}
	if listedBanner(active, hidden.ID) {
		t.Error("inactive banner returned by List(true)")
	}

	all, err := s.List(false)
	if err != nil {
		t.Fatalf("List(false): %v", err)
	}
	if !listedBanner(all, hidden.ID) {
		t.Error("inactive banner missing from List(false)")
	}
}
