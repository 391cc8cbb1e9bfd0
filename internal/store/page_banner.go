// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"bridalstudio/internal/models"
)

// PageBannerStore manages the per-page hero banners.
type PageBannerStore struct {
	db *sql.DB
}

// NewPageBannerStore creates a new PageBannerStore with the given database connection.
func NewPageBannerStore(db *sql.DB) *PageBannerStore {
	return &PageBannerStore{db: db}
}

// Find returns the banner for a page key. Returns nil if not found.
func (s *PageBannerStore) Find(pageKey string) (*models.PageBanner, error) {
	pb := &models.PageBanner{}
	err := s.db.QueryRow(`
		SELECT page_key, image, title, subtitle, updated_at
		FROM page_banners WHERE page_key = $1
	`, pageKey).Scan(&pb.PageKey, &pb.Image, &pb.Title, &pb.Subtitle, &pb.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find page banner: %w", err)
	}
	return pb, nil
}

// Upsert creates or replaces the banner for in.PageKey.
func (s *PageBannerStore) Upsert(in *models.PageBanner) (*models.PageBanner, error) {
	pb := &models.PageBanner{}
	err := s.db.QueryRow(`
		INSERT INTO page_banners (page_key, image, title, subtitle, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (page_key)
		DO UPDATE SET image = EXCLUDED.image, title = EXCLUDED.title,
		              subtitle = EXCLUDED.subtitle, updated_at = EXCLUDED.updated_at
		RETURNING page_key, image, title, subtitle, updated_at
	`, in.PageKey, in.Image, in.Title, in.Subtitle).Scan(
		&pb.PageKey, &pb.Image, &pb.Title, &pb.Subtitle, &pb.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert page banner: %w", err)
	}
	return pb, nil
}
