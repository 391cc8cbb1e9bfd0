// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"bridalstudio/internal/models"
)

// SEOStore manages per-page metadata.
type SEOStore struct {
	db *sql.DB
}

// NewSEOStore creates a new SEOStore with the given database connection.
func NewSEOStore(db *sql.DB) *SEOStore {
	return &SEOStore{db: db}
}

// Find returns the metadata for a page. Returns nil if not found.
func (s *SEOStore) Find(pageName string) (*models.SEO, error) {
	m := &models.SEO{}
	err := s.db.QueryRow(`
		SELECT page_name, title, description, keywords, og_image, updated_at
		FROM seo_settings WHERE page_name = $1
	`, pageName).Scan(&m.PageName, &m.Title, &m.Description, &m.Keywords, &m.OGImage, &m.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find seo: %w", err)
	}
	return m, nil
}

// Upsert creates or replaces the metadata for in.PageName.
func (s *SEOStore) Upsert(in *models.SEO) (*models.SEO, error) {
	m := &models.SEO{}
	err := s.db.QueryRow(`
		INSERT INTO seo_settings (page_name, title, description, keywords, og_image, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (page_name)
		DO UPDATE SET title = EXCLUDED.title, description = EXCLUDED.description,
		              keywords = EXCLUDED.keywords, og_image = EXCLUDED.og_image,
		              updated_at = EXCLUDED.updated_at
		RETURNING page_name, title, description, keywords, og_image, updated_at
	`, in.PageName, in.Title, in.Description, in.Keywords, in.OGImage).Scan(
		&m.PageName, &m.Title, &m.Description, &m.Keywords, &m.OGImage, &m.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert seo: %w", err)
	}
	return m, nil
}
