// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"bridalstudio/internal/models"
)

// BannerStore manages homepage hero slides.
type BannerStore struct {
	db *sql.DB
}

// NewBannerStore creates a new BannerStore with the given database connection.
func NewBannerStore(db *sql.DB) *BannerStore {
	return &BannerStore{db: db}
}

const bannerColumns = `id, image, title, subtitle, link, sort_order, active, created_at, updated_at`

func scanBanner(row interface{ Scan(...any) error }) (*models.Banner, error) {
	b := &models.Banner{}
	err := row.Scan(
		&b.ID, &b.Image, &b.Title, &b.Subtitle, &b.Link,
		&b.Order, &b.Active, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

// List returns banners in display order.
func (s *BannerStore) List(activeOnly bool) ([]models.Banner, error) {
	rows, err := s.db.Query(`
		SELECT `+bannerColumns+`
		FROM banners
		WHERE active OR NOT $1
		ORDER BY sort_order ASC, created_at ASC
	`, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list banners: %w", err)
	}
	defer rows.Close()

	items := []models.Banner{}
	for rows.Next() {
		b, err := scanBanner(rows)
		if err != nil {
			return nil, fmt.Errorf("scan banner: %w", err)
		}
		items = append(items, *b)
	}
	return items, rows.Err()
}

// FindByID retrieves a banner. Returns nil if not found.
func (s *BannerStore) FindByID(id uuid.UUID) (*models.Banner, error) {
	b, err := scanBanner(s.db.QueryRow(`SELECT `+bannerColumns+` FROM banners WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find banner: %w", err)
	}
	return b, nil
}

// Create inserts a banner.
func (s *BannerStore) Create(in *models.Banner) (*models.Banner, error) {
	b, err := scanBanner(s.db.QueryRow(`
		INSERT INTO banners (image, title, subtitle, link, sort_order, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+bannerColumns,
		in.Image, in.Title, in.Subtitle, in.Link, in.Order, in.Active,
	))
	if err != nil {
		return nil, fmt.Errorf("create banner: %w", err)
	}
	return b, nil
}

// Update overwrites a banner. Returns nil if not found.
func (s *BannerStore) Update(in *models.Banner) (*models.Banner, error) {
	b, err := scanBanner(s.db.QueryRow(`
		UPDATE banners
		SET image = $1, title = $2, subtitle = $3, link = $4, sort_order = $5,
		    active = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING `+bannerColumns,
		in.Image, in.Title, in.Subtitle, in.Link, in.Order, in.Active, in.ID,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update banner: %w", err)
	}
	return b, nil
}

// Delete removes a banner. Reports whether a row was removed.
func (s *BannerStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM banners WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete banner: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
