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

// OfferStore manages promotional offers.
type OfferStore struct {
	db *sql.DB
}

// NewOfferStore creates a new OfferStore with the given database connection.
func NewOfferStore(db *sql.DB) *OfferStore {
	return &OfferStore{db: db}
}

const offerColumns = `id, title, description, image, discount, valid_until, sort_order, active, created_at, updated_at`

func scanOffer(row interface{ Scan(...any) error }) (*models.Offer, error) {
	o := &models.Offer{}
	err := row.Scan(
		&o.ID, &o.Title, &o.Description, &o.Image, &o.Discount, &o.ValidUntil,
		&o.Order, &o.Active, &o.CreatedAt, &o.UpdatedAt,
	)
	return o, err
}

// List returns offers in display order. activeOnly also hides offers whose
// validity has ended.
func (s *OfferStore) List(activeOnly bool) ([]models.Offer, error) {
	rows, err := s.db.Query(`
		SELECT `+offerColumns+`
		FROM offers
		WHERE NOT $1 OR (active AND (valid_until IS NULL OR valid_until >= NOW()))
		ORDER BY sort_order ASC, created_at ASC
	`, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	defer rows.Close()

	items := []models.Offer{}
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan offer: %w", err)
		}
		items = append(items, *o)
	}
	return items, rows.Err()
}

// FindByID retrieves an offer. Returns nil if not found.
func (s *OfferStore) FindByID(id uuid.UUID) (*models.Offer, error) {
	o, err := scanOffer(s.db.QueryRow(`SELECT `+offerColumns+` FROM offers WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find offer: %w", err)
	}
	return o, nil
}

// Create inserts an offer.
func (s *OfferStore) Create(in *models.Offer) (*models.Offer, error) {
	o, err := scanOffer(s.db.QueryRow(`
		INSERT INTO offers (title, description, image, discount, valid_until, sort_order, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+offerColumns,
		in.Title, in.Description, in.Image, in.Discount, in.ValidUntil, in.Order, in.Active,
	))
	if err != nil {
		return nil, fmt.Errorf("create offer: %w", err)
	}
	return o, nil
}

// Update overwrites an offer. Returns nil if not found.
func (s *OfferStore) Update(in *models.Offer) (*models.Offer, error) {
	o, err := scanOffer(s.db.QueryRow(`
		UPDATE offers
		SET title = $1, description = $2, image = $3, discount = $4, valid_until = $5,
		    sort_order = $6, active = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING `+offerColumns,
		in.Title, in.Description, in.Image, in.Discount, in.ValidUntil, in.Order, in.Active, in.ID,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update offer: %w", err)
	}
	return o, nil
}

// Delete removes an offer. Reports whether a row was removed.
func (s *OfferStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM offers WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete offer: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
