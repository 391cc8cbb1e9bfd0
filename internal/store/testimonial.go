// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"bridalstudio/internal/models"
)

// TestimonialStore manages client reviews.
type TestimonialStore struct {
	db *sql.DB
}

// NewTestimonialStore creates a new TestimonialStore with the given database connection.
func NewTestimonialStore(db *sql.DB) *TestimonialStore {
	return &TestimonialStore{db: db}
}

const testimonialColumns = `id, name, rating, message, image, service_id, source, created_at`

func scanTestimonial(row interface{ Scan(...any) error }) (*models.Testimonial, error) {
	t := &models.Testimonial{}
	err := row.Scan(
		&t.ID, &t.Name, &t.Rating, &t.Message, &t.Image,
		&t.ServiceID, &t.Source, &t.CreatedAt,
	)
	return t, err
}

// List returns testimonials newest first.
func (s *TestimonialStore) List() ([]models.Testimonial, error) {
	rows, err := s.db.Query(`SELECT ` + testimonialColumns + ` FROM testimonials ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	defer rows.Close()

	items := []models.Testimonial{}
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan testimonial: %w", err)
		}
		items = append(items, *t)
	}
	return items, rows.Err()
}

// foreignKeyViolation is the PostgreSQL SQLSTATE for a failed REFERENCES check.
const foreignKeyViolation = "23503"

// ErrUnknownService is returned by Create when ServiceID names no service.
var ErrUnknownService = errors.New("unknown service")

// Create inserts a testimonial.
func (s *TestimonialStore) Create(in *models.Testimonial) (*models.Testimonial, error) {
	t, err := scanTestimonial(s.db.QueryRow(`
		INSERT INTO testimonials (name, rating, message, image, service_id, source)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+testimonialColumns,
		in.Name, in.Rating, in.Message, in.Image, in.ServiceID, in.Source,
	))
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return nil, ErrUnknownService
	}
	if err != nil {
		return nil, fmt.Errorf("create testimonial: %w", err)
	}
	return t, nil
}

// Delete removes a testimonial. Reports whether a row was removed.
func (s *TestimonialStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete testimonial: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
