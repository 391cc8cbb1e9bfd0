// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"bridalstudio/internal/models"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a duplicate UNIQUE key.
const uniqueViolation = "23505"

// ErrSlugTaken is returned by Create and Update when another service
// already holds the slug. SlugExists catches this ahead of time except
// when two writes race.
var ErrSlugTaken = errors.New("service slug taken")

// ServiceStore handles the studio's service catalogue.
type ServiceStore struct {
	db *sql.DB
}

// NewServiceStore creates a new ServiceStore with the given database connection.
func NewServiceStore(db *sql.DB) *ServiceStore {
	return &ServiceStore{db: db}
}

const serviceColumns = `id, title, slug, description, image, price, position, active, content, created_at, updated_at`

func scanService(row interface{ Scan(...any) error }) (*models.Service, error) {
	s := &models.Service{}
	var content []byte
	if err := row.Scan(
		&s.ID, &s.Title, &s.Slug, &s.Description, &s.Image, &s.Price,
		&s.Position, &s.Active, &content, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(content) > 0 {
		s.Content = &models.ServiceContent{}
		if err := json.Unmarshal(content, s.Content); err != nil {
			return nil, fmt.Errorf("decode service content: %w", err)
		}
	}
	return s, nil
}

// encodeContent returns the JSONB value for a content block, or nil when
// the block is empty so the column stays NULL.
func encodeContent(c *models.ServiceContent) ([]byte, error) {
	if c.IsEmpty() {
		return nil, nil
	}
	b, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode service content: %w", err)
	}
	return b, nil
}

// List returns services ordered by position. When activeOnly is set,
// inactive services are omitted.
func (s *ServiceStore) List(activeOnly bool) ([]models.Service, error) {
	rows, err := s.db.Query(`
		SELECT `+serviceColumns+`
		FROM services
		WHERE active OR NOT $1
		ORDER BY position ASC, created_at ASC
	`, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	items := []models.Service{}
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		items = append(items, *svc)
	}
	return items, rows.Err()
}

// FindByID retrieves a service by its UUID. Returns nil if not found.
func (s *ServiceStore) FindByID(id uuid.UUID) (*models.Service, error) {
	svc, err := scanService(s.db.QueryRow(`SELECT `+serviceColumns+` FROM services WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find service by id: %w", err)
	}
	return svc, nil
}

// FindBySlug retrieves an active service by its slug. Returns nil if not found.
func (s *ServiceStore) FindBySlug(slug string) (*models.Service, error) {
	svc, err := scanService(s.db.QueryRow(`
		SELECT `+serviceColumns+` FROM services WHERE slug = $1 AND active
	`, slug))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find service by slug: %w", err)
	}
	return svc, nil
}

// SlugExists reports whether a service other than excludeID already uses slug.
func (s *ServiceStore) SlugExists(slug string, excludeID *uuid.UUID) (bool, error) {
	var exists bool
	var err error
	if excludeID != nil {
		err = s.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM services WHERE slug = $1 AND id != $2)`, slug, *excludeID).Scan(&exists)
	} else {
		err = s.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM services WHERE slug = $1)`, slug).Scan(&exists)
	}
	if err != nil {
		return false, fmt.Errorf("check service slug: %w", err)
	}
	return exists, nil
}

// Create inserts a new service and returns it with generated fields filled.
func (s *ServiceStore) Create(in *models.Service) (*models.Service, error) {
	content, err := encodeContent(in.Content)
	if err != nil {
		return nil, err
	}
	svc, err := scanService(s.db.QueryRow(`
		INSERT INTO services (title, slug, description, image, price, position, active, content)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+serviceColumns,
		in.Title, in.Slug, in.Description, in.Image, in.Price, in.Position, in.Active, content,
	))
	if isUniqueViolation(err) {
		return nil, ErrSlugTaken
	}
	if err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return svc, nil
}

// Update overwrites the editable fields of a service. Returns nil if the
// service does not exist.
func (s *ServiceStore) Update(in *models.Service) (*models.Service, error) {
	content, err := encodeContent(in.Content)
	if err != nil {
		return nil, err
	}
	svc, err := scanService(s.db.QueryRow(`
		UPDATE services
		SET title = $1, slug = $2, description = $3, image = $4, price = $5,
		    position = $6, active = $7, content = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING `+serviceColumns,
		in.Title, in.Slug, in.Description, in.Image, in.Price, in.Position, in.Active, content, in.ID,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if isUniqueViolation(err) {
		return nil, ErrSlugTaken
	}
	if err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}
	return svc, nil
}

// Delete removes a service. Testimonials pointing at it keep their row
// with service_id set to NULL. Reports whether a row was removed.
func (s *ServiceStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete service: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
