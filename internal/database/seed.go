// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"bridalstudio/internal/fallback"
)

// Default development credentials created by Seed.
const (
	SeedAdminEmail    = "admin@bridalstudio.local"
	SeedAdminPassword = "admin"
)

// Seed populates the database with initial development data: a default
// admin user plus the fallback content set, so a fresh install renders the
// same pages it would show when the API is unreachable. Existing rows are
// never touched.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(SeedAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed bcrypt: %w", err)
		}

		_, err = db.Exec(`
			INSERT INTO users (name, email, password_hash, role)
			VALUES ($1, $2, $3, 'admin')
		`, "Studio Admin", SeedAdminEmail, string(hash))
		if err != nil {
			return fmt.Errorf("seed insert admin: %w", err)
		}

		slog.Info("database seeded with default admin user",
			"email", SeedAdminEmail,
			"password", SeedAdminPassword,
		)
	}

	if err := seedContent(db); err != nil {
		return err
	}

	return nil
}

// seedContent inserts the fallback services, banners, settings, page
// banners and SEO rows when their tables are empty.
func seedContent(db *sql.DB) error {
	var services int
	if err := db.QueryRow("SELECT COUNT(*) FROM services").Scan(&services); err != nil {
		return fmt.Errorf("seed check services: %w", err)
	}
	if services == 0 {
		for _, s := range fallback.Services() {
			var content []byte
			if !s.Content.IsEmpty() {
				b, err := json.Marshal(s.Content)
				if err != nil {
					return fmt.Errorf("seed marshal service content: %w", err)
				}
				content = b
			}
			_, err := db.Exec(`
				INSERT INTO services (title, slug, description, image, position, active, content)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
				ON CONFLICT (slug) DO NOTHING
			`, s.Title, s.Slug, s.Description, s.Image, s.Position, s.Active, content)
			if err != nil {
				return fmt.Errorf("seed insert service %s: %w", s.Slug, err)
			}
		}
	}

	var banners int
	if err := db.QueryRow("SELECT COUNT(*) FROM banners").Scan(&banners); err != nil {
		return fmt.Errorf("seed check banners: %w", err)
	}
	if banners == 0 {
		for _, b := range fallback.Banners() {
			_, err := db.Exec(`
				INSERT INTO banners (image, title, subtitle, link, sort_order, active)
				VALUES ($1, $2, $3, $4, $5, $6)
			`, b.Image, b.Title, b.Subtitle, b.Link, b.Order, b.Active)
			if err != nil {
				return fmt.Errorf("seed insert banner: %w", err)
			}
		}
	}

	for key, value := range fallback.Settings("").Map() {
		if _, err := db.Exec(`
			INSERT INTO site_settings (key, value) VALUES ($1, $2)
			ON CONFLICT (key) DO NOTHING
		`, key, value); err != nil {
			return fmt.Errorf("seed insert setting %s: %w", key, err)
		}
	}

	for _, key := range fallback.PageKeys {
		pb := fallback.PageBanner(key)
		if _, err := db.Exec(`
			INSERT INTO page_banners (page_key, image, title, subtitle) VALUES ($1, $2, $3, $4)
			ON CONFLICT (page_key) DO NOTHING
		`, pb.PageKey, pb.Image, pb.Title, pb.Subtitle); err != nil {
			return fmt.Errorf("seed insert page banner %s: %w", key, err)
		}

		seo := fallback.SEO(key, "")
		if _, err := db.Exec(`
			INSERT INTO seo_settings (page_name, title, description, keywords, og_image)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (page_name) DO NOTHING
		`, seo.PageName, seo.Title, seo.Description, seo.Keywords, seo.OGImage); err != nil {
			return fmt.Errorf("seed insert seo %s: %w", key, err)
		}
	}

	return nil
}
