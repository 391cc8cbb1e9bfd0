// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package storage uploads dashboard media (banner, service and offer
// images) to an S3-compatible bucket or to Cloudinary and returns the URL
// the site embeds. The backend is chosen by MEDIA_BACKEND.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"bridalstudio/internal/config"
	"bridalstudio/internal/slug"
)

// Uploader stores one file and returns its public URL. Delete removes a
// file by that URL and ignores URLs the backend did not issue.
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader, size int64) (string, error)
	Delete(ctx context.Context, fileURL string) error
}

// New builds the uploader selected by cfg.MediaBackend. Returns (nil, nil)
// when uploads are disabled or the chosen backend is not configured.
func New(cfg *config.Config) (Uploader, error) {
	switch cfg.MediaBackend {
	case "s3":
		c, err := NewS3(cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3PublicURL)
		if err != nil || c == nil {
			return nil, err
		}
		return c, nil
	case "cloudinary":
		c, err := NewCloudinary(cfg.CloudinaryURL, cfg.CloudinaryFolder)
		if err != nil || c == nil {
			return nil, err
		}
		return c, nil
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown media backend %q", cfg.MediaBackend)
	}
}

// ObjectKey builds a unique, URL-safe key for filename:
// media/<yyyy>/<mm>/<slug>-<uuid8><.ext>.
func ObjectKey(filename string) string {
	return objectKeyAt(filename, time.Now().UTC(), uuid.New())
}

func objectKeyAt(filename string, now time.Time, id uuid.UUID) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	ext := strings.ToLower(path.Ext(base))
	name := slug.Generate(strings.TrimSuffix(base, path.Ext(base)))
	if name == "" {
		name = "file"
	}
	return fmt.Sprintf("media/%04d/%02d/%s-%s%s", now.Year(), int(now.Month()), name, id.String()[:8], ext)
}
