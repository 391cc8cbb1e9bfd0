// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package api

import (
	"errors"
	"io"
	"net/http"
)

const (
	// maxUploadSize is the maximum accepted upload (10 MB).
	maxUploadSize = 10 << 20

	// sniffLen is how many bytes http.DetectContentType looks at.
	sniffLen = 512
)

// allowedMediaTypes are the image types the dashboard may upload.
var allowedMediaTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// mediaUpload is the data payload of POST /media.
type mediaUpload struct {
	URL string `json:"url"`
}

// UploadMedia accepts a multipart "file" field and stores it with the
// configured backend. The content type is sniffed, not trusted.
func (a *API) UploadMedia(w http.ResponseWriter, r *http.Request) {
	if a.media == nil {
		writeError(w, http.StatusServiceUnavailable, "media storage is not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+sniffLen)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "File is too large (max 10 MB).")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		writeError(w, http.StatusRequestEntityTooLarge, "File is too large (max 10 MB).")
		return
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "could not read file")
		return
	}
	contentType := http.DetectContentType(head[:n])
	if !allowedMediaTypes[contentType] {
		writeError(w, http.StatusBadRequest, "Only JPEG, PNG, GIF and WebP images are allowed.")
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		internalError(w, "rewind upload failed", err)
		return
	}

	url, err := a.media.Upload(r.Context(), header.Filename, contentType, file, header.Size)
	if err != nil {
		internalError(w, "media upload failed", err)
		return
	}
	writeOK(w, http.StatusCreated, mediaUpload{URL: url})
}
