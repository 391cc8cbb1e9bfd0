// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"

	"bridalstudio/internal/models"
)

// newTestServer creates an httptest.Server that responds with the given
// status code and body. Closed automatically when the test ends.
func newTestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestListServicesSuccess(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"success":true,"data":[{"title":"Bridal Makeup","slug":"bridal-makeup"}]}`)

	got, err := New(srv.URL).ListServices(context.Background(), false)
	if err != nil {
		t.Fatalf("ListServices: %v", err)
	}
	if len(got) != 1 || got[0].Slug != "bridal-makeup" {
		t.Errorf("got %+v", got)
	}
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    error
		message string
	}{
		{"unsuccessful envelope", http.StatusOK, `{"success":false,"data":null,"message":"nope"}`, ErrUnsuccessful, "nope"},
		{"malformed json", http.StatusOK, `<html>`, ErrMalformed, ""},
		{"server error", http.StatusInternalServerError, `{"success":false,"message":"boom"}`, ErrStatus, "boom"},
		{"server error html", http.StatusBadGateway, `bad gateway`, ErrStatus, ""},
		{"not found", http.StatusNotFound, `{"success":false,"message":"service not found"}`, ErrNotFound, "service not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.status, tt.body)
			_, err := New(srv.URL).ListBanners(context.Background(), false)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if got := Message(err, ""); got != tt.message {
				t.Errorf("Message = %q, want %q", got, tt.message)
			}
		})
	}
}

func TestNotFoundIsAlsoStatus(t *testing.T) {
	srv := newTestServer(t, http.StatusNotFound, `{"success":false}`)
	_, err := New(srv.URL).GetServiceBySlug(context.Background(), "missing")
	if !errors.Is(err, ErrStatus) {
		t.Errorf("expected ErrNotFound to match ErrStatus, got %v", err)
	}
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url).ListTestimonials(context.Background())
	if !errors.Is(err, ErrTransport) {
		t.Errorf("err = %v, want ErrTransport", err)
	}
}

func TestTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	start := time.Now()
	_, err := New(srv.URL, WithTimeout(50*time.Millisecond)).ListOffers(context.Background(), false)
	if !errors.Is(err, ErrTransport) {
		t.Errorf("err = %v, want ErrTransport", err)
	}
	if time.Since(start) > 2*time.Second {
		t.Error("call did not honour the timeout")
	}
}

func TestOneRequestPerCall(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	New(srv.URL).ListServices(context.Background(), false)
	if n := hits.Load(); n != 1 {
		t.Errorf("requests = %d, want 1 (no retry)", n)
	}
}

func TestRequestShape(t *testing.T) {
	var gotMethod, gotPath, gotQuery, gotAuth string
	var gotBody models.Service
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath, gotQuery = r.Method, r.URL.Path, r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		if r.Method == http.MethodGet {
			io.WriteString(w, `{"success":true,"data":[]}`)
			return
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(models.OK(gotBody))
	}))
	t.Cleanup(srv.Close)

	base := New(srv.URL + "/")
	c := base.WithToken("tok")
	id := uuid.New()

	got, err := c.UpdateService(context.Background(), &models.Service{ID: id, Title: "Hair"})
	if err != nil {
		t.Fatalf("UpdateService: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/services/"+id.String() {
		t.Errorf("request = %s %s", gotMethod, gotPath)
	}
	if gotAuth != "Bearer tok" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotBody.Title != "Hair" || got.Title != "Hair" {
		t.Errorf("body = %+v, result = %+v", gotBody, got)
	}

	// WithToken must not mutate the original client.
	if _, err := base.ListServices(context.Background(), true); err != nil {
		t.Fatalf("ListServices: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("base client sent Authorization %q", gotAuth)
	}
	if gotQuery != "all=1" {
		t.Errorf("query = %q, want all=1", gotQuery)
	}
}

func TestUploadMedia(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f, hdr, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer f.Close()
		data, _ := io.ReadAll(f)
		if hdr.Filename != "veil.jpg" || string(data) != "jpeg-bytes" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		io.WriteString(w, `{"success":true,"data":{"url":"https://cdn.example/veil.jpg"}}`)
	}))
	t.Cleanup(srv.Close)

	url, err := New(srv.URL).UploadMedia(context.Background(), "veil.jpg", strings.NewReader("jpeg-bytes"))
	if err != nil {
		t.Fatalf("UploadMedia: %v", err)
	}
	if url != "https://cdn.example/veil.jpg" {
		t.Errorf("url = %q", url)
	}
}

func TestIsUnauthorized(t *testing.T) {
	srv := newTestServer(t, http.StatusUnauthorized, `{"success":false,"message":"authentication required"}`)
	_, err := New(srv.URL).Session(context.Background())
	if !IsUnauthorized(err) {
		t.Errorf("IsUnauthorized(%v) = false", err)
	}
	if IsUnauthorized(errors.New("other")) {
		t.Error("IsUnauthorized(plain error) = true")
	}
}

func TestSettle(t *testing.T) {
	fallback := []string{"fallback"}

	ok := Settle([]string{"live"}, nil, fallback)
	if !ok.Success || ok.Data[0] != "live" {
		t.Errorf("Settle(success) = %+v", ok)
	}

	failed := Settle(nil, &Error{Op: "GET /x", Kind: ErrTransport}, fallback)
	if failed.Success || failed.Data[0] != "fallback" {
		t.Errorf("Settle(error) = %+v", failed)
	}
	if failed.Message == "" {
		t.Error("expected error message on failed envelope")
	}
}
