// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package api_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"bridalstudio/internal/models"
	"bridalstudio/internal/session"
	"bridalstudio/internal/store"
)

// memServices is an in-memory api.ServiceStore. With racySlugs set,
// SlugExists always answers false and the duplicate is caught on write,
// the way the UNIQUE column catches two concurrent creates.
type memServices struct {
	mu        sync.Mutex
	items     []models.Service
	racySlugs bool
}

func (m *memServices) List(activeOnly bool) ([]models.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Service
	for _, s := range m.items {
		if s.Active || !activeOnly {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (m *memServices) FindByID(id uuid.UUID) (*models.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.items {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, nil
}

func (m *memServices) FindBySlug(slug string) (*models.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.items {
		if s.Slug == slug && s.Active {
			return &s, nil
		}
	}
	return nil, nil
}

func (m *memServices) SlugExists(slug string, excludeID *uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.racySlugs {
		return false, nil
	}
	return m.slugTaken(slug, excludeID), nil
}

func (m *memServices) slugTaken(slug string, excludeID *uuid.UUID) bool {
	for _, s := range m.items {
		if s.Slug == slug && (excludeID == nil || s.ID != *excludeID) {
			return true
		}
	}
	return false
}

func (m *memServices) Create(in *models.Service) (*models.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.slugTaken(in.Slug, nil) {
		return nil, store.ErrSlugTaken
	}
	s := *in
	s.ID = uuid.New()
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	m.items = append(m.items, s)
	return &s, nil
}

func (m *memServices) Update(in *models.Service) (*models.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.slugTaken(in.Slug, &in.ID) {
		return nil, store.ErrSlugTaken
	}
	for i, s := range m.items {
		if s.ID == in.ID {
			u := *in
			u.CreatedAt = s.CreatedAt
			u.UpdatedAt = time.Now()
			m.items[i] = u
			return &u, nil
		}
	}
	return nil, nil
}

func (m *memServices) Delete(id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, s := range m.items {
		if s.ID == id {
			m.items = slices.Delete(m.items, i, i+1)
			return true, nil
		}
	}
	return false, nil
}

func (m *memServices) has(id uuid.UUID) bool {
	s, _ := m.FindByID(id)
	return s != nil
}

// memBanners is an in-memory api.BannerStore.
type memBanners struct {
	mu    sync.Mutex
	items []models.Banner
}

func (m *memBanners) List(activeOnly bool) ([]models.Banner, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Banner
	for _, b := range m.items {
		if b.Active || !activeOnly {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBanners) Create(in *models.Banner) (*models.Banner, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b := *in
	b.ID = uuid.New()
	m.items = append(m.items, b)
	return &b, nil
}

func (m *memBanners) Update(in *models.Banner) (*models.Banner, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, b := range m.items {
		if b.ID == in.ID {
			m.items[i] = *in
			u := *in
			return &u, nil
		}
	}
	return nil, nil
}

func (m *memBanners) Delete(id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, b := range m.items {
		if b.ID == id {
			m.items = slices.Delete(m.items, i, i+1)
			return true, nil
		}
	}
	return false, nil
}

// memOffers is an in-memory api.OfferStore.
type memOffers struct {
	mu    sync.Mutex
	items []models.Offer
}

func (m *memOffers) List(activeOnly bool) ([]models.Offer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	var out []models.Offer
	for _, o := range m.items {
		if !activeOnly || (o.Active && !o.Expired(now)) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memOffers) Create(in *models.Offer) (*models.Offer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o := *in
	o.ID = uuid.New()
	m.items = append(m.items, o)
	return &o, nil
}

func (m *memOffers) Update(in *models.Offer) (*models.Offer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, o := range m.items {
		if o.ID == in.ID {
			m.items[i] = *in
			u := *in
			return &u, nil
		}
	}
	return nil, nil
}

func (m *memOffers) Delete(id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, o := range m.items {
		if o.ID == id {
			m.items = slices.Delete(m.items, i, i+1)
			return true, nil
		}
	}
	return false, nil
}

// memTestimonials is an in-memory api.TestimonialStore. Links to services
// the services fake doesn't know fail like the foreign key does.
type memTestimonials struct {
	mu       sync.Mutex
	items    []models.Testimonial
	services *memServices
}

func (m *memTestimonials) List() ([]models.Testimonial, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := slices.Clone(m.items)
	slices.Reverse(out)
	return out, nil
}

func (m *memTestimonials) Create(in *models.Testimonial) (*models.Testimonial, error) {
	if in.ServiceID != nil && !m.services.has(*in.ServiceID) {
		return nil, fmt.Errorf("insert testimonial: %w", store.ErrUnknownService)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	t := *in
	t.ID = uuid.New()
	t.CreatedAt = time.Now()
	m.items = append(m.items, t)
	return &t, nil
}

func (m *memTestimonials) Delete(id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, t := range m.items {
		if t.ID == id {
			m.items = slices.Delete(m.items, i, i+1)
			return true, nil
		}
	}
	return false, nil
}

// memPages is an in-memory page banner and SEO store.
type memPages struct {
	mu      sync.Mutex
	banners map[string]models.PageBanner
	seo     map[string]models.SEO
}

func newMemPages() *memPages {
	return &memPages{banners: map[string]models.PageBanner{}, seo: map[string]models.SEO{}}
}

func (m *memPages) Find(pageKey string) (*models.PageBanner, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	pb, ok := m.banners[pageKey]
	if !ok {
		return nil, nil
	}
	return &pb, nil
}

func (m *memPages) Upsert(in *models.PageBanner) (*models.PageBanner, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	pb := *in
	pb.UpdatedAt = time.Now()
	m.banners[pb.PageKey] = pb
	return &pb, nil
}

// memSEO adapts memPages to api.SEOStore.
type memSEO struct{ *memPages }

func (m memSEO) Find(pageName string) (*models.SEO, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.seo[pageName]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (m memSEO) Upsert(in *models.SEO) (*models.SEO, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := *in
	m.seo[s.PageName] = s
	return &s, nil
}

// memSettings is an in-memory api.SettingStore.
type memSettings struct {
	mu sync.Mutex
	g  models.GeneralSettings
}

func (m *memSettings) General() (models.GeneralSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.g, nil
}

func (m *memSettings) SetGeneral(g models.GeneralSettings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.g = g
	return nil
}

// memUsers is an in-memory api.UserStore with plaintext passwords.
type memUsers struct {
	mu        sync.Mutex
	users     map[uuid.UUID]*models.User
	passwords map[uuid.UUID]string
}

func newMemUsers() *memUsers {
	return &memUsers{users: map[uuid.UUID]*models.User{}, passwords: map[uuid.UUID]string{}}
}

func (m *memUsers) add(name, email, password string, role models.Role) *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := &models.User{ID: uuid.New(), Name: name, Email: email, Role: role}
	m.users[u.ID] = u
	m.passwords[u.ID] = password
	return u
}

func (m *memUsers) FindByEmail(email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memUsers) FindByID(id uuid.UUID) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}

func (m *memUsers) CheckPassword(user *models.User, password string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.passwords[user.ID] == password
}

func (m *memUsers) SetTOTPSecret(userID uuid.UUID, secret string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[userID].TOTPSecret = &secret
	return nil
}

func (m *memUsers) EnableTOTP(userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[userID].TOTPEnabled = true
	return nil
}

func (m *memUsers) ResetTOTP(userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[userID].TOTPSecret = nil
	m.users[userID].TOTPEnabled = false
	return nil
}

// memSessions is an in-memory token store implementing both
// api.SessionStore and middleware.SessionLoader.
type memSessions struct {
	mu     sync.Mutex
	tokens map[string]session.Data
	next   int
}

func newMemSessions() *memSessions {
	return &memSessions{tokens: map[string]session.Data{}}
}

func (m *memSessions) Create(_ context.Context, data *session.Data) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	token := fmt.Sprintf("token-%d", m.next)
	m.tokens[token] = *data
	return token, nil
}

func (m *memSessions) Destroy(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, token)
	return nil
}

func (m *memSessions) TTL() time.Duration {
	return session.DefaultTTL
}

func (m *memSessions) Get(_ context.Context, r *http.Request) (*session.Data, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.tokens[session.TokenFromRequest(r)]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

// login issues a token for u directly.
func (m *memSessions) login(u *models.User) string {
	token, _ := m.Create(context.Background(), &session.Data{
		UserID: u.ID, Email: u.Email, Name: u.Name, Role: string(u.Role),
	})
	return token
}

// memUploader records uploads and returns a fake CDN URL.
type memUploader struct {
	mu      sync.Mutex
	files   map[string][]byte
	types   map[string]string
	deleted []string
}

func (m *memUploader) Upload(_ context.Context, filename, contentType string, body io.Reader, _ int64) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.files == nil {
		m.files = map[string][]byte{}
		m.types = map[string]string{}
	}
	m.files[filename] = data
	m.types[filename] = contentType
	return "https://cdn.example.com/" + filename, nil
}

func (m *memUploader) Delete(_ context.Context, fileURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleted = append(m.deleted, fileURL)
	return nil
}

func (m *memUploader) deletedURLs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.deleted)
}
