// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"bridalstudio/internal/auth"
	"bridalstudio/internal/client"
	"bridalstudio/internal/handlers"
	"bridalstudio/internal/middleware"
	"bridalstudio/internal/models"
	"bridalstudio/internal/render"
	"bridalstudio/internal/router"
)

// fakeAPI is an in-memory content API. Sessions are fixed tokens;
// "unsuccessful" makes every read answer 200 with success:false.
type fakeAPI struct {
	mu           sync.Mutex
	calls        map[string]int
	unsuccessful bool
	failWrites   string // message for a 400 on every write, if set

	users        map[string]models.User
	services     []models.Service
	testimonials []models.Testimonial
	settings     models.GeneralSettings
	uploads      []string
	loginFrom    []string // X-Forwarded-For of each login
}

const (
	adminToken = "admin-token"
	staffToken = "staff-token"
)

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		calls: map[string]int{},
		users: map[string]models.User{
			adminToken: {ID: uuid.New(), Name: "Ana", Email: "ana@example.com", Role: models.RoleAdmin},
			staffToken: {ID: uuid.New(), Name: "Sam", Email: "sam@example.com", Role: models.RoleStaff},
		},
		settings: models.GeneralSettings{SiteName: "Live Studio", Email: "live@example.com"},
	}
}

func (f *fakeAPI) count(call string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[call]
}

func (f *fakeAPI) storedServices() []models.Service {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Service(nil), f.services...)
}

func (f *fakeAPI) storedTestimonials() []models.Testimonial {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Testimonial(nil), f.testimonials...)
}

func (f *fakeAPI) loginAddresses() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.loginFrom...)
}

func (f *fakeAPI) setTOTP(token string, enabled bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := f.users[token]
	u.TOTPEnabled = enabled
	f.users[token] = u
}

func ok(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.OK(data))
}

func fail(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.Fail[any](nil, message))
}

func (f *fakeAPI) handler() http.Handler {
	r := chi.NewRouter()

	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			f.calls[r.Method+" "+r.URL.Path]++
			unsuccessful, failWrites := f.unsuccessful, f.failWrites
			f.mu.Unlock()

			if unsuccessful && r.Method == http.MethodGet && r.URL.Path != "/session" {
				fail(w, http.StatusOK, "temporarily unavailable")
				return
			}
			if failWrites != "" && r.Method != http.MethodGet && !strings.HasPrefix(r.URL.Path, "/auth") {
				fail(w, http.StatusBadRequest, failWrites)
				return
			}
			next.ServeHTTP(w, r)
		})
	})

	r.Get("/session", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		u, found := f.users[strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")]
		f.mu.Unlock()
		if !found {
			fail(w, http.StatusUnauthorized, "authentication required")
			return
		}
		ok(w, http.StatusOK, u)
	})
	r.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		defer f.mu.Unlock()
		f.loginFrom = append(f.loginFrom, r.Header.Get("X-Forwarded-For"))
		for tok, u := range f.users {
			if u.Email == req.Email && req.Password == "secret" {
				ok(w, http.StatusOK, models.LoginResult{Token: tok, User: u})
				return
			}
		}
		fail(w, http.StatusUnauthorized, "Invalid email or password.")
	})
	r.Post("/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		ok(w, http.StatusOK, struct{}{})
	})
	r.Post("/auth/2fa/disable", func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Code string `json:"code"`
		}
		json.NewDecoder(r.Body).Decode(&in)
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		f.mu.Lock()
		defer f.mu.Unlock()
		u := f.users[token]
		if in.Code != "123456" {
			fail(w, http.StatusBadRequest, "Invalid code. Please try again.")
			return
		}
		u.TOTPEnabled = false
		f.users[token] = u
		ok(w, http.StatusOK, struct{}{})
	})

	r.Get("/services", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		out := []models.Service{}
		for _, s := range f.services {
			if s.Active || r.URL.Query().Get("all") == "1" {
				out = append(out, s)
			}
		}
		ok(w, http.StatusOK, out)
	})
	r.Get("/services/slug/{slug}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		for _, s := range f.services {
			if s.Slug == chi.URLParam(r, "slug") {
				ok(w, http.StatusOK, s)
				return
			}
		}
		fail(w, http.StatusNotFound, "service not found")
	})
	r.Get("/services/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		for _, s := range f.services {
			if s.ID.String() == chi.URLParam(r, "id") {
				ok(w, http.StatusOK, s)
				return
			}
		}
		fail(w, http.StatusNotFound, "service not found")
	})
	r.Post("/services", func(w http.ResponseWriter, r *http.Request) {
		var s models.Service
		json.NewDecoder(r.Body).Decode(&s)
		s.ID = uuid.New()
		if s.Slug == "" {
			s.Slug = strings.ToLower(strings.ReplaceAll(s.Title, " ", "-"))
		}
		f.mu.Lock()
		f.services = append(f.services, s)
		f.mu.Unlock()
		ok(w, http.StatusCreated, s)
	})
	r.Delete("/services/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		for i, s := range f.services {
			if s.ID.String() == chi.URLParam(r, "id") {
				f.services = append(f.services[:i], f.services[i+1:]...)
				ok(w, http.StatusOK, map[string]string{"id": s.ID.String()})
				return
			}
		}
		fail(w, http.StatusNotFound, "service not found")
	})

	r.Get("/banners", func(w http.ResponseWriter, r *http.Request) { ok(w, http.StatusOK, []models.Banner{}) })
	r.Get("/offers", func(w http.ResponseWriter, r *http.Request) { ok(w, http.StatusOK, []models.Offer{}) })

	r.Get("/testimonials", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		ok(w, http.StatusOK, append([]models.Testimonial{}, f.testimonials...))
	})
	r.Post("/testimonials", func(w http.ResponseWriter, r *http.Request) {
		var t models.Testimonial
		json.NewDecoder(r.Body).Decode(&t)
		t.ID = uuid.New()
		t.CreatedAt = time.Now()
		f.mu.Lock()
		f.testimonials = append([]models.Testimonial{t}, f.testimonials...)
		f.mu.Unlock()
		ok(w, http.StatusCreated, t)
	})

	r.Get("/settings/general", func(w http.ResponseWriter, r *http.Request) { ok(w, http.StatusOK, f.settings) })
	r.Get("/seo/{pageName}", func(w http.ResponseWriter, r *http.Request) { fail(w, http.StatusNotFound, "not found") })
	r.Get("/page-banners/{pageKey}", func(w http.ResponseWriter, r *http.Request) {
		ok(w, http.StatusOK, models.PageBanner{PageKey: chi.URLParam(r, "pageKey"), Title: "Live banner"})
	})

	r.Post("/media", func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		if err != nil {
			fail(w, http.StatusBadRequest, "file is required")
			return
		}
		io.Copy(io.Discard, file)
		u := "https://cdn.example.com/" + header.Filename
		f.mu.Lock()
		f.uploads = append(f.uploads, u)
		f.mu.Unlock()
		ok(w, http.StatusCreated, client.MediaUpload{URL: u})
	})

	return r
}

// site is a running studio site wired to an API base URL.
type site struct {
	t    *testing.T
	srv  *httptest.Server
	http *http.Client
}

// newSite starts the site against apiURL. Redirects are followed, so a
// mutation's response is the page it redirected to.
func newSite(t *testing.T, apiURL string) *site {
	t.Helper()
	rn, err := render.New()
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	api := client.New(apiURL, client.WithTimeout(2*time.Second))
	authCtx := auth.New(api, false, 0)

	h := router.New(authCtx,
		handlers.NewPublic(rn, api, nil, "Test Studio", false),
		handlers.NewAuth(rn, authCtx, "Test Studio", false),
		handlers.NewDashboard(rn, authCtx, "Test Studio", false),
		nil, false)
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	jar, _ := cookiejar.New(nil)
	return &site{t: t, srv: srv, http: &http.Client{Jar: jar}}
}

// withFakeAPI starts f and a site that talks to it.
func withFakeAPI(t *testing.T, f *fakeAPI) *site {
	t.Helper()
	apiSrv := httptest.NewServer(f.handler())
	t.Cleanup(apiSrv.Close)
	return newSite(t, apiSrv.URL)
}

// as stores a session token cookie, acting as that user from now on.
func (s *site) as(token string) *site {
	u, _ := url.Parse(s.srv.URL)
	s.http.Jar.SetCookies(u, []*http.Cookie{{Name: auth.CookieName, Value: token, Path: "/"}})
	return s
}

func (s *site) noRedirects() *http.Client {
	return &http.Client{
		Jar: s.http.Jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(b)
}

// get fetches path and returns the final response and its body.
func (s *site) get(path string) (*http.Response, string) {
	s.t.Helper()
	resp, err := s.http.Get(s.srv.URL + path)
	if err != nil {
		s.t.Fatalf("GET %s: %v", path, err)
	}
	return resp, readBody(s.t, resp)
}

var csrfField = regexp.MustCompile(`name="csrf_token" value="([0-9a-f]+)"`)

// csrf returns the site's CSRF token, fetching a page to obtain one.
func (s *site) csrf() string {
	s.t.Helper()
	_, body := s.get("/login")
	m := csrfField.FindStringSubmatch(body)
	if m == nil {
		s.t.Fatal("no CSRF token on /login")
	}
	return m[1]
}

// post submits a form with the CSRF token and follows the redirect.
func (s *site) post(path string, form url.Values) (*http.Response, string) {
	s.t.Helper()
	if form == nil {
		form = url.Values{}
	}
	form.Set(middleware.CSRFFormField, s.csrf())
	resp, err := s.http.PostForm(s.srv.URL+path, form)
	if err != nil {
		s.t.Fatalf("POST %s: %v", path, err)
	}
	return resp, readBody(s.t, resp)
}
