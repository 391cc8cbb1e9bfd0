// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public site and
// the dashboard. Each page template is paired with its layout; pages are
// rendered into a buffer first so a template error never leaves a
// half-written response.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"bridalstudio/internal/auth"
	"bridalstudio/internal/markdown"
	"bridalstudio/internal/middleware"
	"bridalstudio/internal/models"
	"bridalstudio/internal/toast"
)

//go:embed templates
var templateFS embed.FS

// layouts are the template directories whose pages share a base.html.
var layouts = []string{"site", "dashboard"}

// errorTemplate is the standalone page used for 404s and render failures.
const errorTemplate = "error"

// PageData holds everything passed to a template.
type PageData struct {
	Title       string                 // <title> fallback when SEO has none
	Section     string                 // active navigation item
	SEO         models.SEO             // page metadata
	Settings    models.GeneralSettings // header and footer details
	Banner      models.PageBanner      // hero of public pages
	Viewer      auth.Session           // dashboard viewer
	CSRFToken   string                 // for forms
	Toast       *toast.Toast           // pending notice, popped at render
	ToastMillis int64                  // time left before auto-dismiss
	Degraded    []string               // sources that fell back
	Data        map[string]any         // page-specific data
}

// PageTitle returns the SEO title, falling back to Title and the site name.
func (d *PageData) PageTitle() string {
	switch {
	case d.SEO.Title != "":
		return d.SEO.Title
	case d.Title != "" && d.Settings.SiteName != "":
		return d.Title + " | " + d.Settings.SiteName
	case d.Title != "":
		return d.Title
	}
	return d.Settings.SiteName
}

// Renderer handles template parsing and execution.
type Renderer struct {
	templates map[string]*template.Template
	now       func() time.Time
}

// funcMap lists the helpers available to every template.
var funcMap = template.FuncMap{
	"markdown": markdown.Render,
	"year": func() int {
		return time.Now().Year()
	},
	// active returns the CSS class for the current navigation item.
	"active": func(current, target string) string {
		if current == target {
			return "is-active"
		}
		return ""
	},
	// lines joins a list for a one-item-per-line textarea.
	"lines": func(items []string) string {
		return strings.Join(items, "\n")
	},
	// dateInput formats an optional date for <input type="date">.
	"dateInput": func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format("2006-01-02")
	},
	// date formats an optional date for display.
	"date": func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format("2 January 2006")
	},
	// expired reports whether an offer's validity has ended.
	"expired": func(o models.Offer) bool {
		return o.Expired(time.Now())
	},
	"seq": func(n int) []int {
		out := make([]int, max(n, 0))
		for i := range out {
			out[i] = i + 1
		}
		return out
	},
	"telHref": func(phone string) string {
		return "tel:" + strings.Map(func(r rune) rune {
			if r == '+' || (r >= '0' && r <= '9') {
				return r
			}
			return -1
		}, phone)
	},
	"dataURI": func(mime, b64 string) template.URL {
		return template.URL("data:" + mime + ";base64," + b64)
	},
}

// New parses every page template from the embedded filesystem, each paired
// with its layout's base.html and the shared partials.
func New() (*Renderer, error) {
	rn := &Renderer{
		templates: make(map[string]*template.Template),
		now:       time.Now,
	}

	for _, layout := range layouts {
		dir := "templates/" + layout
		entries, err := fs.ReadDir(templateFS, dir)
		if err != nil {
			return nil, fmt.Errorf("read %s templates: %w", layout, err)
		}
		for _, e := range entries {
			name := e.Name()
			if e.IsDir() || name == "base.html" || !strings.HasSuffix(name, ".html") {
				continue
			}
			tmpl, err := template.New("base.html").Funcs(funcMap).ParseFS(templateFS,
				dir+"/base.html", "templates/partials.html", dir+"/"+name)
			if err != nil {
				return nil, fmt.Errorf("parse template %s/%s: %w", layout, name, err)
			}
			rn.templates[layout+"/"+strings.TrimSuffix(name, ".html")] = tmpl
		}
	}

	tmpl, err := template.New(errorTemplate+".html").Funcs(funcMap).ParseFS(templateFS, "templates/error.html")
	if err != nil {
		return nil, fmt.Errorf("parse error template: %w", err)
	}
	rn.templates[errorTemplate] = tmpl

	return rn, nil
}

// Has reports whether a page template exists.
func (rn *Renderer) Has(name string) bool {
	_, ok := rn.templates[name]
	return ok
}

// Page renders a page with status 200. See PageStatus.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, name string, data *PageData) []byte {
	return rn.PageStatus(w, r, http.StatusOK, name, data)
}

// PageStatus fills the request-scoped fields of data (CSRF token, viewer,
// pending toast), renders the page and writes it with status. It returns
// the HTML written, or nil if rendering failed, in which case the error
// page was sent instead.
func (rn *Renderer) PageStatus(w http.ResponseWriter, r *http.Request, status int, name string, data *PageData) []byte {
	data.CSRFToken = middleware.CSRFTokenFromCtx(r.Context())
	data.Viewer = middleware.ViewerFromCtx(r.Context())
	if t, ok := toast.Pop(w, r, rn.now()); ok {
		data.Toast = &t
		data.ToastMillis = t.RemainingMillis(rn.now())
	}

	out, err := rn.Render(name, data)
	if err != nil {
		slog.Error("render page failed", "template", name, "error", err)
		rn.Error(w, r, http.StatusInternalServerError, "")
		return nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(out)
	return out
}

// Render executes a page template into memory.
func (rn *Renderer) Render(name string, data *PageData) ([]byte, error) {
	tmpl, ok := rn.templates[name]
	if !ok {
		return nil, fmt.Errorf("template %q not found", name)
	}
	root := "base.html"
	if name == errorTemplate {
		root = errorTemplate + ".html"
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, root, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// errorData is the model of the error page.
type errorData struct {
	Status  int
	Heading string
	Message string
	Retry   string
}

// Error renders the standalone error page. A 404 explains itself; any
// other status shows "Something went wrong" with a retry link.
func (rn *Renderer) Error(w http.ResponseWriter, r *http.Request, status int, message string) {
	d := errorData{Status: status, Retry: r.URL.RequestURI()}
	if r.Method != http.MethodGet {
		d.Retry = "/"
	}
	if status == http.StatusNotFound {
		d.Heading = "Page not found"
		if message == "" {
			message = "The page you're looking for doesn't exist or has moved."
		}
	} else {
		d.Heading = "Something went wrong"
		if message == "" {
			message = "We couldn't load this page. Please try again."
		}
	}
	d.Message = message

	var buf bytes.Buffer
	tmpl := rn.templates[errorTemplate]
	if tmpl == nil || tmpl.ExecuteTemplate(&buf, errorTemplate+".html", d) != nil {
		http.Error(w, d.Heading, status)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
