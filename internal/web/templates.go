package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/erazemk/glitzme/internal/auth"
	"github.com/erazemk/glitzme/internal/model"
	"github.com/erazemk/glitzme/internal/store"
	webembed "github.com/erazemk/glitzme/web"
)

// Templates holds parsed HTML templates.
type Templates struct {
	templates map[string]*template.Template
}

// FuncMap returns the template function map.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"settingTypes": func() []string { return model.SettingTypes },
		"categoryName": func(category string) string {
			return strings.ReplaceAll(category, "_", " ")
		},
		"datetime": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("2006-01-02 15:04")
		},
	}
}

var pages = []string{
	"login.html",
	"dashboard.html",
	"rentals.html",
	"rental_edit.html",
	"packages.html",
	"package_edit.html",
	"team.html",
	"team_edit.html",
	"carousel.html",
	"carousel_edit.html",
	"settings.html",
}

// LoadTemplates parses all page templates with the layout.
func LoadTemplates() (*Templates, error) {
	return loadTemplates(webembed.TemplatesFS())
}

func loadTemplates(tfs fs.FS) (*Templates, error) {
	layoutBytes, err := fs.ReadFile(tfs, "layout.html")
	if err != nil {
		return nil, fmt.Errorf("reading layout template: %w", err)
	}

	ts := &Templates{templates: make(map[string]*template.Template)}

	for _, page := range pages {
		pageBytes, err := fs.ReadFile(tfs, page)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", page, err)
		}

		tmpl := template.New(page).Funcs(FuncMap())
		tmpl, err = tmpl.Parse(string(layoutBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing layout for %s: %w", page, err)
		}
		tmpl, err = tmpl.Parse(string(pageBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}

		ts.templates[page] = tmpl
	}

	return ts, nil
}

// Render renders a template with status 200.
func (ts *Templates) Render(w http.ResponseWriter, name string, data any) {
	ts.RenderStatus(w, http.StatusOK, name, data)
}

// RenderStatus renders a template with the given status code.
func (ts *Templates) RenderStatus(w http.ResponseWriter, status int, name string, data any) {
	tmpl, ok := ts.templates[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
	}
}

// PageData is the base data passed to all templates.
type PageData struct {
	Title    string
	LoggedIn bool
	Error    string
	Success  string
}

// Server holds all dependencies for admin page handlers.
type Server struct {
	Store     *store.Store
	Gate      *auth.Gate
	Sessions  auth.SessionStore
	Templates *Templates
	// UploadDir receives processed image uploads.
	UploadDir string
}
