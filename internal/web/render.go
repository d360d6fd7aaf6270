package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	layoutTemplate = "layout.html"
	titleSuffix    = " - JTube"
)

// parseTemplates compiles every page against the shared layout.
func parseTemplates(fsys fs.FS) (map[string]*template.Template, error) {
	if _, err := fs.Stat(fsys, path.Join("templates", layoutTemplate)); err != nil {
		return nil, fmt.Errorf("layout template not found: %w", err)
	}

	pages, err := fs.Glob(fsys, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to list page templates: %w", err)
	}

	cache := make(map[string]*template.Template, len(pages))
	for _, p := range pages {
		name := path.Base(p)
		if name == layoutTemplate {
			continue
		}
		tmpl, err := template.New(name).ParseFS(fsys, path.Join("templates", layoutTemplate), p)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		cache[name] = tmpl
	}
	return cache, nil
}

// render executes a page through the layout and writes it with status.
// The page is buffered so a template error never produces a half-written response.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data pageData) {
	log := h.log(r)

	tmpl, ok := h.templates[page]
	if !ok {
		log.ErrorContext(r.Context(), "template not found in cache", "page", page)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data.Title += titleSuffix
	data.DonationURL = h.donationURL

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, layoutTemplate, data); err != nil {
		log.ErrorContext(r.Context(), "failed to render template", "page", page, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.WarnContext(r.Context(), "failed to write response", "error", err)
	}
}
