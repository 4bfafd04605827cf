package server

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/alexkim/job-recommender/internal/recommend"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageData is the payload every page template receives.
type pageData struct {
	Title           string
	Flashes         []string
	Username        string
	Degree          string
	Skills          string
	Recommendations []recommend.Recommendation
}

// parseTemplates builds one template per page, each sharing the base layout.
func parseTemplates() (map[string]*template.Template, error) {
	pages := []string{"login", "register", "home", "recommendation"}
	funcs := template.FuncMap{
		"addOne": func(i int) int { return i + 1 },
	}

	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tmpl, err := template.New(page).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		templates[page] = tmpl
	}
	return templates, nil
}

// render writes a page, folding queued flash messages into the payload.
func (s *Server) render(w http.ResponseWriter, r *http.Request, page string, data pageData) {
	data.Flashes = append(popFlash(w, r), data.Flashes...)

	tmpl, ok := s.templates[page]
	if !ok {
		log.Printf("render: unknown page %q", page)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		// Response may be partially written; nothing left to do but log
		log.Printf("render: failed to execute %s: %v", page, err)
	}
}
