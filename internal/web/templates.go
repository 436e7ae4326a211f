package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/haeun/worlds-banpick-archive/internal/lookup"
)

//go:embed templates
var templateFS embed.FS

// Templates renders the archive's server-side pages from the embedded
// template set. The base layout is parsed once; each render clones it and
// parses the page template on top.
type Templates struct {
	base *template.Template
}

func NewTemplates() (*Templates, error) {
	base := template.New("layout").Funcs(template.FuncMap{
		"championFile": lookup.ChampionFilename,
		"add1":         func(i int) int { return i + 1 },
	})
	base, err := base.ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, err
	}
	return &Templates{base: base}, nil
}

func (t *Templates) Render(w http.ResponseWriter, name string, data any) error {
	tmpl, err := t.base.Clone()
	if err != nil {
		return err
	}
	if _, err := tmpl.ParseFS(templateFS, "templates/"+name); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return tmpl.ExecuteTemplate(w, "layout", data)
}

// RenderNotFound writes the HTML 404 page.
func (t *Templates) RenderNotFound(w http.ResponseWriter, title string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	tmpl, err := t.base.Clone()
	if err != nil {
		return
	}
	if _, err := tmpl.ParseFS(templateFS, "templates/not_found.html"); err != nil {
		return
	}
	_ = tmpl.ExecuteTemplate(w, "layout", map[string]any{"Title": title})
}
