package handlers

import (
	"log"
	"net/http"

	"github.com/haeun/worlds-banpick-archive/internal/service"
	"github.com/haeun/worlds-banpick-archive/internal/web"
)

// recentMatchCount is how many matches the index page lists.
const recentMatchCount = 5

type PagesHandler struct {
	storyService *service.StoryService
	templates    *web.Templates
	staticBase   string
}

func NewPagesHandler(storyService *service.StoryService, templates *web.Templates, staticBase string) *PagesHandler {
	return &PagesHandler{
		storyService: storyService,
		templates:    templates,
		staticBase:   staticBase,
	}
}

// Index renders the landing page with the most recent matches and their
// story links.
func (h *PagesHandler) Index(w http.ResponseWriter, r *http.Request) {
	recent, err := h.storyService.RecentMatches(r.Context(), recentMatchCount)
	if err != nil {
		log.Printf("ERROR [pages.Index]: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	data := map[string]any{
		"Title":         "2025 Worlds Ban/Pick Archive",
		"RecentMatches": recent,
		"StaticBase":    h.staticBase,
	}
	if err := h.templates.Render(w, "index.html", data); err != nil {
		log.Printf("ERROR [pages.Index] render: %v", err)
	}
}

// NotFound is the HTML 404 for unmatched page routes.
func (h *PagesHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.templates.RenderNotFound(w, "This page does not exist.")
}
