package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/haeun/worlds-banpick-archive/internal/domain"
	"github.com/haeun/worlds-banpick-archive/internal/service"
	"github.com/haeun/worlds-banpick-archive/internal/web"
)

type StoryHandler struct {
	storyService *service.StoryService
	templates    *web.Templates
	staticBase   string
}

func NewStoryHandler(storyService *service.StoryService, templates *web.Templates, staticBase string) *StoryHandler {
	return &StoryHandler{
		storyService: storyService,
		templates:    templates,
		staticBase:   staticBase,
	}
}

// StoryDTO is one row of GET /api/stories/.
type StoryDTO struct {
	ID              uint   `json:"id"`
	Stage           string `json:"stage"`
	StageDisplay    string `json:"stage_display"`
	MatchNumber     int    `json:"match_number"`
	SetNumber       int    `json:"set_number"`
	TeamA           string `json:"team_a"`
	TeamB           string `json:"team_b"`
	Winner          string `json:"winner"`
	FinalScore      string `json:"final_score"`
	MatchOverview   string `json:"match_overview"`
	BanpickAnalysis string `json:"banpick_analysis"`
	GameNarrative   string `json:"game_narrative"`
}

type StoriesResponse struct {
	Stories    []StoryDTO `json:"stories"`
	TotalCount int        `json:"total_count"`
}

// API serves every story row in stage, match, set order.
func (h *StoryHandler) API(w http.ResponseWriter, r *http.Request) {
	stories, err := h.storyService.All(r.Context())
	if err != nil {
		log.Printf("ERROR [story.API]: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := StoriesResponse{
		Stories:    make([]StoryDTO, 0, len(stories)),
		TotalCount: len(stories),
	}
	for _, story := range stories {
		resp.Stories = append(resp.Stories, StoryDTO{
			ID:              story.ID,
			Stage:           string(story.Stage),
			StageDisplay:    story.Stage.Display(),
			MatchNumber:     story.MatchNumber,
			SetNumber:       story.SetNumber,
			TeamA:           story.TeamA,
			TeamB:           story.TeamB,
			Winner:          story.Winner,
			FinalScore:      story.FinalScore,
			MatchOverview:   story.MatchOverview,
			BanpickAnalysis: story.BanpickAnalysis,
			GameNarrative:   story.GameNarrative,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

type stageSection struct {
	Stage        domain.StoryStage
	StageDisplay string
	Groups       []*service.StoryGroup
}

// ListPage renders the per-stage grouped story list.
func (h *StoryHandler) ListPage(w http.ResponseWriter, r *http.Request) {
	sections := make([]stageSection, 0, len(domain.AllStoryStages))
	for _, stage := range domain.AllStoryStages {
		groups, err := h.storyService.GroupsByStage(r.Context(), stage)
		if err != nil {
			log.Printf("ERROR [story.ListPage] stage=%s: %v", stage, err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		sections = append(sections, stageSection{
			Stage:        stage,
			StageDisplay: stage.Display(),
			Groups:       groups,
		})
	}

	data := map[string]any{
		"Title":      "2025 Worlds Match Stories",
		"Stages":     sections,
		"StaticBase": h.staticBase,
	}
	if err := h.templates.Render(w, "match_stories.html", data); err != nil {
		log.Printf("ERROR [story.ListPage] render: %v", err)
	}
}

// DetailPage renders one match's full set-by-set story.
func (h *StoryHandler) DetailPage(w http.ResponseWriter, r *http.Request) {
	stage := domain.StoryStage(chi.URLParam(r, "stage"))
	matchNumber, err := strconv.Atoi(chi.URLParam(r, "matchNumber"))
	if err != nil || !stage.Valid() {
		h.templates.RenderNotFound(w, "No story for this match.")
		return
	}

	detail, err := h.storyService.Detail(r.Context(), stage, matchNumber)
	if err != nil {
		if errors.Is(err, domain.ErrStoryNotFound) {
			h.templates.RenderNotFound(w, "No story for this match.")
			return
		}
		log.Printf("ERROR [story.DetailPage] stage=%s match=%d: %v", stage, matchNumber, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	data := map[string]any{
		"Title":      fmt.Sprintf("%s - %s vs %s", detail.StageDisplay, detail.TeamA, detail.TeamB),
		"Detail":     detail,
		"StaticBase": h.staticBase,
	}
	if err := h.templates.Render(w, "match_story_detail.html", data); err != nil {
		log.Printf("ERROR [story.DetailPage] render: %v", err)
	}
}
