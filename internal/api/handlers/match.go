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

type MatchHandler struct {
	timelineService *service.TimelineService
	templates       *web.Templates
}

func NewMatchHandler(timelineService *service.TimelineService, templates *web.Templates) *MatchHandler {
	return &MatchHandler{
		timelineService: timelineService,
		templates:       templates,
	}
}

// MatchInfoDTO is the match summary block of the timeline response.
type MatchInfoDTO struct {
	ID     uint   `json:"id"`
	Stage  string `json:"stage"`
	Date   string `json:"date"`
	TeamA  string `json:"team_a"`
	TeamB  string `json:"team_b"`
	Winner string `json:"winner"`
}

// StoryContextDTO is the narrative annotation of one draft action.
type StoryContextDTO struct {
	Label     string `json:"label"`
	Keyword   string `json:"keyword"`
	Comment   string `json:"comment"`
	Intensity int    `json:"intensity"`
}

// PickBanDTO is one entry of the ordered draft sequence.
type PickBanDTO struct {
	Order        int             `json:"order"`
	Type         string          `json:"type"`
	Team         string          `json:"team"`
	Champion     string          `json:"champion"`
	Player       *string         `json:"player"`
	StoryContext StoryContextDTO `json:"story_context"`
}

// MatchDataResponse is the full payload of GET /api/match/{id}/data/.
type MatchDataResponse struct {
	MatchInfo MatchInfoDTO `json:"match_info"`
	PickBans  []PickBanDTO `json:"pick_bans"`
}

// Data serves the draft timeline JSON consumed by the visualization page.
func (h *MatchHandler) Data(w http.ResponseWriter, r *http.Request) {
	matchID, err := parseUintParam(r, "id")
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "match not found")
		return
	}

	timeline, err := h.timelineService.MatchTimeline(r.Context(), matchID)
	if err != nil {
		if errors.Is(err, domain.ErrMatchNotFound) {
			writeJSONError(w, http.StatusNotFound, "match not found")
			return
		}
		log.Printf("ERROR [match.Data] matchID=%d: %v", matchID, err)
		writeJSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := MatchDataResponse{
		MatchInfo: MatchInfoDTO{
			ID:     timeline.Match.ID,
			Stage:  timeline.Match.StageDisplay,
			Date:   timeline.Match.Date,
			TeamA:  timeline.Match.TeamA,
			TeamB:  timeline.Match.TeamB,
			Winner: timeline.Match.Winner,
		},
		PickBans: make([]PickBanDTO, 0, len(timeline.Actions)),
	}

	for _, action := range timeline.Actions {
		resp.PickBans = append(resp.PickBans, PickBanDTO{
			Order:    action.Order,
			Type:     string(action.Type),
			Team:     action.Team,
			Champion: action.Champion,
			Player:   action.Player,
			StoryContext: StoryContextDTO{
				Label:     action.Context.Label,
				Keyword:   action.Context.Keyword,
				Comment:   action.Context.Comment,
				Intensity: action.Context.Intensity,
			},
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// Visualize renders the interactive draft page shell. The timeline itself is
// fetched client-side from Data.
func (h *MatchHandler) Visualize(w http.ResponseWriter, r *http.Request) {
	matchID, err := parseUintParam(r, "id")
	if err != nil {
		h.templates.RenderNotFound(w, "No such match.")
		return
	}

	timeline, err := h.timelineService.MatchTimeline(r.Context(), matchID)
	if err != nil {
		if errors.Is(err, domain.ErrMatchNotFound) {
			h.templates.RenderNotFound(w, "No such match.")
			return
		}
		log.Printf("ERROR [match.Visualize] matchID=%d: %v", matchID, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	data := map[string]any{
		"Title": fmt.Sprintf("[%s] %s vs %s Draft Story",
			timeline.Match.StageDisplay, timeline.Match.TeamA, timeline.Match.TeamB),
		"MatchID": matchID,
	}
	if err := h.templates.Render(w, "match_visualization.html", data); err != nil {
		log.Printf("ERROR [match.Visualize] render: %v", err)
	}
}

func parseUintParam(r *http.Request, name string) (uint, error) {
	value, err := strconv.ParseUint(chi.URLParam(r, name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}
