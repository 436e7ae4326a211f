package handlers

import (
	"log"
	"net/http"

	"github.com/haeun/worlds-banpick-archive/internal/domain"
	"github.com/haeun/worlds-banpick-archive/internal/service"
	"github.com/haeun/worlds-banpick-archive/internal/web"
)

type ChampionStatsHandler struct {
	statsService *service.StatsService
	templates    *web.Templates
	staticBase   string
}

func NewChampionStatsHandler(statsService *service.StatsService, templates *web.Templates, staticBase string) *ChampionStatsHandler {
	return &ChampionStatsHandler{
		statsService: statsService,
		templates:    templates,
		staticBase:   staticBase,
	}
}

// ChampionStatDTO is one row of GET /api/champions/.
type ChampionStatDTO struct {
	Name               string  `json:"name"`
	TotalPicks         int     `json:"total_picks"`
	BlueFirstPick      int     `json:"blue_first_pick"`
	RedFirstPick       int     `json:"red_first_pick"`
	TierScore          float64 `json:"tier_score"`
	SideIndex          float64 `json:"side_index"`
	SidePreference     string  `json:"side_preference"`
	SidePreferenceCode string  `json:"side_preference_code"`
}

type ChampionStatsResponse struct {
	Champions  []ChampionStatDTO `json:"champions"`
	TotalCount int               `json:"total_count"`
}

// API serves champion statistics, sorted and filtered per the request's
// sort/order/side query parameters.
func (h *ChampionStatsHandler) API(w http.ResponseWriter, r *http.Request) {
	query := service.ParseStatQuery(
		r.URL.Query().Get("sort"),
		r.URL.Query().Get("order"),
		r.URL.Query().Get("side"),
	)

	stats, err := h.statsService.List(r.Context(), query)
	if err != nil {
		log.Printf("ERROR [champion.API]: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := ChampionStatsResponse{
		Champions:  make([]ChampionStatDTO, 0, len(stats)),
		TotalCount: len(stats),
	}
	for _, stat := range stats {
		resp.Champions = append(resp.Champions, ChampionStatDTO{
			Name:               championName(stat),
			TotalPicks:         stat.TotalPicks,
			BlueFirstPick:      stat.BlueFirstPick,
			RedFirstPick:       stat.RedFirstPick,
			TierScore:          stat.TierScore,
			SideIndex:          stat.SideIndex,
			SidePreference:     stat.SidePreference.Display(),
			SidePreferenceCode: string(stat.SidePreference),
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

type sideChoice struct {
	Code  string
	Label string
}

// Page renders the champion statistics table with the same permissive
// sort/filter handling as the API.
func (h *ChampionStatsHandler) Page(w http.ResponseWriter, r *http.Request) {
	sort := r.URL.Query().Get("sort")
	order := r.URL.Query().Get("order")
	side := r.URL.Query().Get("side")

	query := service.ParseStatQuery(sort, order, side)

	stats, err := h.statsService.List(r.Context(), query)
	if err != nil {
		log.Printf("ERROR [champion.Page]: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	sideChoices := make([]sideChoice, 0, len(domain.AllSidePreferences))
	for _, pref := range domain.AllSidePreferences {
		sideChoices = append(sideChoices, sideChoice{Code: string(pref), Label: pref.Display()})
	}

	// Echo back the values actually applied, not the raw input.
	appliedOrder := "desc"
	if !query.Descending {
		appliedOrder = "asc"
	}
	appliedSide := "all"
	if query.Side != nil {
		appliedSide = string(*query.Side)
	}

	data := map[string]any{
		"Title":       "2025 Worlds Champion Stats",
		"Stats":       stats,
		"Sort":        string(query.Sort),
		"Order":       appliedOrder,
		"Side":        appliedSide,
		"SortFields":  []string{"tier_score", "total_picks", "blue_first_pick", "red_first_pick", "side_index"},
		"SideChoices": sideChoices,
		"StaticBase":  h.staticBase,
	}
	if err := h.templates.Render(w, "champion_stats.html", data); err != nil {
		log.Printf("ERROR [champion.Page] render: %v", err)
	}
}

func championName(stat *domain.ChampionStat) string {
	if stat.Champion == nil {
		return ""
	}
	return stat.Champion.Name
}
