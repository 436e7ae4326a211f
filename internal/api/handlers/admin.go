package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/haeun/worlds-banpick-archive/internal/domain"
	"github.com/haeun/worlds-banpick-archive/internal/service"
	"gorm.io/datatypes"
)

// AdminHandler is the JWT-guarded write surface replacing interactive admin
// tooling. Every mutation of the archive goes through these endpoints or the
// batch importers.
type AdminHandler struct {
	archiveService *service.ArchiveService
}

func NewAdminHandler(archiveService *service.ArchiveService) *AdminHandler {
	return &AdminHandler{archiveService: archiveService}
}

// writeArchiveError maps service errors onto admin API statuses. Integrity
// violations are a 409: the entity is still referenced and must not be
// silently dropped.
func writeArchiveError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrProtectedReferent):
		writeJSONError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrDuplicateOrder):
		writeJSONError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidStage),
		errors.Is(err, domain.ErrInvalidActionType),
		errors.Is(err, domain.ErrInvalidStoryLabel):
		writeJSONError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("ERROR [admin.%s]: %v", op, err)
		writeJSONError(w, http.StatusInternalServerError, "internal server error")
	}
}

type nameRequest struct {
	Name string `json:"name"`
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (h *AdminHandler) CreateChampion(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if !decodeBody(w, r, &req) {
		return
	}
	champion, err := h.archiveService.CreateChampion(r.Context(), req.Name)
	if err != nil {
		writeArchiveError(w, "CreateChampion", err)
		return
	}
	writeJSON(w, http.StatusCreated, champion)
}

func (h *AdminHandler) DeleteChampion(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintParam(r, "id")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.archiveService.DeleteChampion(r.Context(), id); err != nil {
		writeArchiveError(w, "DeleteChampion", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *AdminHandler) CreateLeague(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if !decodeBody(w, r, &req) {
		return
	}
	league, err := h.archiveService.CreateLeague(r.Context(), req.Name)
	if err != nil {
		writeArchiveError(w, "CreateLeague", err)
		return
	}
	writeJSON(w, http.StatusCreated, league)
}

func (h *AdminHandler) ListChampions(w http.ResponseWriter, r *http.Request) {
	champions, err := h.archiveService.ListChampions(r.Context())
	if err != nil {
		writeArchiveError(w, "ListChampions", err)
		return
	}
	writeJSON(w, http.StatusOK, champions)
}

func (h *AdminHandler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	leagues, err := h.archiveService.ListLeagues(r.Context())
	if err != nil {
		writeArchiveError(w, "ListLeagues", err)
		return
	}
	writeJSON(w, http.StatusOK, leagues)
}

func (h *AdminHandler) DeleteLeague(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintParam(r, "id")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.archiveService.DeleteLeague(r.Context(), id); err != nil {
		writeArchiveError(w, "DeleteLeague", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *AdminHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.archiveService.ListTeams(r.Context())
	if err != nil {
		writeArchiveError(w, "ListTeams", err)
		return
	}
	writeJSON(w, http.StatusOK, teams)
}

// ListTeamPlayers returns one team's roster, ordered by name.
func (h *AdminHandler) ListTeamPlayers(w http.ResponseWriter, r *http.Request) {
	teamID, err := parseUintParam(r, "id")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid id")
		return
	}
	players, err := h.archiveService.ListTeamPlayers(r.Context(), teamID)
	if err != nil {
		writeArchiveError(w, "ListTeamPlayers", err)
		return
	}
	writeJSON(w, http.StatusOK, players)
}

type createTeamRequest struct {
	Name     string `json:"name"`
	LeagueID *uint  `json:"leagueId"`
}

func (h *AdminHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req createTeamRequest
	if !decodeBody(w, r, &req) {
		return
	}
	team, err := h.archiveService.CreateTeam(r.Context(), req.Name, req.LeagueID)
	if err != nil {
		writeArchiveError(w, "CreateTeam", err)
		return
	}
	writeJSON(w, http.StatusCreated, team)
}

func (h *AdminHandler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintParam(r, "id")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.archiveService.DeleteTeam(r.Context(), id); err != nil {
		writeArchiveError(w, "DeleteTeam", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

type createPlayerRequest struct {
	Name   string `json:"name"`
	TeamID uint   `json:"teamId"`
}

func (h *AdminHandler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req createPlayerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	player, err := h.archiveService.CreatePlayer(r.Context(), req.Name, req.TeamID)
	if err != nil {
		writeArchiveError(w, "CreatePlayer", err)
		return
	}
	writeJSON(w, http.StatusCreated, player)
}

func (h *AdminHandler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintParam(r, "id")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.archiveService.DeletePlayer(r.Context(), id); err != nil {
		writeArchiveError(w, "DeletePlayer", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

type createMatchRequest struct {
	MatchDate string `json:"matchDate"` // YYYY-MM-DD
	Stage     string `json:"stage"`
	TeamAID   uint   `json:"teamAId"`
	TeamBID   uint   `json:"teamBId"`
	WinnerID  uint   `json:"winnerId"`
}

func (h *AdminHandler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	var req createMatchRequest
	if !decodeBody(w, r, &req) {
		return
	}

	date, err := time.Parse("2006-01-02", req.MatchDate)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "matchDate must be YYYY-MM-DD")
		return
	}

	match := &domain.Match{
		MatchDate: datatypes.Date(date),
		Stage:     domain.Stage(req.Stage),
		TeamAID:   req.TeamAID,
		TeamBID:   req.TeamBID,
		WinnerID:  req.WinnerID,
	}
	if err := h.archiveService.CreateMatch(r.Context(), match); err != nil {
		writeArchiveError(w, "CreateMatch", err)
		return
	}
	writeJSON(w, http.StatusCreated, match)
}

func (h *AdminHandler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintParam(r, "id")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.archiveService.DeleteMatch(r.Context(), id); err != nil {
		writeArchiveError(w, "DeleteMatch", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

type createPickBanRequest struct {
	MatchID    uint   `json:"matchId"`
	TeamID     uint   `json:"teamId"`
	ChampionID uint   `json:"championId"`
	Type       string `json:"type"`
	Order      int    `json:"order"`
	PlayerID   *uint  `json:"playerId"`
}

func (h *AdminHandler) CreatePickBan(w http.ResponseWriter, r *http.Request) {
	var req createPickBanRequest
	if !decodeBody(w, r, &req) {
		return
	}

	pb := &domain.PickBan{
		MatchID:    req.MatchID,
		TeamID:     req.TeamID,
		ChampionID: req.ChampionID,
		Type:       domain.ActionType(req.Type),
		Order:      req.Order,
		PlayerID:   req.PlayerID,
	}
	if err := h.archiveService.CreatePickBan(r.Context(), pb); err != nil {
		writeArchiveError(w, "CreatePickBan", err)
		return
	}
	writeJSON(w, http.StatusCreated, pb)
}

func (h *AdminHandler) DeletePickBan(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintParam(r, "id")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.archiveService.DeletePickBan(r.Context(), id); err != nil {
		writeArchiveError(w, "DeletePickBan", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

type setContextRequest struct {
	Label     string `json:"label"`
	Keyword   string `json:"keyword"`
	Comment   string `json:"comment"`
	Intensity int    `json:"intensity"`
}

// SetPickBanContext creates or replaces the narrative annotation of one
// draft action.
func (h *AdminHandler) SetPickBanContext(w http.ResponseWriter, r *http.Request) {
	pickBanID, err := parseUintParam(r, "id")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req setContextRequest
	if !decodeBody(w, r, &req) {
		return
	}

	pbCtx := &domain.PickBanContext{
		PickBanID: pickBanID,
		Label:     domain.StoryLabel(req.Label),
		Keyword:   req.Keyword,
		Comment:   req.Comment,
		Intensity: req.Intensity,
	}
	if err := h.archiveService.SetPickBanContext(r.Context(), pbCtx); err != nil {
		writeArchiveError(w, "SetPickBanContext", err)
		return
	}
	writeJSON(w, http.StatusOK, pbCtx)
}

func (h *AdminHandler) ClearPickBanContext(w http.ResponseWriter, r *http.Request) {
	pickBanID, err := parseUintParam(r, "id")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.archiveService.ClearPickBanContext(r.Context(), pickBanID); err != nil {
		writeArchiveError(w, "ClearPickBanContext", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

type storyRequest struct {
	Stage           string `json:"stage"`
	MatchNumber     int    `json:"matchNumber"`
	SetNumber       int    `json:"setNumber"`
	TeamA           string `json:"teamA"`
	TeamB           string `json:"teamB"`
	Winner          string `json:"winner"`
	FinalScore      string `json:"finalScore"`
	MatchOverview   string `json:"matchOverview"`
	BanpickAnalysis string `json:"banpickAnalysis"`
	GameNarrative   string `json:"gameNarrative"`
	KeyChampions    string `json:"keyChampions"`
}

func (req *storyRequest) toDomain() *domain.MatchStory {
	return &domain.MatchStory{
		Stage:           domain.StoryStage(req.Stage),
		MatchNumber:     req.MatchNumber,
		SetNumber:       req.SetNumber,
		TeamA:           req.TeamA,
		TeamB:           req.TeamB,
		Winner:          req.Winner,
		FinalScore:      req.FinalScore,
		MatchOverview:   req.MatchOverview,
		BanpickAnalysis: req.BanpickAnalysis,
		GameNarrative:   req.GameNarrative,
		KeyChampions:    req.KeyChampions,
	}
}

func (h *AdminHandler) CreateStory(w http.ResponseWriter, r *http.Request) {
	var req storyRequest
	if !decodeBody(w, r, &req) {
		return
	}
	story := req.toDomain()
	if err := h.archiveService.CreateStory(r.Context(), story); err != nil {
		writeArchiveError(w, "CreateStory", err)
		return
	}
	writeJSON(w, http.StatusCreated, story)
}

func (h *AdminHandler) UpdateStory(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintParam(r, "id")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req storyRequest
	if !decodeBody(w, r, &req) {
		return
	}
	story := req.toDomain()
	story.ID = id
	if err := h.archiveService.UpdateStory(r.Context(), story); err != nil {
		writeArchiveError(w, "UpdateStory", err)
		return
	}
	writeJSON(w, http.StatusOK, story)
}

func (h *AdminHandler) DeleteStory(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintParam(r, "id")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.archiveService.DeleteStory(r.Context(), id); err != nil {
		writeArchiveError(w, "DeleteStory", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
