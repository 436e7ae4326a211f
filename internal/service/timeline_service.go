package service

import (
	"context"
	"errors"
	"time"

	"github.com/haeun/worlds-banpick-archive/internal/domain"
	"github.com/haeun/worlds-banpick-archive/internal/repository"
	"gorm.io/gorm"
)

// TimelineService assembles the ordered draft timeline of a match, joining
// relational pick/ban rows with their optional narrative context. This is
// the central read query of the archive.
type TimelineService struct {
	matchRepo   repository.MatchRepository
	pickBanRepo repository.PickBanRepository
}

func NewTimelineService(matchRepo repository.MatchRepository, pickBanRepo repository.PickBanRepository) *TimelineService {
	return &TimelineService{
		matchRepo:   matchRepo,
		pickBanRepo: pickBanRepo,
	}
}

// MatchInfo summarizes the match a timeline belongs to.
type MatchInfo struct {
	ID           uint
	Stage        domain.Stage
	StageDisplay string
	Date         string // YYYY-MM-DD
	TeamA        string
	TeamB        string
	Winner       string
}

// StoryContext is the narrative annotation attached to a timeline action.
// For actions without a stored context it carries the documented defaults.
type StoryContext struct {
	Label     string
	Keyword   string
	Comment   string
	Intensity int
}

// TimelineAction is one enriched draft action.
type TimelineAction struct {
	Order    int
	Type     domain.ActionType
	Team     string
	Champion string
	Player   *string // nil for bans
	Context  StoryContext
}

// MatchTimeline is the full output of the assembler.
type MatchTimeline struct {
	Match   MatchInfo
	Actions []TimelineAction
}

// MatchTimeline returns the 20-action draft sequence of a match in draft
// order. A missing match yields domain.ErrMatchNotFound; a missing context
// row never fails, it only defaults.
func (s *TimelineService) MatchTimeline(ctx context.Context, matchID uint) (*MatchTimeline, error) {
	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}

	pickBans, err := s.pickBanRepo.GetByMatchID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	timeline := &MatchTimeline{
		Match: MatchInfo{
			ID:           match.ID,
			Stage:        match.Stage,
			StageDisplay: match.Stage.Display(),
			Date:         time.Time(match.MatchDate).Format("2006-01-02"),
			TeamA:        teamName(match.TeamA),
			TeamB:        teamName(match.TeamB),
			Winner:       teamName(match.Winner),
		},
		Actions: make([]TimelineAction, 0, len(pickBans)),
	}

	for _, pb := range pickBans {
		action := TimelineAction{
			Order:   pb.Order,
			Type:    pb.Type,
			Team:    teamName(pb.Team),
			Context: contextOrDefault(pb.Context),
		}
		if pb.Champion != nil {
			action.Champion = pb.Champion.Name
		}
		if pb.Player != nil {
			name := pb.Player.Name
			action.Player = &name
		}
		timeline.Actions = append(timeline.Actions, action)
	}

	return timeline, nil
}

func contextOrDefault(pbCtx *domain.PickBanContext) StoryContext {
	if pbCtx == nil {
		return StoryContext{Label: domain.LabelNone.Display()}
	}
	return StoryContext{
		Label:     pbCtx.Label.Display(),
		Keyword:   pbCtx.Keyword,
		Comment:   pbCtx.Comment,
		Intensity: pbCtx.Intensity,
	}
}

func teamName(team *domain.Team) string {
	if team == nil {
		return ""
	}
	return team.Name
}
