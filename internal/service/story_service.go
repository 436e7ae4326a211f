package service

import (
	"context"
	"time"

	"github.com/haeun/worlds-banpick-archive/internal/domain"
	"github.com/haeun/worlds-banpick-archive/internal/lookup"
	"github.com/haeun/worlds-banpick-archive/internal/repository"
)

// StoryService groups per-set story rows into per-match bundles and builds
// the stage-to-match-number mapping that links relational matches to their
// narrative pages.
type StoryService struct {
	storyRepo repository.MatchStoryRepository
	matchRepo repository.MatchRepository
}

func NewStoryService(storyRepo repository.MatchStoryRepository, matchRepo repository.MatchRepository) *StoryService {
	return &StoryService{
		storyRepo: storyRepo,
		matchRepo: matchRepo,
	}
}

// StoryGroup bundles the sets of one match for list display.
type StoryGroup struct {
	MatchNumber   int
	TeamA         string
	TeamB         string
	TeamALogo     string
	TeamBLogo     string
	FinalScore    string
	MatchOverview string
	Sets          []*domain.MatchStory
}

type storyGroupKey struct {
	MatchNumber int
	TeamA       string
	TeamB       string
	FinalScore  string
}

// GroupStories groups ordered story rows by (match_number, team_a, team_b,
// final_score), preserving first-seen group order and the incoming set
// order within each group. The group overview is the first non-empty
// per-set overview. The function is pure and idempotent.
func GroupStories(stories []*domain.MatchStory) []*StoryGroup {
	groups := make(map[storyGroupKey]*StoryGroup)
	var ordered []*StoryGroup

	for _, story := range stories {
		key := storyGroupKey{
			MatchNumber: story.MatchNumber,
			TeamA:       story.TeamA,
			TeamB:       story.TeamB,
			FinalScore:  story.FinalScore,
		}
		group, ok := groups[key]
		if !ok {
			group = &StoryGroup{
				MatchNumber: story.MatchNumber,
				TeamA:       story.TeamA,
				TeamB:       story.TeamB,
				TeamALogo:   lookup.TeamLogo(story.TeamA),
				TeamBLogo:   lookup.TeamLogo(story.TeamB),
				FinalScore:  story.FinalScore,
			}
			groups[key] = group
			ordered = append(ordered, group)
		}
		if group.MatchOverview == "" && story.MatchOverview != "" {
			group.MatchOverview = story.MatchOverview
		}
		group.Sets = append(group.Sets, story)
	}

	return ordered
}

// GroupsByStage returns one stage's stories grouped per match.
func (s *StoryService) GroupsByStage(ctx context.Context, stage domain.StoryStage) ([]*StoryGroup, error) {
	stories, err := s.storyRepo.GetByStage(ctx, stage)
	if err != nil {
		return nil, err
	}
	return GroupStories(stories), nil
}

// StoryDetail is the full set list of one match plus its header data.
type StoryDetail struct {
	Stage         domain.StoryStage
	StageDisplay  string
	MatchNumber   int
	TeamA         string
	TeamB         string
	TeamALogo     string
	TeamBLogo     string
	FinalScore    string
	MatchOverview string
	Keywords      []string
	Sets          []*domain.MatchStory
}

// Detail returns every set of (stage, match number) in set order, or
// domain.ErrStoryNotFound when no rows exist.
func (s *StoryService) Detail(ctx context.Context, stage domain.StoryStage, matchNumber int) (*StoryDetail, error) {
	stories, err := s.storyRepo.GetByStageAndMatch(ctx, stage, matchNumber)
	if err != nil {
		return nil, err
	}
	if len(stories) == 0 {
		return nil, domain.ErrStoryNotFound
	}

	first := stories[0]
	detail := &StoryDetail{
		Stage:        stage,
		StageDisplay: stage.Display(),
		MatchNumber:  matchNumber,
		TeamA:        first.TeamA,
		TeamB:        first.TeamB,
		TeamALogo:    lookup.TeamLogo(first.TeamA),
		TeamBLogo:    lookup.TeamLogo(first.TeamB),
		FinalScore:   first.FinalScore,
		Keywords:     lookup.MatchKeywords(stage, matchNumber),
		Sets:         stories,
	}
	for _, story := range stories {
		if story.MatchOverview != "" {
			detail.MatchOverview = story.MatchOverview
			break
		}
	}

	return detail, nil
}

// All returns every story row in stage, match, set order.
func (s *StoryService) All(ctx context.Context) ([]*domain.MatchStory, error) {
	return s.storyRepo.GetAll(ctx)
}

// StoryRef points a relational match at its narrative page.
type StoryRef struct {
	Stage       domain.StoryStage
	MatchNumber int
}

// MatchStoryRefs numbers all matches 1..n within their stage by date order
// and returns the match_id -> (stage, match_number) mapping. Only knockout
// stages have story pages; swiss matches get no ref.
func (s *StoryService) MatchStoryRefs(ctx context.Context) (map[uint]StoryRef, error) {
	matches, err := s.matchRepo.GetAllByDate(ctx)
	if err != nil {
		return nil, err
	}
	return numberMatchesByStage(matches), nil
}

func numberMatchesByStage(matches []*domain.Match) map[uint]StoryRef {
	counts := make(map[domain.Stage]int)
	refs := make(map[uint]StoryRef, len(matches))
	for _, match := range matches {
		counts[match.Stage]++
		stage := domain.StoryStage(match.Stage)
		if !stage.Valid() {
			continue
		}
		refs[match.ID] = StoryRef{
			Stage:       stage,
			MatchNumber: counts[match.Stage],
		}
	}
	return refs
}

// RecentMatch is an index-page entry: a match plus its story link and team
// logos.
type RecentMatch struct {
	Match     *domain.Match
	Date      string
	StoryRef  *StoryRef
	TeamALogo string
	TeamBLogo string
}

// RecentMatches returns the latest matches with story refs attached where
// one exists.
func (s *StoryService) RecentMatches(ctx context.Context, limit int) ([]*RecentMatch, error) {
	matches, err := s.matchRepo.GetRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	refs, err := s.MatchStoryRefs(ctx)
	if err != nil {
		return nil, err
	}

	recent := make([]*RecentMatch, 0, len(matches))
	for _, match := range matches {
		entry := &RecentMatch{
			Match: match,
			Date:  time.Time(match.MatchDate).Format("2006-01-02"),
		}
		if match.TeamA != nil {
			entry.TeamALogo = lookup.TeamLogo(match.TeamA.Name)
		}
		if match.TeamB != nil {
			entry.TeamBLogo = lookup.TeamLogo(match.TeamB.Name)
		}
		if ref, ok := refs[match.ID]; ok {
			entry.StoryRef = &ref
		}
		recent = append(recent, entry)
	}
	return recent, nil
}
