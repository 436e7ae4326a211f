package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/haeun/worlds-banpick-archive/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByDisplayName(ctx context.Context, displayName string) (*domain.User, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.UserSession) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

type ChampionRepository interface {
	Create(ctx context.Context, champion *domain.Champion) error
	// GetOrCreateByName backs the stats importer, which must not duplicate
	// champions already created through the admin surface.
	GetOrCreateByName(ctx context.Context, name string) (*domain.Champion, error)
	GetAll(ctx context.Context) ([]*domain.Champion, error)
	Delete(ctx context.Context, id uint) error
}

type LeagueRepository interface {
	Create(ctx context.Context, league *domain.League) error
	GetAll(ctx context.Context) ([]*domain.League, error)
	Delete(ctx context.Context, id uint) error
}

type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	GetAll(ctx context.Context) ([]*domain.Team, error)
	Delete(ctx context.Context, id uint) error
}

type PlayerRepository interface {
	Create(ctx context.Context, player *domain.Player) error
	GetByTeamID(ctx context.Context, teamID uint) ([]*domain.Player, error)
	Delete(ctx context.Context, id uint) error
}

type MatchRepository interface {
	Create(ctx context.Context, match *domain.Match) error
	GetByID(ctx context.Context, id uint) (*domain.Match, error)
	// GetAllByDate returns every match ordered by date ascending, teams
	// preloaded.
	GetAllByDate(ctx context.Context) ([]*domain.Match, error)
	// GetRecent returns the latest matches by date descending.
	GetRecent(ctx context.Context, limit int) ([]*domain.Match, error)
	Delete(ctx context.Context, id uint) error
}

type PickBanRepository interface {
	Create(ctx context.Context, pb *domain.PickBan) error
	// GetByMatchID returns the draft actions of one match ordered by draft
	// order ascending, with team, champion, player and context preloaded.
	GetByMatchID(ctx context.Context, matchID uint) ([]*domain.PickBan, error)
	Delete(ctx context.Context, id uint) error
	UpsertContext(ctx context.Context, pbCtx *domain.PickBanContext) error
	DeleteContext(ctx context.Context, pickBanID uint) error
}

// StatSort names a ChampionStat column the ranking endpoint may sort by.
type StatSort string

const (
	StatSortTierScore     StatSort = "tier_score"
	StatSortTotalPicks    StatSort = "total_picks"
	StatSortBlueFirstPick StatSort = "blue_first_pick"
	StatSortRedFirstPick  StatSort = "red_first_pick"
	StatSortSideIndex     StatSort = "side_index"
)

// StatQuery is a validated stat listing request. Side == nil means no
// filter.
type StatQuery struct {
	Sort       StatSort
	Descending bool
	Side       *domain.SidePreference
}

type ChampionStatRepository interface {
	Upsert(ctx context.Context, stat *domain.ChampionStat) error
	// List returns stats with champions preloaded, filtered and ordered per
	// the query.
	List(ctx context.Context, q StatQuery) ([]*domain.ChampionStat, error)
}

type MatchStoryRepository interface {
	Create(ctx context.Context, story *domain.MatchStory) error
	// GetAll returns every story ordered by stage, match number, set number.
	GetAll(ctx context.Context) ([]*domain.MatchStory, error)
	// GetByStage returns one stage's stories ordered by match number then
	// set number.
	GetByStage(ctx context.Context, stage domain.StoryStage) ([]*domain.MatchStory, error)
	// GetByStageAndMatch returns one match's sets ordered by set number.
	// An empty result is not an error at this layer.
	GetByStageAndMatch(ctx context.Context, stage domain.StoryStage, matchNumber int) ([]*domain.MatchStory, error)
	Update(ctx context.Context, story *domain.MatchStory) error
	Delete(ctx context.Context, id uint) error
}

type Repositories struct {
	User         UserRepository
	Session      SessionRepository
	Champion     ChampionRepository
	League       LeagueRepository
	Team         TeamRepository
	Player       PlayerRepository
	Match        MatchRepository
	PickBan      PickBanRepository
	ChampionStat ChampionStatRepository
	MatchStory   MatchStoryRepository
}
