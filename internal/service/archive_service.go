package service

import (
	"context"
	"errors"

	"github.com/haeun/worlds-banpick-archive/internal/domain"
	"github.com/haeun/worlds-banpick-archive/internal/repository"
	"github.com/jackc/pgx/v5/pgconn"
)

// postgres error codes surfaced by the archive's integrity constraints
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// ArchiveService is the write surface behind the admin API. All mutations
// flow through here; the read-side services never write.
type ArchiveService struct {
	repos *repository.Repositories
}

func NewArchiveService(repos *repository.Repositories) *ArchiveService {
	return &ArchiveService{repos: repos}
}

// translateIntegrityError maps constraint violations onto domain errors so
// callers see a blocking integrity failure instead of a driver error. A
// still-referenced entity must never be silently lost.
func translateIntegrityError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgForeignKeyViolation:
		return domain.ErrProtectedReferent
	case pgUniqueViolation:
		if pgErr.ConstraintName == "idx_pickban_match_order" {
			return domain.ErrDuplicateOrder
		}
	}
	return err
}

func (s *ArchiveService) CreateChampion(ctx context.Context, name string) (*domain.Champion, error) {
	champion := &domain.Champion{Name: name}
	if err := s.repos.Champion.Create(ctx, champion); err != nil {
		return nil, translateIntegrityError(err)
	}
	return champion, nil
}

func (s *ArchiveService) DeleteChampion(ctx context.Context, id uint) error {
	return translateIntegrityError(s.repos.Champion.Delete(ctx, id))
}

func (s *ArchiveService) ListChampions(ctx context.Context) ([]*domain.Champion, error) {
	return s.repos.Champion.GetAll(ctx)
}

func (s *ArchiveService) CreateLeague(ctx context.Context, name string) (*domain.League, error) {
	league := &domain.League{Name: name}
	if err := s.repos.League.Create(ctx, league); err != nil {
		return nil, translateIntegrityError(err)
	}
	return league, nil
}

func (s *ArchiveService) ListLeagues(ctx context.Context) ([]*domain.League, error) {
	return s.repos.League.GetAll(ctx)
}

// DeleteLeague detaches its teams rather than removing them; a league is a
// grouping, not an owner.
func (s *ArchiveService) DeleteLeague(ctx context.Context, id uint) error {
	return translateIntegrityError(s.repos.League.Delete(ctx, id))
}

func (s *ArchiveService) CreateTeam(ctx context.Context, name string, leagueID *uint) (*domain.Team, error) {
	team := &domain.Team{Name: name, LeagueID: leagueID}
	if err := s.repos.Team.Create(ctx, team); err != nil {
		return nil, translateIntegrityError(err)
	}
	return team, nil
}

// DeleteTeam fails with domain.ErrProtectedReferent while any match or draft
// action still references the team. Players are removed with it.
func (s *ArchiveService) DeleteTeam(ctx context.Context, id uint) error {
	return translateIntegrityError(s.repos.Team.Delete(ctx, id))
}

func (s *ArchiveService) ListTeams(ctx context.Context) ([]*domain.Team, error) {
	return s.repos.Team.GetAll(ctx)
}

func (s *ArchiveService) ListTeamPlayers(ctx context.Context, teamID uint) ([]*domain.Player, error) {
	return s.repos.Player.GetByTeamID(ctx, teamID)
}

func (s *ArchiveService) CreatePlayer(ctx context.Context, name string, teamID uint) (*domain.Player, error) {
	player := &domain.Player{Name: name, TeamID: teamID}
	if err := s.repos.Player.Create(ctx, player); err != nil {
		return nil, translateIntegrityError(err)
	}
	return player, nil
}

func (s *ArchiveService) DeletePlayer(ctx context.Context, id uint) error {
	return translateIntegrityError(s.repos.Player.Delete(ctx, id))
}

func (s *ArchiveService) CreateMatch(ctx context.Context, match *domain.Match) error {
	if !match.Stage.Valid() {
		return domain.ErrInvalidStage
	}
	return translateIntegrityError(s.repos.Match.Create(ctx, match))
}

// DeleteMatch cascades to the match's draft actions and their contexts.
func (s *ArchiveService) DeleteMatch(ctx context.Context, id uint) error {
	return translateIntegrityError(s.repos.Match.Delete(ctx, id))
}

func (s *ArchiveService) CreatePickBan(ctx context.Context, pb *domain.PickBan) error {
	if pb.Type != domain.ActionTypeBan && pb.Type != domain.ActionTypePick {
		return domain.ErrInvalidActionType
	}
	return translateIntegrityError(s.repos.PickBan.Create(ctx, pb))
}

func (s *ArchiveService) DeletePickBan(ctx context.Context, id uint) error {
	return translateIntegrityError(s.repos.PickBan.Delete(ctx, id))
}

func (s *ArchiveService) SetPickBanContext(ctx context.Context, pbCtx *domain.PickBanContext) error {
	if pbCtx.Label == "" {
		pbCtx.Label = domain.LabelNone
	}
	if !pbCtx.Label.Valid() {
		return domain.ErrInvalidStoryLabel
	}
	return translateIntegrityError(s.repos.PickBan.UpsertContext(ctx, pbCtx))
}

func (s *ArchiveService) ClearPickBanContext(ctx context.Context, pickBanID uint) error {
	return translateIntegrityError(s.repos.PickBan.DeleteContext(ctx, pickBanID))
}

func (s *ArchiveService) CreateStory(ctx context.Context, story *domain.MatchStory) error {
	if !story.Stage.Valid() {
		return domain.ErrInvalidStage
	}
	return translateIntegrityError(s.repos.MatchStory.Create(ctx, story))
}

func (s *ArchiveService) UpdateStory(ctx context.Context, story *domain.MatchStory) error {
	if !story.Stage.Valid() {
		return domain.ErrInvalidStage
	}
	return translateIntegrityError(s.repos.MatchStory.Update(ctx, story))
}

func (s *ArchiveService) DeleteStory(ctx context.Context, id uint) error {
	return translateIntegrityError(s.repos.MatchStory.Delete(ctx, id))
}

func (s *ArchiveService) UpsertChampionStat(ctx context.Context, stat *domain.ChampionStat) error {
	if !stat.SidePreference.Valid() {
		stat.SidePreference = domain.SideBalanced
	}
	return translateIntegrityError(s.repos.ChampionStat.Upsert(ctx, stat))
}
