package service

import (
	"context"

	"github.com/haeun/worlds-banpick-archive/internal/domain"
	"github.com/haeun/worlds-banpick-archive/internal/repository"
)

// StatsService serves champion statistics sorted and filtered per request.
// Unrecognized sort fields, directions, or filter values fall back to the
// defaults instead of failing: the read surface is deliberately permissive.
type StatsService struct {
	statRepo repository.ChampionStatRepository
}

func NewStatsService(statRepo repository.ChampionStatRepository) *StatsService {
	return &StatsService{statRepo: statRepo}
}

var statSortFields = map[string]repository.StatSort{
	"tier_score":      repository.StatSortTierScore,
	"total_picks":     repository.StatSortTotalPicks,
	"blue_first_pick": repository.StatSortBlueFirstPick,
	"red_first_pick":  repository.StatSortRedFirstPick,
	"side_index":      repository.StatSortSideIndex,
}

// ParseStatQuery turns raw query parameters into a validated StatQuery.
// Defaults: tier_score, descending, no side filter.
func ParseStatQuery(sort, order, side string) repository.StatQuery {
	q := repository.StatQuery{
		Sort:       repository.StatSortTierScore,
		Descending: true,
	}

	if field, ok := statSortFields[sort]; ok {
		q.Sort = field
	}
	if order == "asc" {
		q.Descending = false
	}
	if pref := domain.SidePreference(side); side != "" && side != "all" && pref.Valid() {
		q.Side = &pref
	}

	return q
}

// List returns the full stat set for the query; there is no pagination.
func (s *StatsService) List(ctx context.Context, q repository.StatQuery) ([]*domain.ChampionStat, error) {
	return s.statRepo.List(ctx, q)
}
