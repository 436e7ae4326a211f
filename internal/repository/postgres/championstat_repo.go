package postgres

import (
	"context"
	"fmt"

	"github.com/haeun/worlds-banpick-archive/internal/domain"
	"github.com/haeun/worlds-banpick-archive/internal/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type championStatRepository struct {
	db *gorm.DB
}

func NewChampionStatRepository(db *gorm.DB) *championStatRepository {
	return &championStatRepository{db: db}
}

func (r *championStatRepository) Upsert(ctx context.Context, stat *domain.ChampionStat) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "champion_id"}},
		UpdateAll: true,
	}).Create(stat).Error
}

func (r *championStatRepository) List(ctx context.Context, q repository.StatQuery) ([]*domain.ChampionStat, error) {
	direction := "ASC"
	if q.Descending {
		direction = "DESC"
	}

	// q.Sort is one of the StatSort constants, validated by the service
	// layer; it is never raw request input.
	query := r.db.WithContext(ctx).
		Preload("Champion").
		Order(fmt.Sprintf("%s %s", q.Sort, direction))

	if q.Side != nil {
		query = query.Where("side_preference = ?", *q.Side)
	}

	var stats []*domain.ChampionStat
	if err := query.Find(&stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}
