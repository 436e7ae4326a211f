package postgres

import (
	"context"

	"github.com/haeun/worlds-banpick-archive/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type matchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) *matchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) Create(ctx context.Context, match *domain.Match) error {
	return r.db.WithContext(ctx).Create(match).Error
}

func (r *matchRepository) GetByID(ctx context.Context, id uint) (*domain.Match, error) {
	var match domain.Match
	err := r.db.WithContext(ctx).
		Preload("TeamA").
		Preload("TeamB").
		Preload("Winner").
		First(&match, id).Error
	if err != nil {
		return nil, err
	}
	return &match, nil
}

func (r *matchRepository) GetAllByDate(ctx context.Context) ([]*domain.Match, error) {
	var matches []*domain.Match
	err := r.db.WithContext(ctx).
		Preload("TeamA").
		Preload("TeamB").
		Preload("Winner").
		Order("match_date ASC, id ASC").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *matchRepository) GetRecent(ctx context.Context, limit int) ([]*domain.Match, error) {
	var matches []*domain.Match
	err := r.db.WithContext(ctx).
		Preload("TeamA").
		Preload("TeamB").
		Preload("Winner").
		Order("match_date DESC, id DESC").
		Limit(limit).
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *matchRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Match{}, id).Error
}

type pickBanRepository struct {
	db *gorm.DB
}

func NewPickBanRepository(db *gorm.DB) *pickBanRepository {
	return &pickBanRepository{db: db}
}

func (r *pickBanRepository) Create(ctx context.Context, pb *domain.PickBan) error {
	return r.db.WithContext(ctx).Create(pb).Error
}

func (r *pickBanRepository) GetByMatchID(ctx context.Context, matchID uint) ([]*domain.PickBan, error) {
	var pickBans []*domain.PickBan
	err := r.db.WithContext(ctx).
		Preload("Team").
		Preload("Champion").
		Preload("Player").
		Preload("Context").
		Where("match_id = ?", matchID).
		Order("draft_order ASC").
		Find(&pickBans).Error
	if err != nil {
		return nil, err
	}
	return pickBans, nil
}

func (r *pickBanRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.PickBan{}, id).Error
}

func (r *pickBanRepository) UpsertContext(ctx context.Context, pbCtx *domain.PickBanContext) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "pick_ban_id"}},
		UpdateAll: true,
	}).Create(pbCtx).Error
}

func (r *pickBanRepository) DeleteContext(ctx context.Context, pickBanID uint) error {
	return r.db.WithContext(ctx).Delete(&domain.PickBanContext{}, "pick_ban_id = ?", pickBanID).Error
}
