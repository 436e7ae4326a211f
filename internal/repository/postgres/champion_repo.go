package postgres

import (
	"context"

	"github.com/haeun/worlds-banpick-archive/internal/domain"
	"gorm.io/gorm"
)

type championRepository struct {
	db *gorm.DB
}

func NewChampionRepository(db *gorm.DB) *championRepository {
	return &championRepository{db: db}
}

func (r *championRepository) Create(ctx context.Context, champion *domain.Champion) error {
	return r.db.WithContext(ctx).Create(champion).Error
}

func (r *championRepository) GetOrCreateByName(ctx context.Context, name string) (*domain.Champion, error) {
	champion := &domain.Champion{Name: name}
	err := r.db.WithContext(ctx).
		Where(domain.Champion{Name: name}).
		FirstOrCreate(champion).Error
	if err != nil {
		return nil, err
	}
	return champion, nil
}

func (r *championRepository) GetAll(ctx context.Context) ([]*domain.Champion, error) {
	var champions []*domain.Champion
	err := r.db.WithContext(ctx).Order("name ASC").Find(&champions).Error
	if err != nil {
		return nil, err
	}
	return champions, nil
}

func (r *championRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Champion{}, id).Error
}
