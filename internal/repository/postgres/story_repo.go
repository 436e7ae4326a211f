package postgres

import (
	"context"

	"github.com/haeun/worlds-banpick-archive/internal/domain"
	"gorm.io/gorm"
)

type matchStoryRepository struct {
	db *gorm.DB
}

func NewMatchStoryRepository(db *gorm.DB) *matchStoryRepository {
	return &matchStoryRepository{db: db}
}

func (r *matchStoryRepository) Create(ctx context.Context, story *domain.MatchStory) error {
	return r.db.WithContext(ctx).Create(story).Error
}

func (r *matchStoryRepository) GetAll(ctx context.Context) ([]*domain.MatchStory, error) {
	var stories []*domain.MatchStory
	err := r.db.WithContext(ctx).
		Order("stage ASC, match_number ASC, set_number ASC").
		Find(&stories).Error
	if err != nil {
		return nil, err
	}
	return stories, nil
}

func (r *matchStoryRepository) GetByStage(ctx context.Context, stage domain.StoryStage) ([]*domain.MatchStory, error) {
	var stories []*domain.MatchStory
	err := r.db.WithContext(ctx).
		Where("stage = ?", stage).
		Order("match_number ASC, set_number ASC").
		Find(&stories).Error
	if err != nil {
		return nil, err
	}
	return stories, nil
}

func (r *matchStoryRepository) GetByStageAndMatch(ctx context.Context, stage domain.StoryStage, matchNumber int) ([]*domain.MatchStory, error) {
	var stories []*domain.MatchStory
	err := r.db.WithContext(ctx).
		Where("stage = ? AND match_number = ?", stage, matchNumber).
		Order("set_number ASC").
		Find(&stories).Error
	if err != nil {
		return nil, err
	}
	return stories, nil
}

func (r *matchStoryRepository) Update(ctx context.Context, story *domain.MatchStory) error {
	return r.db.WithContext(ctx).Save(story).Error
}

func (r *matchStoryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.MatchStory{}, id).Error
}
