package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"chaos-planner/internal/model"
)

// DurationRepository handles CRUD for scheduled time blocks.
type DurationRepository struct {
	db *gorm.DB
}

func NewDurationRepository(db *gorm.DB) *DurationRepository {
	return &DurationRepository{db: db}
}

func (r *DurationRepository) List(ctx context.Context) ([]model.Duration, error) {
	var durations []model.Duration
	if err := r.db.WithContext(ctx).Find(&durations).Error; err != nil {
		return nil, fmt.Errorf("list durations: %w", translate(err))
	}
	return durations, nil
}

func (r *DurationRepository) GetByID(ctx context.Context, id uint) (*model.Duration, error) {
	var duration model.Duration
	if err := r.db.WithContext(ctx).First(&duration, id).Error; err != nil {
		return nil, fmt.Errorf("get duration %d: %w", id, translate(err))
	}
	return &duration, nil
}

func (r *DurationRepository) Create(ctx context.Context, duration *model.Duration) error {
	if err := r.db.WithContext(ctx).Create(duration).Error; err != nil {
		return fmt.Errorf("create duration: %w", translate(err))
	}
	return nil
}

func (r *DurationRepository) Update(ctx context.Context, duration *model.Duration) error {
	if duration.ID == 0 {
		return fmt.Errorf("update duration: %w", ErrNotFound)
	}
	res := r.db.WithContext(ctx).
		Model(&model.Duration{ID: duration.ID}).
		Select("owner_id", "category_id", "start_hour", "end_hour", "recurring_days", "color").
		Updates(duration)
	if res.Error != nil {
		return fmt.Errorf("update duration %d: %w", duration.ID, translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update duration %d: %w", duration.ID, ErrNotFound)
	}
	return nil
}

func (r *DurationRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.Duration{}, id).Error; err != nil {
		return fmt.Errorf("delete duration %d: %w", id, translate(err))
	}
	return nil
}
