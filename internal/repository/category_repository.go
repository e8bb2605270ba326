package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"chaos-planner/internal/model"
)

// CategoryRepository handles CRUD for categories.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", translate(err))
	}
	return categories, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, fmt.Errorf("get category %d: %w", id, translate(err))
	}
	return &category, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category *model.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("create category: %w", translate(err))
	}
	return nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *model.Category) error {
	if category.ID == 0 {
		return fmt.Errorf("update category: %w", ErrNotFound)
	}
	res := r.db.WithContext(ctx).
		Model(&model.Category{ID: category.ID}).
		Select("title", "description", "priority", "owner_id").
		Updates(category)
	if res.Error != nil {
		return fmt.Errorf("update category %d: %w", category.ID, translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update category %d: %w", category.ID, ErrNotFound)
	}
	return nil
}

// Delete is unconditional. Tasks or durations still referencing the category
// surface as ErrConflict from the foreign keys.
func (r *CategoryRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.Category{}, id).Error; err != nil {
		return fmt.Errorf("delete category %d: %w", id, translate(err))
	}
	return nil
}
