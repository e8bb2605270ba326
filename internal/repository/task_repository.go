package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"chaos-planner/internal/model"
)

// TaskRepository handles CRUD for tasks.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", translate(err))
	}
	return tasks, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		return nil, fmt.Errorf("get task %d: %w", id, translate(err))
	}
	return &task, nil
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", translate(err))
	}
	return nil
}

// Update replaces every mutable column of the row with the submitted values.
// Zero affected rows means the id does not exist.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	if task.ID == 0 {
		return fmt.Errorf("update task: %w", ErrNotFound)
	}
	res := r.db.WithContext(ctx).
		Model(&model.Task{ID: task.ID}).
		Select("title", "description", "is_complete", "priority", "owner_id", "category_id").
		Updates(task)
	if res.Error != nil {
		return fmt.Errorf("update task %d: %w", task.ID, translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update task %d: %w", task.ID, ErrNotFound)
	}
	return nil
}

// Delete removes the row if present. A missing id is not an error.
func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.Task{}, id).Error; err != nil {
		return fmt.Errorf("delete task %d: %w", id, translate(err))
	}
	return nil
}
