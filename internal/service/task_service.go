package service

import (
	"context"
	"errors"
	"fmt"

	"chaos-planner/internal/model"
	"chaos-planner/internal/repository"
)

// ErrInvalidInput marks requests rejected before touching storage.
var ErrInvalidInput = errors.New("invalid input")

// TaskInput represents data required to create a task.
type TaskInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	IsComplete  bool   `json:"is_complete"`
	Priority    int    `json:"priority"`
	OwnerID     uint   `json:"owner_id"`
	CategoryID  uint   `json:"category_id"`
}

// BatchError reports a batch update that failed partway. Updates before
// Index have already persisted and stay persisted.
type BatchError struct {
	Index   int
	Applied int
	Err     error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("batch update failed at element %d (%d applied): %v", e.Index, e.Applied, e.Err)
}

func (e *BatchError) Unwrap() error {
	return e.Err
}

// TaskService wraps task-related business logic.
type TaskService struct {
	taskRepo *repository.TaskRepository
}

func NewTaskService(taskRepo *repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

func (s *TaskService) Create(ctx context.Context, input TaskInput) (*model.Task, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	task := model.Task{
		Title:       input.Title,
		Description: input.Description,
		IsComplete:  input.IsComplete,
		Priority:    input.Priority,
		OwnerID:     input.OwnerID,
		CategoryID:  input.CategoryID,
	}
	if err := s.taskRepo.Create(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) List(ctx context.Context) ([]model.Task, error) {
	return s.taskRepo.List(ctx)
}

func (s *TaskService) Get(ctx context.Context, id uint) (*model.Task, error) {
	return s.taskRepo.GetByID(ctx, id)
}

// Update replaces every field of the task identified by task.ID.
func (s *TaskService) Update(ctx context.Context, task model.Task) (*model.Task, error) {
	if task.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if err := s.taskRepo.Update(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateAll applies the updates sequentially in input order. There is no
// atomicity across the batch: on failure the elements before the failing one
// stay applied, and the returned BatchError says how many that was.
func (s *TaskService) UpdateAll(ctx context.Context, tasks []model.Task) (int, error) {
	for i, task := range tasks {
		if task.Title == "" {
			return i, &BatchError{Index: i, Applied: i, Err: fmt.Errorf("%w: title is required", ErrInvalidInput)}
		}
		if err := s.taskRepo.Update(ctx, &task); err != nil {
			return i, &BatchError{Index: i, Applied: i, Err: err}
		}
	}
	return len(tasks), nil
}

func (s *TaskService) Delete(ctx context.Context, id uint) error {
	return s.taskRepo.Delete(ctx, id)
}
