package service

import (
	"context"
	"fmt"

	"chaos-planner/internal/model"
	"chaos-planner/internal/repository"
)

// CategoryInput represents data required to create or update a category.
type CategoryInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
	OwnerID     uint   `json:"owner_id"`
}

// CategoryView is a category with its tasks split into todo/done buckets.
// Buckets are always non-nil so empty ones serialize as [].
type CategoryView struct {
	model.Category
	TasksTodo []model.Task `json:"tasks_todo"`
	TasksDone []model.Task `json:"tasks_done"`
}

// CategoryService provides category CRUD plus the bucketed task view.
type CategoryService struct {
	categoryRepo *repository.CategoryRepository
	taskRepo     *repository.TaskRepository
}

func NewCategoryService(categoryRepo *repository.CategoryRepository, taskRepo *repository.TaskRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo, taskRepo: taskRepo}
}

func (s *CategoryService) Create(ctx context.Context, input CategoryInput) (*model.Category, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	category := model.Category{
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		OwnerID:     input.OwnerID,
	}
	if err := s.categoryRepo.Create(ctx, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id uint) (*model.Category, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

func (s *CategoryService) Update(ctx context.Context, id uint, input CategoryInput) (*model.Category, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	category := model.Category{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		OwnerID:     input.OwnerID,
	}
	if err := s.categoryRepo.Update(ctx, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	return s.categoryRepo.Delete(ctx, id)
}

// Views builds the bucketed view for every category. Tasks and categories
// are read in two independent queries with no snapshot between them: a task
// inserted between the reads may be missing from the result. Each task lands
// in exactly one bucket of every category whose id matches its category_id,
// chosen by is_complete; tasks whose category no longer exists are dropped.
func (s *CategoryService) Views(ctx context.Context) ([]CategoryView, error) {
	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]CategoryView, len(categories))
	index := make(map[uint]int, len(categories))
	for i, category := range categories {
		views[i] = CategoryView{
			Category:  category,
			TasksTodo: []model.Task{},
			TasksDone: []model.Task{},
		}
		index[category.ID] = i
	}

	for _, task := range tasks {
		i, ok := index[task.CategoryID]
		if !ok {
			continue
		}
		if task.IsComplete {
			views[i].TasksDone = append(views[i].TasksDone, task)
		} else {
			views[i].TasksTodo = append(views[i].TasksTodo, task)
		}
	}

	return views, nil
}

// View builds the bucketed view for a single category. Same staleness
// caveats as Views.
func (s *CategoryService) View(ctx context.Context, id uint) (*CategoryView, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	view := CategoryView{
		Category:  *category,
		TasksTodo: []model.Task{},
		TasksDone: []model.Task{},
	}
	for _, task := range tasks {
		if task.CategoryID != id {
			continue
		}
		if task.IsComplete {
			view.TasksDone = append(view.TasksDone, task)
		} else {
			view.TasksTodo = append(view.TasksTodo, task)
		}
	}
	return &view, nil
}
