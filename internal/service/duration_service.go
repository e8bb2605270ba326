package service

import (
	"context"
	"fmt"

	"chaos-planner/internal/model"
	"chaos-planner/internal/repository"
)

// DurationInput represents data required to create a duration.
type DurationInput struct {
	OwnerID       uint   `json:"owner_id"`
	CategoryID    uint   `json:"category_id"`
	StartHour     int    `json:"start_hour"`
	EndHour       int    `json:"end_hour"`
	RecurringDays []int  `json:"recurring_days"`
	Color         string `json:"color"`
}

// DurationService wraps duration-related business logic.
type DurationService struct {
	durationRepo *repository.DurationRepository
}

func NewDurationService(durationRepo *repository.DurationRepository) *DurationService {
	return &DurationService{durationRepo: durationRepo}
}

// Hours carry no range validation on purpose; only the weekday list is
// checked, since the recurring model is meaningless outside 0–6.
func validateRecurringDays(days []int) error {
	for _, day := range days {
		if day < 0 || day > 6 {
			return fmt.Errorf("%w: weekday %d out of range 0-6", ErrInvalidInput, day)
		}
	}
	return nil
}

func (s *DurationService) Create(ctx context.Context, input DurationInput) (*model.Duration, error) {
	if err := validateRecurringDays(input.RecurringDays); err != nil {
		return nil, err
	}

	duration := model.Duration{
		OwnerID:       input.OwnerID,
		CategoryID:    input.CategoryID,
		StartHour:     input.StartHour,
		EndHour:       input.EndHour,
		RecurringDays: input.RecurringDays,
		Color:         input.Color,
	}
	if err := s.durationRepo.Create(ctx, &duration); err != nil {
		return nil, err
	}
	return &duration, nil
}

func (s *DurationService) List(ctx context.Context) ([]model.Duration, error) {
	return s.durationRepo.List(ctx)
}

func (s *DurationService) Get(ctx context.Context, id uint) (*model.Duration, error) {
	return s.durationRepo.GetByID(ctx, id)
}

func (s *DurationService) Update(ctx context.Context, duration model.Duration) (*model.Duration, error) {
	if err := validateRecurringDays(duration.RecurringDays); err != nil {
		return nil, err
	}
	if err := s.durationRepo.Update(ctx, &duration); err != nil {
		return nil, err
	}
	return &duration, nil
}

func (s *DurationService) Delete(ctx context.Context, id uint) error {
	return s.durationRepo.Delete(ctx, id)
}
