package repository

import (
	"context"
	"errors"
	"testing"

	"chaos-planner/internal/model"
)

func TestDurationCreateGetRoundTrip(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	category := seedCategory(t, db, user.ID)
	repo := NewDurationRepository(db)
	ctx := context.Background()

	duration := model.Duration{
		OwnerID:       user.ID,
		CategoryID:    category.ID,
		StartHour:     9,
		EndHour:       11,
		RecurringDays: []int{1, 3, 5},
		Color:         "#ff8800",
	}
	if err := repo.Create(ctx, &duration); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(ctx, duration.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.StartHour != 9 || got.EndHour != 11 || got.Color != "#ff8800" {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if len(got.RecurringDays) != 3 || got.RecurringDays[0] != 1 || got.RecurringDays[1] != 3 || got.RecurringDays[2] != 5 {
		t.Errorf("recurring days order not preserved: %v", got.RecurringDays)
	}
}

func TestDurationCreateRejectsUnknownOwner(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	category := seedCategory(t, db, user.ID)
	repo := NewDurationRepository(db)

	duration := model.Duration{OwnerID: 999, CategoryID: category.ID, StartHour: 1, EndHour: 2}
	err := repo.Create(context.Background(), &duration)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestDurationUpdateMissingReturnsNotFound(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	category := seedCategory(t, db, user.ID)
	repo := NewDurationRepository(db)

	duration := model.Duration{ID: 4242, OwnerID: user.ID, CategoryID: category.ID, StartHour: 1, EndHour: 2}
	err := repo.Update(context.Background(), &duration)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
