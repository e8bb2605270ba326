package service

import (
	"context"
	"errors"
	"testing"

	"chaos-planner/internal/model"
	"chaos-planner/internal/repository"
)

func TestCreateRequiresTitle(t *testing.T) {
	db := newTestDB(t)
	svc := NewTaskService(repository.NewTaskRepository(db))

	_, err := svc.Create(context.Background(), TaskInput{Priority: 1, OwnerID: 1, CategoryID: 1})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUpdateAllAppliesInOrder(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	category := seedCategory(t, db, user.ID, "Work")
	svc := NewTaskService(repository.NewTaskRepository(db))
	ctx := context.Background()

	t1 := seedTask(t, db, user.ID, category.ID, "one", false)
	t2 := seedTask(t, db, user.ID, category.ID, "two", false)

	t1.Title = "one updated"
	t2.Title = "two updated"
	applied, err := svc.UpdateAll(ctx, []model.Task{t1, t2})
	if err != nil {
		t.Fatalf("batch: %v", err)
	}
	if applied != 2 {
		t.Fatalf("expected 2 applied, got %d", applied)
	}

	got, err := svc.Get(ctx, t2.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "two updated" {
		t.Errorf("batch update not applied: %q", got.Title)
	}
}

// A failing element aborts the batch, but earlier updates stay visible:
// there is no atomicity across the loop.
func TestUpdateAllPartialFailure(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	category := seedCategory(t, db, user.ID, "Work")
	svc := NewTaskService(repository.NewTaskRepository(db))
	ctx := context.Background()

	t1 := seedTask(t, db, user.ID, category.ID, "one", false)
	t2 := seedTask(t, db, user.ID, category.ID, "two", false)
	t3 := seedTask(t, db, user.ID, category.ID, "three", false)

	t1.Title = "one updated"
	t2.CategoryID = 999 // unresolvable foreign key
	t3.Title = "three updated"

	applied, err := svc.UpdateAll(ctx, []model.Task{t1, t2, t3})
	if err == nil {
		t.Fatal("expected batch failure")
	}
	if applied != 1 {
		t.Errorf("expected 1 applied, got %d", applied)
	}

	var batchErr *BatchError
	if !errors.As(err, &batchErr) {
		t.Fatalf("expected BatchError, got %T", err)
	}
	if batchErr.Index != 1 || batchErr.Applied != 1 {
		t.Errorf("batch error misattributed: index=%d applied=%d", batchErr.Index, batchErr.Applied)
	}
	if !errors.Is(err, repository.ErrConflict) {
		t.Errorf("expected underlying ErrConflict, got %v", batchErr.Err)
	}

	got1, err := svc.Get(ctx, t1.ID)
	if err != nil {
		t.Fatalf("get t1: %v", err)
	}
	if got1.Title != "one updated" {
		t.Errorf("t1 update should have persisted, got %q", got1.Title)
	}

	got3, err := svc.Get(ctx, t3.ID)
	if err != nil {
		t.Fatalf("get t3: %v", err)
	}
	if got3.Title != "three" {
		t.Errorf("t3 update should not have run, got %q", got3.Title)
	}
}
