package service

import (
	"context"
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"chaos-planner/internal/model"
	"chaos-planner/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := repository.NewDB(filepath.Join(t.TempDir(), "chaos_test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB) model.User {
	t.Helper()
	user := model.User{FName: "Trevor", Email: "trevor@example.com", Password: "changeit"}
	if err := repository.NewUserRepository(db).Create(context.Background(), &user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedCategory(t *testing.T, db *gorm.DB, ownerID uint, title string) model.Category {
	t.Helper()
	category := model.Category{Title: title, Priority: 1, OwnerID: ownerID}
	if err := repository.NewCategoryRepository(db).Create(context.Background(), &category); err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return category
}

func seedTask(t *testing.T, db *gorm.DB, ownerID, categoryID uint, title string, done bool) model.Task {
	t.Helper()
	task := model.Task{Title: title, IsComplete: done, Priority: 1, OwnerID: ownerID, CategoryID: categoryID}
	if err := repository.NewTaskRepository(db).Create(context.Background(), &task); err != nil {
		t.Fatalf("seed task: %v", err)
	}
	return task
}
