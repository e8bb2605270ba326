package repository

import (
	"context"
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"chaos-planner/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "chaos_test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB) model.User {
	t.Helper()
	user := model.User{FName: "Trevor", Email: "trevor@example.com", Password: "changeit"}
	if err := NewUserRepository(db).Create(context.Background(), &user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedCategory(t *testing.T, db *gorm.DB, ownerID uint) model.Category {
	t.Helper()
	category := model.Category{Title: "Work", Priority: 1, OwnerID: ownerID}
	if err := NewCategoryRepository(db).Create(context.Background(), &category); err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return category
}
