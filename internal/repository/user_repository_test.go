package repository

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"chaos-planner/internal/model"
)

func TestUserCreateHashesPassword(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := model.User{FName: "Ada", LName: "L", Email: "ada@example.com", Password: "s3cret"}
	if err := repo.Create(ctx, &user); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Password == "s3cret" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(got.Password), []byte("s3cret")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
}

func TestUserGetMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.GetByID(context.Background(), 4242)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
