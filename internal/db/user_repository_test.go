package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/belagoesr/todo-server/internal/models"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

func testUser(email string) *models.User {
	return &models.User{
		Email:        email,
		ID:           uuid.New(),
		PasswordHash: "$2a$10$fakehashfakehashfakehash",
		ExpiresAt:    time.Now().UTC().Add(models.SessionTTL).Truncate(time.Second),
		IsActive:     false,
	}
}

func TestUserRepository_CreateAndGetByEmail(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	repo := NewUserRepository(conn)
	user := testUser("my@email.com")

	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	fetched, err := repo.GetByEmail(context.Background(), user.Email)
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if fetched.ID != user.ID || fetched.Email != user.Email ||
		fetched.PasswordHash != user.PasswordHash || fetched.IsActive {
		t.Errorf("Fetched user mismatch: got %+v, want %+v", fetched, user)
	}
	if !fetched.ExpiresAt.Equal(user.ExpiresAt) {
		t.Errorf("expires_at = %v, want %v", fetched.ExpiresAt, user.ExpiresAt)
	}
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	repo := NewUserRepository(conn)
	if err := repo.Create(context.Background(), testUser("my@email.com")); err != nil {
		t.Fatalf("Create: %v", err)
	}
	// email is the primary key; the second insert fails at the store,
	// there is no dedup logic above it
	if err := repo.Create(context.Background(), testUser("my@email.com")); err == nil {
		t.Error("Expected duplicate insert to fail")
	}
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	repo := NewUserRepository(conn)
	_, err := repo.GetByEmail(context.Background(), "nobody@email.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepository_UpdateStatus(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	repo := NewUserRepository(conn)
	user := testUser("my@email.com")
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	newExpiry := user.ExpiresAt.Add(models.SessionTTL)
	if err := repo.UpdateStatus(context.Background(), user.Email, newExpiry, true); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	fetched, err := repo.GetByEmail(context.Background(), user.Email)
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if !fetched.IsActive {
		t.Error("Expected user active after status update")
	}
	if !fetched.ExpiresAt.Equal(newExpiry) {
		t.Errorf("expires_at = %v, want %v", fetched.ExpiresAt, newExpiry)
	}

	if err := repo.UpdateStatus(context.Background(), "nobody@email.com", newExpiry, true); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound for unknown email, got %v", err)
	}
}

func TestUserRepository_Inactivate(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	repo := NewUserRepository(conn)
	user := testUser("my@email.com")
	user.IsActive = true
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Inactivate(context.Background(), user.Email); err != nil {
		t.Fatalf("Inactivate: %v", err)
	}

	fetched, err := repo.GetByEmail(context.Background(), user.Email)
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if fetched.IsActive {
		t.Error("Expected user inactive after logout")
	}
	// logout leaves the expiry untouched
	if !fetched.ExpiresAt.Equal(user.ExpiresAt) {
		t.Errorf("expires_at changed on inactivate: %v, want %v", fetched.ExpiresAt, user.ExpiresAt)
	}

	if err := repo.Inactivate(context.Background(), "nobody@email.com"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound for unknown email, got %v", err)
	}
}
