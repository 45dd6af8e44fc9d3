package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/belagoesr/todo-server/internal/auth"
	"github.com/belagoesr/todo-server/internal/db"
	"github.com/belagoesr/todo-server/internal/models"
	"github.com/belagoesr/todo-server/internal/todo"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	testEmail    = "test@example.com"
	testPassword = "My cr4zy P@ssw0rd My cr4zy P@ssw0rd"
)

var testSecret = []byte("test-secret-32-bytes-long-1234567890")

type fixture struct {
	handler *Handler
	users   *db.MemoryUserStore
	cards   *db.MemoryCardStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	users := db.NewMemoryUserStore()
	cards := db.NewMemoryCardStore()
	tokens := auth.NewTokenService(testSecret)

	return &fixture{
		handler: &Handler{
			UserRepo:    users,
			Todos:       todo.NewService(cards),
			Tokens:      tokens,
			Guard:       auth.NewSessionGuard(tokens, users),
			RateLimiter: NewRateLimiter(100, time.Minute),
			Hub:         NewHub(),
		},
		users: users,
		cards: cards,
	}
}

// addUser inserts an active user with a bcrypt hash of password and a
// fresh expiry, returning the stored row.
func (f *fixture) addUser(t *testing.T, email, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	user := &models.User{
		Email:        email,
		ID:           uuid.New(),
		PasswordHash: string(hash),
		ExpiresAt:    time.Now().UTC().Add(models.SessionTTL),
		IsActive:     true,
	}
	if err := f.users.Create(context.Background(), user); err != nil {
		t.Fatalf("Create user: %v", err)
	}
	return user
}

func (f *fixture) tokenFor(t *testing.T, user *models.User) string {
	t.Helper()
	raw, err := f.handler.Tokens.Issue(user)
	if err != nil {
		t.Fatalf("Issue token: %v", err)
	}
	return raw
}
