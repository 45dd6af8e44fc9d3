package db

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/belagoesr/todo-server/internal/models"
	"github.com/google/uuid"
)

// In-memory implementations of UserStore and CardStore. Selected by
// STORAGE_BACKEND=memory for local runs, and used directly by handler
// tests. Same contracts as the postgres implementations.

type MemoryUserStore struct {
	users map[string]*models.User
	mutex sync.Mutex

	// CreateErr/GetErr let tests force storage failures.
	CreateErr error
	GetErr    error
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]*models.User)}
}

func (s *MemoryUserStore) Create(ctx context.Context, user *models.User) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.CreateErr != nil {
		return s.CreateErr
	}
	if _, exists := s.users[user.Email]; exists {
		return errors.New("email exists")
	}
	clone := *user
	s.users[user.Email] = &clone
	return nil
}

func (s *MemoryUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.GetErr != nil {
		return nil, s.GetErr
	}
	user, exists := s.users[email]
	if !exists {
		return nil, ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (s *MemoryUserStore) UpdateStatus(ctx context.Context, email string, expiresAt time.Time, isActive bool) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	user, exists := s.users[email]
	if !exists {
		return ErrUserNotFound
	}
	user.ExpiresAt = expiresAt
	user.IsActive = isActive
	return nil
}

func (s *MemoryUserStore) Inactivate(ctx context.Context, email string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	user, exists := s.users[email]
	if !exists {
		return ErrUserNotFound
	}
	user.IsActive = false
	return nil
}

// MemoryCardStore keeps items in insertion order so listings are
// stable without a database to sort for us.
type MemoryCardStore struct {
	items map[uuid.UUID]map[string]any
	order []uuid.UUID
	mutex sync.Mutex

	PutErr  error
	ListErr error
}

func NewMemoryCardStore() *MemoryCardStore {
	return &MemoryCardStore{items: make(map[uuid.UUID]map[string]any)}
}

func (s *MemoryCardStore) Put(ctx context.Context, id uuid.UUID, item map[string]any) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.PutErr != nil {
		return s.PutErr
	}
	if _, exists := s.items[id]; !exists {
		s.order = append(s.order, id)
	}
	s.items[id] = item
	return nil
}

func (s *MemoryCardStore) List(ctx context.Context) ([]map[string]any, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.ListErr != nil {
		return nil, s.ListErr
	}
	items := make([]map[string]any, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, s.items[id])
	}
	return items, nil
}
