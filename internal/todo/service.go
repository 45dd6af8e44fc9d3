// Package todo implements the card create/list use cases on top of
// the card store and the record codec.
package todo

import (
	"context"

	"github.com/belagoesr/todo-server/internal/adapter"
	"github.com/belagoesr/todo-server/internal/db"
	"github.com/belagoesr/todo-server/internal/models"
	"github.com/google/uuid"
)

type Service struct {
	Cards db.CardStore
	Codec *adapter.Codec

	// NewID is injectable so tests can fix identifiers.
	NewID func() uuid.UUID
}

func NewService(cards db.CardStore) *Service {
	return &Service{
		Cards: cards,
		Codec: adapter.NewCodec(),
		NewID: uuid.New,
	}
}

// Create assigns a fresh id, encodes the card and writes it. Storage
// failures come straight back; there is no retry.
func (s *Service) Create(ctx context.Context, card models.TodoCard) (uuid.UUID, error) {
	id := s.NewID()
	if err := s.Cards.Put(ctx, id, s.Codec.Encode(card, id)); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// List fetches every stored item and decodes the batch, silently
// dropping items the codec rejects.
func (s *Service) List(ctx context.Context) ([]models.TodoCard, error) {
	items, err := s.Cards.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.Codec.DecodeMany(items), nil
}
