package auth

import (
	"context"
	"errors"

	"github.com/belagoesr/todo-server/internal/models"
)

var (
	// ErrNoToken means the request carried no x-auth header at all.
	ErrNoToken = errors.New("missing session token")

	// ErrSessionRejected means the token verified but the stored user
	// no longer backs it: inactive, expired, identity mismatch, or the
	// user cannot be found. The client needs to log in again.
	ErrSessionRejected = errors.New("session rejected")
)

// UserFinder is the slice of the user store the guard needs.
type UserFinder interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// SessionGuard decides whether a request's token is still backed by a
// live session. The user row is fetched fresh on every check; there is
// no cache, trading a round trip for never acting on stale state.
type SessionGuard struct {
	Tokens *TokenService
	Users  UserFinder
}

func NewSessionGuard(tokens *TokenService, users UserFinder) *SessionGuard {
	return &SessionGuard{Tokens: tokens, Users: users}
}

// Check walks the request through the session states: no token and
// undecodable token reject immediately; a decoded token is accepted
// only when the stored user is active, its expiry is still in the
// future, and its id matches the token's. Terminal either way; a
// rejected request is retried by the client with a fresh login, never
// here.
func (g *SessionGuard) Check(ctx context.Context, raw string) (*SessionToken, error) {
	if raw == "" {
		return nil, ErrNoToken
	}
	token, err := g.Tokens.Decode(raw)
	if err != nil {
		return nil, err
	}
	if !g.Tokens.IsFresh(token.ExpiresAt) {
		return nil, ErrSessionRejected
	}

	user, err := g.Users.GetByEmail(ctx, token.Email)
	if err != nil {
		return nil, ErrSessionRejected
	}
	if !user.IsActive || !g.Tokens.IsFresh(user.ExpiresAt) || user.ID != token.ID {
		return nil, ErrSessionRejected
	}
	return token, nil
}
