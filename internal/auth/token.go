package auth

import (
	"errors"
	"time"

	"github.com/belagoesr/todo-server/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrTokenMalformed covers any token whose signature or shape does not
// verify. It is distinct from ErrSessionRejected: a malformed token is
// broken client state, a rejected session just needs a re-login.
var ErrTokenMalformed = errors.New("malformed session token")

// SessionToken is the decoded form of the signed credential the client
// holds between requests. Nothing server-side is kept for it beyond
// the user row's expires_at/is_active.
type SessionToken struct {
	ID        uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService signs and verifies session tokens with a process-wide
// HS256 secret. The clock is injectable so tests can pin time.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

func NewTokenService(secret []byte) *TokenService {
	return &TokenService{secret: secret, now: time.Now}
}

// NewTokenServiceAt wires a fixed clock, for tests.
func NewTokenServiceAt(secret []byte, now func() time.Time) *TokenService {
	return &TokenService{secret: secret, now: now}
}

// Issue embeds the user's id, email and expiry into a signed token.
func (s *TokenService) Issue(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":         user.ID.String(),
		"email":      user.Email,
		"expires_at": user.ExpiresAt.UTC().Unix(),
	})
	return token.SignedString(s.secret)
}

// Decode verifies the signature and reconstructs the SessionToken.
// Any signature or shape problem comes back as ErrTokenMalformed.
func (s *TokenService) Decode(raw string) (*SessionToken, error) {
	token, err := jwt.Parse(raw, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrTokenMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenMalformed
	}
	rawID, _ := claims["id"].(string)
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, ErrTokenMalformed
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return nil, ErrTokenMalformed
	}
	expiresAt, ok := claims["expires_at"].(float64)
	if !ok {
		return nil, ErrTokenMalformed
	}

	return &SessionToken{
		ID:        id,
		Email:     email,
		ExpiresAt: time.Unix(int64(expiresAt), 0).UTC(),
	}, nil
}

// IsFresh reports whether expiresAt is still in the future. UTC
// wall-clock comparison, no grace period.
func (s *TokenService) IsFresh(expiresAt time.Time) bool {
	return expiresAt.After(s.now().UTC())
}
