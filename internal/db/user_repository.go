package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/belagoesr/todo-server/internal/models"
)

// ErrUserNotFound is returned when no auth_user row matches the email.
var ErrUserNotFound = errors.New("user not found")

// UserStore covers every auth_user operation the service performs:
// signup insert, per-request lookup, login refresh, logout deactivate.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateStatus(ctx context.Context, email string, expiresAt time.Time, isActive bool) error
	Inactivate(ctx context.Context, email string) error
}

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `INSERT INTO auth_user (email, id, password, expires_at, is_active)
	 VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(
		ctx, query, user.Email, user.ID, user.PasswordHash, user.ExpiresAt, user.IsActive)
	return err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT email, id, password, expires_at, is_active FROM auth_user WHERE email = $1`
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.Email, &user.ID, &user.PasswordHash, &user.ExpiresAt, &user.IsActive,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateStatus rewrites the session columns. Login uses it to push
// expires_at one day out and reactivate; concurrent writers race
// last-write-wins, there is no version check.
func (r *UserRepository) UpdateStatus(ctx context.Context, email string, expiresAt time.Time, isActive bool) error {
	query := `UPDATE auth_user SET expires_at = $1, is_active = $2 WHERE email = $3`
	result, err := r.db.ExecContext(ctx, query, expiresAt, isActive, email)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// Inactivate flips is_active off, leaving expires_at untouched.
func (r *UserRepository) Inactivate(ctx context.Context, email string) error {
	query := `UPDATE auth_user SET is_active = $1 WHERE email = $2`
	result, err := r.db.ExecContext(ctx, query, false, email)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func requireRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}
