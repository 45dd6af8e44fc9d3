package db

import (
	"context"
	"database/sql"
)

func Connect(driverName, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	return db, nil
}

// EnsureSchema provisions the auth_user and todo_cards tables if they
// are missing. Idempotent; ran once at startup.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS auth_user (
			email TEXT PRIMARY KEY,
			id UUID NOT NULL,
			password TEXT NOT NULL,
			expires_at TIMESTAMP NOT NULL,
			is_active BOOLEAN NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS todo_cards (
			id UUID PRIMARY KEY,
			item JSONB NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
