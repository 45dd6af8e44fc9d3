package db

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"
)

// CardStore is the key-value port for todo card items. The store never
// interprets an item beyond its id: it persists and returns the
// attribute map as-is, so decoding stays the adapter's problem.
type CardStore interface {
	Put(ctx context.Context, id uuid.UUID, item map[string]any) error
	List(ctx context.Context) ([]map[string]any, error)
}

type CardRepository struct {
	db *sql.DB
}

func NewCardRepository(db *sql.DB) *CardRepository {
	return &CardRepository{db: db}
}

func (r *CardRepository) Put(ctx context.Context, id uuid.UUID, item map[string]any) error {
	payload, err := json.Marshal(item)
	if err != nil {
		return err
	}
	query := `INSERT INTO todo_cards (id, item) VALUES ($1, $2)`
	_, err = r.db.ExecContext(ctx, query, id, payload)
	return err
}

// List returns every stored item, ordered by id so repeated scans are
// deterministic. Pagination is the database's problem; callers get the
// full set.
func (r *CardRepository) List(ctx context.Context) ([]map[string]any, error) {
	query := `SELECT item FROM todo_cards ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []map[string]any
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var item map[string]any
		if err := json.Unmarshal(payload, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
