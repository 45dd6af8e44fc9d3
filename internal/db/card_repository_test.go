package db

import (
	"context"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

func cardItem(id uuid.UUID, title string) map[string]any {
	return map[string]any{
		"id":          id.String(),
		"title":       title,
		"description": "desc",
		"owner":       uuid.New().String(),
		"state":       "Todo",
		"tasks": []any{
			map[string]any{"title": "t1", "is_done": false},
		},
	}
}

func TestCardRepository_PutAndList(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	repo := NewCardRepository(conn)
	id := uuid.New()

	if err := repo.Put(context.Background(), id, cardItem(id, "Card one")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	items, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(items))
	}
	if items[0]["id"] != id.String() || items[0]["title"] != "Card one" {
		t.Errorf("Item round trip mismatch: %+v", items[0])
	}
	// the store hands attributes back untyped; tasks must survive as a
	// list of maps for the adapter to chew on
	tasks, ok := items[0]["tasks"].([]any)
	if !ok || len(tasks) != 1 {
		t.Errorf("Expected tasks list, got %+v", items[0]["tasks"])
	}
}

func TestCardRepository_List_Empty(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	repo := NewCardRepository(conn)
	items, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Expected empty list, got %d items", len(items))
	}
}

func TestCardRepository_Put_DuplicateID(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	repo := NewCardRepository(conn)
	id := uuid.New()
	if err := repo.Put(context.Background(), id, cardItem(id, "Card one")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := repo.Put(context.Background(), id, cardItem(id, "Card two")); err == nil {
		t.Error("Expected duplicate id insert to fail")
	}
}
