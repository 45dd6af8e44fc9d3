package models

import (
	"github.com/google/uuid"
)

type State string

const (
	StateTodo  State = "Todo"
	StateDoing State = "Doing"
	StateDone  State = "Done"
)

// Task is a checklist entry owned by a card. It has no identity of its
// own; it lives and dies with its parent card.
type Task struct {
	Title  string `json:"title"`
	IsDone bool   `json:"is_done"`
}

// TodoCard is the wire entity. ID is nil on create requests and
// assigned server-side, so every read response carries it populated.
type TodoCard struct {
	ID          *uuid.UUID `json:"id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Owner       uuid.UUID  `json:"owner"`
	Tasks       []Task     `json:"tasks"`
	State       State      `json:"state"`
}

type TodoIDResponse struct {
	ID uuid.UUID `json:"id"`
}

type TodoCardsResponse struct {
	Cards []TodoCard `json:"cards"`
}
