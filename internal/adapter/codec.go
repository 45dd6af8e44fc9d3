// Package adapter converts between the wire-format TodoCard and the
// loosely-typed attribute item the card store persists.
package adapter

import (
	"errors"
	"log"

	"github.com/belagoesr/todo-server/internal/models"
	"github.com/google/uuid"
)

var (
	ErrBadID    = errors.New("item has no parseable id")
	ErrBadOwner = errors.New("item has no parseable owner")
	ErrBadTask  = errors.New("item has a task missing title or is_done")
)

// Codec maps cards to attribute items and back. Encoding is total;
// decoding tolerates malformed items: an unparseable id or owner drops
// the item, an unknown state tag degrades to Todo.
//
// DropBrokenTasks controls what happens when a task entry is missing
// its title or is_done attribute: true (the default wiring) drops just
// that task, false drops the whole item.
type Codec struct {
	DropBrokenTasks bool
}

func NewCodec() *Codec {
	return &Codec{DropBrokenTasks: true}
}

// Encode assigns id to the card and lays it out as stored attributes:
// id, title, description, owner and state as strings, tasks as a list
// of {title, is_done} maps.
func (c *Codec) Encode(card models.TodoCard, id uuid.UUID) map[string]any {
	tasks := make([]any, 0, len(card.Tasks))
	for _, task := range card.Tasks {
		tasks = append(tasks, map[string]any{
			"title":   task.Title,
			"is_done": task.IsDone,
		})
	}
	return map[string]any{
		"id":          id.String(),
		"title":       card.Title,
		"description": card.Description,
		"owner":       card.Owner.String(),
		"state":       string(card.State),
		"tasks":       tasks,
	}
}

// Decode rebuilds a TodoCard from stored attributes. The returned
// error means the whole item is unusable and should be skipped by the
// caller; it is never fatal to a batch.
func (c *Codec) Decode(item map[string]any) (models.TodoCard, error) {
	id, err := parseUUID(item["id"])
	if err != nil {
		return models.TodoCard{}, ErrBadID
	}
	owner, err := parseUUID(item["owner"])
	if err != nil {
		return models.TodoCard{}, ErrBadOwner
	}

	card := models.TodoCard{
		ID:          &id,
		Title:       stringAttr(item["title"]),
		Description: stringAttr(item["description"]),
		Owner:       owner,
		State:       parseState(item["state"]),
		Tasks:       []models.Task{},
	}

	rawTasks, _ := item["tasks"].([]any)
	for _, raw := range rawTasks {
		task, ok := parseTask(raw)
		if !ok {
			if c.DropBrokenTasks {
				continue
			}
			return models.TodoCard{}, ErrBadTask
		}
		card.Tasks = append(card.Tasks, task)
	}
	return card, nil
}

// DecodeMany decodes a batch in order, skipping items Decode rejects.
// A bad item never fails the batch.
func (c *Codec) DecodeMany(items []map[string]any) []models.TodoCard {
	cards := make([]models.TodoCard, 0, len(items))
	for _, item := range items {
		card, err := c.Decode(item)
		if err != nil {
			log.Printf("Skipping undecodable card item: %v", err)
			continue
		}
		cards = append(cards, card)
	}
	return cards
}

func parseUUID(attr any) (uuid.UUID, error) {
	s, ok := attr.(string)
	if !ok {
		return uuid.Nil, errors.New("attribute is not a string")
	}
	return uuid.Parse(s)
}

func stringAttr(attr any) string {
	s, _ := attr.(string)
	return s
}

// parseState matches the textual tag case-sensitively; anything else,
// including a missing attribute, degrades to Todo.
func parseState(attr any) models.State {
	switch stringAttr(attr) {
	case string(models.StateDoing):
		return models.StateDoing
	case string(models.StateDone):
		return models.StateDone
	default:
		return models.StateTodo
	}
}

func parseTask(raw any) (models.Task, bool) {
	attrs, ok := raw.(map[string]any)
	if !ok {
		return models.Task{}, false
	}
	title, hasTitle := attrs["title"].(string)
	isDone, hasDone := attrs["is_done"].(bool)
	if !hasTitle || !hasDone {
		return models.Task{}, false
	}
	return models.Task{Title: title, IsDone: isDone}, true
}
