package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/belagoesr/todo-server/internal/models"
)

func (h *Handler) CreateTodo(writer http.ResponseWriter, request *http.Request) {
	if request.Method != http.MethodPost {
		sendError(writer, "Use POST method to create a todo card", http.StatusMethodNotAllowed)
		return
	}

	var card models.TodoCard
	if err := json.NewDecoder(request.Body).Decode(&card); err != nil {
		log.Printf("Error decoding todo card: %v", err)
		sendError(writer, "Bad JSON", http.StatusBadRequest)
		return
	}

	id, err := h.Todos.Create(request.Context(), card)
	if err != nil {
		log.Printf("Error creating todo card: %v", err)
		sendError(writer, "Failed to create todo card", http.StatusBadRequest)
		return
	}

	if h.Hub != nil {
		h.Hub.BroadcastCardCreated(id, card.Title)
	}
	sendJSON(writer, http.StatusCreated, models.TodoIDResponse{ID: id})
}

func (h *Handler) IndexTodo(writer http.ResponseWriter, request *http.Request) {
	if request.Method != http.MethodGet {
		sendError(writer, "Use GET method to list todo cards", http.StatusMethodNotAllowed)
		return
	}

	cards, err := h.Todos.List(request.Context())
	if err != nil {
		log.Printf("Error listing todo cards: %v", err)
		sendError(writer, "Failed to read todo cards", http.StatusInternalServerError)
		return
	}

	sendJSON(writer, http.StatusOK, models.TodoCardsResponse{Cards: cards})
}
