package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/belagoesr/todo-server/internal/auth"
)

// Logout deactivates the session named by the x-auth token. Malformed
// client state (bad email, missing or undecodable token) is 400; a
// well-formed token whose session is stale or mismatched is 401, the
// signal to log in again.
func (h *Handler) Logout(writer http.ResponseWriter, request *http.Request) {
	if request.Method != http.MethodDelete {
		sendError(writer, "Use DELETE method for logout", http.StatusMethodNotAllowed)
		return
	}

	var input struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		log.Printf("Error decoding JSON: %v", err)
		sendError(writer, "Bad JSON", http.StatusBadRequest)
		return
	}
	if !auth.IsValidEmail(input.Email) {
		log.Printf("Invalid email format on logout")
		sendError(writer, "Invalid email", http.StatusBadRequest)
		return
	}

	token, err := h.Guard.Check(request.Context(), request.Header.Get("x-auth"))
	switch {
	case err == nil:
	case errors.Is(err, auth.ErrNoToken), errors.Is(err, auth.ErrTokenMalformed):
		sendError(writer, "Missing or malformed token", http.StatusBadRequest)
		return
	default:
		sendError(writer, "Invalid session", http.StatusUnauthorized)
		return
	}

	if token.Email != input.Email {
		log.Printf("Logout email does not match token identity")
		sendError(writer, "Invalid session", http.StatusUnauthorized)
		return
	}

	if err := h.UserRepo.Inactivate(request.Context(), token.Email); err != nil {
		log.Printf("Error inactivating user %s: %v", token.Email, err)
		sendError(writer, "Cannot log out user", http.StatusInternalServerError)
		return
	}

	log.Printf("User logged out: %s", token.Email)
	writer.WriteHeader(http.StatusAccepted)
}
