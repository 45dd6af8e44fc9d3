package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/belagoesr/todo-server/internal/auth"
	"github.com/belagoesr/todo-server/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func (h *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	if request.Method != http.MethodPost {
		sendError(writer, "Use POST method for login", http.StatusMethodNotAllowed)
		return
	}

	clientIP := request.RemoteAddr
	if h.RateLimiter != nil && !h.RateLimiter.Allow(clientIP) {
		log.Printf("Rate limit exceeded for IP: %s", clientIP)
		sendError(writer, "Too many login attempts. Please try again later.", http.StatusTooManyRequests)
		return
	}

	var input credentials
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		log.Printf("Error decoding JSON: %v", err)
		sendError(writer, "Bad JSON", http.StatusBadRequest)
		return
	}
	if !auth.IsValidCredentials(input.Email, input.Password) {
		log.Printf("Invalid email or password format on login")
		sendError(writer, "Invalid email or password format", http.StatusBadRequest)
		return
	}

	user, err := h.UserRepo.GetByEmail(request.Context(), input.Email)
	if err != nil {
		log.Printf("Lookup failed for email %s: %v", input.Email, err)
		writer.WriteHeader(http.StatusNoContent)
		return
	}
	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		log.Printf("Invalid password for email: %s", input.Email)
		writer.WriteHeader(http.StatusNoContent)
		return
	}

	// Every successful login refreshes the session: expiry moves one
	// day out and the row reactivates. Token and row carry the same
	// expiry.
	expiresAt := h.now().UTC().Add(models.SessionTTL)
	if err := h.UserRepo.UpdateStatus(request.Context(), user.Email, expiresAt, true); err != nil {
		log.Printf("Error refreshing session for %s: %v", user.Email, err)
		sendError(writer, "Cannot refresh session", http.StatusInternalServerError)
		return
	}
	user.ExpiresAt = expiresAt

	tokenString, err := h.Tokens.Issue(user)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		sendError(writer, "Cannot create token", http.StatusInternalServerError)
		return
	}

	log.Printf("User logged in: %s", user.Email)
	sendJSON(writer, http.StatusOK, map[string]any{"token": tokenString})
}
