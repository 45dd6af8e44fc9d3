package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/belagoesr/todo-server/internal/auth"
	"github.com/belagoesr/todo-server/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) SignUp(writer http.ResponseWriter, request *http.Request) {
	if request.Method != http.MethodPost {
		sendError(writer, "Use POST method for signup", http.StatusMethodNotAllowed)
		return
	}

	clientIP := request.RemoteAddr
	if h.RateLimiter != nil && !h.RateLimiter.Allow(clientIP) {
		log.Printf("Rate limit exceeded for IP: %s", clientIP)
		sendError(writer, "Too many signup attempts. Please try again later.", http.StatusTooManyRequests)
		return
	}

	var input credentials
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		log.Printf("Error decoding JSON: %v", err)
		sendError(writer, "Bad JSON", http.StatusBadRequest)
		return
	}
	if !auth.IsValidCredentials(input.Email, input.Password) {
		log.Printf("Invalid email or password format on signup")
		sendError(writer, "Invalid email or password format", http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		sendError(writer, "Cannot hash password", http.StatusInternalServerError)
		return
	}

	user := models.NewUser(input.Email, string(hash), h.now())
	if err := h.UserRepo.Create(request.Context(), user); err != nil {
		log.Printf("Error saving user %s: %v", input.Email, err)
		sendError(writer, "Cannot save user", http.StatusInternalServerError)
		return
	}

	log.Printf("User registered: %s", user.Email)
	writer.WriteHeader(http.StatusCreated)
}
