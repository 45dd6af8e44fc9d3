package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/belagoesr/todo-server/internal/auth"
	"github.com/belagoesr/todo-server/internal/db"
	"github.com/belagoesr/todo-server/internal/todo"
)

type Handler struct {
	UserRepo    db.UserStore
	Todos       *todo.Service
	Tokens      *auth.TokenService
	Guard       *auth.SessionGuard
	RateLimiter *RateLimiter
	Hub         *Hub

	// Ready probes the backing store for the readiness endpoint; nil
	// means always ready (the in-memory backend).
	Ready func(ctx context.Context) error

	// Now is injectable so tests can pin session expiry times.
	Now func() time.Time
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

type errorResponse struct {
	Error string `json:"error"`
}

func sendError(writer http.ResponseWriter, message string, status int) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	json.NewEncoder(writer).Encode(errorResponse{Error: message})
}

func sendJSON(writer http.ResponseWriter, status int, body any) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	json.NewEncoder(writer).Encode(body)
}

type RateLimiter struct {
	attempts map[string]int
	limit    int
	mutex    sync.Mutex
	window   time.Duration
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		attempts: make(map[string]int),
		limit:    limit,
		window:   window,
	}
	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	count, exists := rl.attempts[ip]
	if !exists {
		rl.attempts[ip] = 1
		return true
	}
	if count >= rl.limit {
		return false
	}
	rl.attempts[ip]++
	return true
}

// reset the attempts map every window duration
func (rl *RateLimiter) cleanup() {
	for {
		time.Sleep(rl.window)
		rl.mutex.Lock()
		rl.attempts = make(map[string]int)
		rl.mutex.Unlock()
	}
}
