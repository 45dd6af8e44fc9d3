package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/belagoesr/todo-server/internal/auth"
	"github.com/belagoesr/todo-server/internal/db"
	"github.com/belagoesr/todo-server/internal/handlers"
	"github.com/belagoesr/todo-server/internal/todo"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Fatalf("Error loading .env file: %v", err)
		}
	} else {
		log.Println(".env file not found, relying on environment variables")
	}

	validateEnv()

	handler := initHandlers()
	initRoutes(handler)

	server := initServer()
	startServer(server)
}

func validateEnv() {
	requiredEnvVars := []string{"SERVER_PORT"}
	if storageBackend() == "postgres" {
		requiredEnvVars = append(requiredEnvVars,
			"POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
			"POSTGRES_HOST", "POSTGRES_PORT")
	}
	for _, env := range requiredEnvVars {
		if os.Getenv(env) == "" {
			log.Fatalf("Environment variable %s must be set", env)
		}
	}
	if len(os.Getenv("JWT_SECRET")) < 32 {
		log.Fatal("JWT_SECRET must be at least 32 characters")
	}
}

func storageBackend() string {
	backend := os.Getenv("STORAGE_BACKEND")
	if backend == "" {
		return "postgres"
	}
	return backend
}

func initDB() *sql.DB {
	user := os.Getenv("POSTGRES_USER")
	password := os.Getenv("POSTGRES_PASSWORD")
	dbname := os.Getenv("POSTGRES_DB")
	port := os.Getenv("POSTGRES_PORT")
	host := os.Getenv("POSTGRES_HOST")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port)

	dbConn, err := db.Connect("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.EnsureSchema(context.Background(), dbConn); err != nil {
		log.Fatalf("Failed to provision schema: %v", err)
	}
	return dbConn
}

func initHandlers() *handlers.Handler {
	var (
		users db.UserStore
		cards db.CardStore
		ready func(ctx context.Context) error
	)

	switch backend := storageBackend(); backend {
	case "postgres":
		dbConn := initDB()
		users = db.NewUserRepository(dbConn)
		cards = db.NewCardRepository(dbConn)
		ready = dbConn.PingContext
	case "memory":
		log.Println("Using in-memory storage backend")
		users = db.NewMemoryUserStore()
		cards = db.NewMemoryCardStore()
	default:
		log.Fatalf("Unknown STORAGE_BACKEND %q", backend)
	}

	tokens := auth.NewTokenService([]byte(os.Getenv("JWT_SECRET")))
	return &handlers.Handler{
		UserRepo: users,
		Todos:    todo.NewService(cards),
		Tokens:   tokens,
		Guard:    auth.NewSessionGuard(tokens, users),
		// allow max 5 auth attempts per 15 minutes from the same IP
		RateLimiter: handlers.NewRateLimiter(5, 15*time.Minute),
		Hub:         handlers.NewHub(),
		Ready:       ready,
	}
}

func initRoutes(handler *handlers.Handler) {
	http.HandleFunc("/api/create", handler.CreateTodo)
	http.HandleFunc("/api/index", handler.IndexTodo)
	http.HandleFunc("/auth/signup", handler.SignUp)
	http.HandleFunc("/auth/login", handler.Login)
	http.HandleFunc("/auth/logout", handler.Logout)
	http.HandleFunc("/ping", handler.Ping)
	http.HandleFunc("/readiness", handler.Readiness)
	http.HandleFunc("/ws", handler.HandleWebSocket)
}

func initServer() *http.Server {
	return &http.Server{
		Addr: ":" + os.Getenv("SERVER_PORT"),
	}
}

func startServer(server *http.Server) {
	log.Printf("Starting server on :%s", os.Getenv("SERVER_PORT"))

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped")
}
