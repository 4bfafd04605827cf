package server

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexkim/job-recommender/internal/catalog"
	"github.com/alexkim/job-recommender/internal/config"
	"github.com/alexkim/job-recommender/internal/db"
	"github.com/alexkim/job-recommender/internal/model"
	"github.com/alexkim/job-recommender/internal/recommend"
	"github.com/go-playground/validator/v10"
)

// Server owns the HTTP server and the request-scoped collaborators: the
// account store, session service, user service and the scorer. The model
// artifact and catalog inside the scorer are read-only after New returns.
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	sessions    *SessionService
	userService *UserService
	scorer      *recommend.Scorer
	templates   map[string]*template.Template
	validator   *validator.Validate
}

// New creates a server from configuration. Model loading, catalog validation
// and the database connection all happen here so a broken deployment fails
// before the listener binds.
func New(cfg *config.ServerConfig) (*Server, error) {
	artifact, err := model.Load(cfg.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load model artifact: %w", err)
	}

	cat := catalog.Default()
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid job catalog: %w", err)
	}

	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(context.Background()); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}

	sessionConfig, err := config.NewSessionConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create session config: %w", err)
	}

	templates, err := parseTemplates()
	if err != nil {
		database.Close()
		return nil, err
	}

	s := &Server{
		db:          database,
		sessions:    NewSessionService(sessionConfig),
		userService: NewUserService(database, passwordConfig),
		scorer:      recommend.NewScorer(artifact, cat),
		templates:   templates,
		validator:   validator.New(),
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.routes()),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes wires the HTTP surface.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /register", s.handleRegisterForm)
	mux.HandleFunc("POST /register", s.handleRegister)
	mux.HandleFunc("GET /login", s.handleLoginForm)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("GET /logout", s.handleLogout)

	mux.HandleFunc("GET /home", s.requireAuth(s.handleHomeForm))
	mux.HandleFunc("POST /home", s.requireAuth(s.handleHome))
	mux.HandleFunc("GET /recommendation", s.requireAuth(s.handleRecommendation))

	mux.HandleFunc("GET /health", s.handleHealth)

	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}
