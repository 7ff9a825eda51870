package server

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/alstha/portfolio-api/config"
	"github.com/alstha/portfolio-api/internal/auth"
	"github.com/alstha/portfolio-api/internal/db"
	"github.com/alstha/portfolio-api/internal/handlers"
	"github.com/alstha/portfolio-api/internal/services"
	"github.com/alstha/portfolio-api/internal/storage"
	"github.com/alstha/portfolio-api/internal/store"
	"github.com/alstha/portfolio-api/types"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	db         *sql.DB
}

// New constructs a Server with basic middleware and defaults.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	contactRepo := store.NewContactRepository(dbConn)
	feedbackRepo := store.NewFeedbackRepository(dbConn)
	projectRepo := store.NewProjectRepository(dbConn)
	blogRepo := store.NewBlogRepository(dbConn)
	userRepo := store.NewUserRepository(dbConn)

	contactService := services.NewContactService(contactRepo)
	feedbackService := services.NewFeedbackService(feedbackRepo)
	projectService := services.NewProjectService(projectRepo)
	blogService := services.NewBlogService(blogRepo)
	userService := services.NewUserService(userRepo)

	mediaStorage, err := openStorage(ctx, cfg.Storage)
	if err != nil {
		_ = dbConn.Close()
		return nil, err
	}

	insiderOnly := auth.RequireRole(types.RoleInsider)

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
	)
	router.Get("/healthz", handlers.Healthz)
	router.Route("/auth", func(r chi.Router) {
		handlers.AuthRouter(r, cfg)
	})
	router.Route("/contact", func(r chi.Router) {
		handlers.ContactRouter(r, contactService, insiderOnly)
	})
	router.Route("/feedback", func(r chi.Router) {
		handlers.FeedbackRouter(r, feedbackService, insiderOnly)
	})
	router.Route("/projects", func(r chi.Router) {
		handlers.ProjectRouter(r, projectService, insiderOnly)
	})
	router.Route("/blogs", func(r chi.Router) {
		handlers.BlogRouter(r, blogService, insiderOnly)
	})
	router.Route("/users", func(r chi.Router) {
		handlers.UserRouter(r, userService, insiderOnly)
	})
	router.Route("/uploads", func(r chi.Router) {
		handlers.UploadRouter(r, mediaStorage, insiderOnly)
	})
	// The admin panel's debug view reads the same contact list.
	router.With(insiderOnly).Get("/debug/contacts", handlers.NewContactHandler(contactService).ListContacts)

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		db:         dbConn,
	}, nil
}

// openStorage builds the media storage for the configured backend.
// Returns nil when no backend is configured; the server runs without
// uploads in that case.
func openStorage(ctx context.Context, cfg config.StorageConfig) (*storage.Storage, error) {
	switch cfg.Backend {
	case "":
		log.Println("no storage backend configured; uploads disabled")
		return nil, nil
	case "minio":
		client, err := storage.NewMinioClient(cfg.Minio)
		if err != nil {
			return nil, err
		}
		st := storage.NewStorage(client)
		if err := st.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return st, nil
	case "gcs":
		client, err := storage.NewGCSClient(ctx, cfg.GCS)
		if err != nil {
			return nil, err
		}
		st := storage.NewStorage(client)
		if err := st.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return st, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown() error {
	if s.db != nil {
		_ = s.db.Close()
	}
	return s.httpServer.Close()
}
