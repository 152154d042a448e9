package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"rolfe.dev/internal/config"
	"rolfe.dev/internal/services"
	"rolfe.dev/internal/views"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config) (http.Handler, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	// Initialize services
	projectService := services.NewProjectService(cfg.Portfolio.Projects)
	renderer, err := views.New(cfg.Portfolio, projectService)
	if err != nil {
		return nil, fmt.Errorf("init views: %w", err)
	}

	// The shell never changes while the process runs.
	var shell bytes.Buffer
	if err := renderer.RenderShell(&shell, renderer.Shell(cfg.SiteTitle, cfg.StaticPrefix)); err != nil {
		return nil, fmt.Errorf("render shell: %w", err)
	}

	// Initialize handlers
	projectHandler := NewProjectHandler(projectService)
	routeHandler := NewRouteHandler(projectService)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))

		// Project endpoints
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{slug}", projectHandler.GetProject)

		// Fragment parsing
		r.Get("/route", routeHandler.ParseFragment)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Static files
	fileServer := http.FileServer(http.Dir(cfg.StaticDir))
	r.Handle(cfg.StaticPrefix+"/*", http.StripPrefix(cfg.StaticPrefix, fileServer))

	// Serve the shell at root; the browser renders the routed view
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write(shell.Bytes()); err != nil {
			log.Printf("Error writing shell: %v", err)
		}
	})

	return r, nil
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON: %v", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
