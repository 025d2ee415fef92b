package api

import (
	"net/http"
	"time"

	analysisapi "github.com/avkozlov/analyzer-backend/internal/api/analysis"
	"github.com/avkozlov/analyzer-backend/internal/api/docs"
	"github.com/avkozlov/analyzer-backend/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// HealthInfo describes the running configuration reported by /api/health.
type HealthInfo struct {
	Model  string   `json:"model"`
	Agents []string `json:"agents"`
}

// SetupRouter creates and configures the HTTP router
func SetupRouter(analysisHandler *analysisapi.Handler, health HealthInfo, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)                  // Recover from panics
	r.Use(chimiddleware.RequestID)                  // Add request ID
	r.Use(middleware.Logger(logger))                // Log requests
	r.Use(middleware.CORS)                          // Handle CORS
	r.Use(chimiddleware.Timeout(300 * time.Second)) // Model calls are slow

	// Health check endpoints. Neither depends on the pipeline.
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})
	r.Get("/api/health", healthHandler(health))

	// Swagger documentation endpoints
	docs.RegisterRoutes(r)

	// Register routes
	analysisapi.RegisterRoutes(r, analysisHandler)

	return r
}
