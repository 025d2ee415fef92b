package analysis

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers analysis routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/analyze", h.AnalyzeProblem)
	r.Post("/api/leetcode-solutions", h.GenerateSolutions)
}
