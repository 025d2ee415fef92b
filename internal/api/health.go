package api

import (
	"net/http"

	"github.com/avkozlov/analyzer-backend/internal/pkg/response"
)

type healthResponse struct {
	Status       string   `json:"status"`
	Model        string   `json:"model"`
	Architecture string   `json:"architecture"`
	Agents       []string `json:"agents"`
}

// healthHandler reports the configured model and pipeline agents.
func healthHandler(info HealthInfo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, healthResponse{
			Status:       "healthy",
			Model:        info.Model,
			Architecture: "agent-based",
			Agents:       info.Agents,
		})
	}
}
