package api

import (
	"context"
	"net/http"

	"airfield-ops/towerlog/internal/models/dtos"
)

// DashboardService computes the activity snapshot for the handlers
type DashboardService interface {
	GetStats(ctx context.Context) (*dtos.DashboardStats, error)
}

// DashboardHandler handles GET /api/v1/dashboard
func DashboardHandler(svc DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.GetStats(r.Context())
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, stats)
	}
}
