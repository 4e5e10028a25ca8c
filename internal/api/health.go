package api

import (
	"net/http"
	"time"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "GlitzME Rentals"

type healthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Timestamp time.Time `json:"timestamp"`
}

// Health handles GET /api/health.
func Health(now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, healthResponse{
			Status:    "healthy",
			Service:   ServiceName,
			Timestamp: now(),
		})
	}
}
