package handler

import (
	"net/http"

	"github.com/natanielandrade/backend/internal/service"
)

// StatsHandler serves the admin dashboard aggregates.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a StatsHandler with the given service.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStats handles GET /api/admin/stats.
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.GetStats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
