package api

import (
	"context"
	"net/http"

	"github.com/okian/volunteer-match/internal/domain/types"
)

// StatsProvider exposes the aggregate views of the matching engine.
type StatsProvider interface {
	UrgentAlerts(ctx context.Context) []types.Alert
	MatchingStats(ctx context.Context) types.Stats
}

// StatsHandler handles stats and alert requests.
type StatsHandler struct {
	provider StatsProvider
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(provider StatsProvider) *StatsHandler {
	return &StatsHandler{provider: provider}
}

// HandleStats handles GET /matching/stats requests.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.provider.MatchingStats(r.Context()))
}

// HandleAlerts handles GET /matching/alerts requests.
func (h *StatsHandler) HandleAlerts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.provider.UrgentAlerts(r.Context()))
}
