// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/okian/volunteer-match/internal/adapters/repository"
	"github.com/okian/volunteer-match/internal/domain/matching"
	"github.com/okian/volunteer-match/internal/domain/model"
	"github.com/okian/volunteer-match/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	MatchEventsForVolunteer(ctx context.Context, volunteerID string, limit int) ([]types.EventMatch, error)
	MatchVolunteersForEvent(ctx context.Context, eventID string, limit int) ([]types.VolunteerMatch, error)
	UrgentAlerts(ctx context.Context) []types.Alert
	MatchingStats(ctx context.Context) types.Stats
	CalculateScore(ctx context.Context, volunteerID, eventID string) (types.ScoreResult, error)
	RegisterVolunteer(ctx context.Context, eventID, volunteerID string) (model.Event, error)
}

// Server wires HTTP routes for the matching API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	matchingHandler *MatchingHandler
	eventsHandler   *EventsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, defaultLimit, maxLimit int) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(deps),
		matchingHandler: NewMatchingHandler(deps, defaultLimit, maxLimit),
		eventsHandler:   NewEventsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.Handle("GET /metrics", s.healthHandler.MetricsHandler())
	mux.HandleFunc("GET /matching/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("GET /matching/alerts", MetricsMiddleware(s.statsHandler.HandleAlerts, "alerts"))
	mux.HandleFunc("GET /matching/events/{volunteerId}", MetricsMiddleware(s.matchingHandler.HandleMatchEvents, "match_events"))
	mux.HandleFunc("GET /matching/volunteers/{eventId}", MetricsMiddleware(s.matchingHandler.HandleMatchVolunteers, "match_volunteers"))
	mux.HandleFunc("POST /matching/calculate-score", MetricsMiddleware(s.matchingHandler.HandleCalculateScore, "calculate_score"))
	mux.HandleFunc("POST /events/{eventId}/register", MetricsMiddleware(s.eventsHandler.HandleRegister, "register"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeLookupError maps a service error to 404 or 500.
func writeLookupError(w http.ResponseWriter, op string, err error) {
	if isNotFound(err) {
		writeError(w, http.StatusNotFound, "not_found", wrap(op, err))
		return
	}
	writeError(w, http.StatusInternalServerError, "internal_error", wrap(op, err))
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound) || errors.Is(err, matching.ErrNotFound)
}

func wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// parseLimit reads ?limit, falling back to def when absent.
func parseLimit(r *http.Request, def, maxLimit int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: limit must be a positive integer", ErrBadRequest)
	}
	if n > maxLimit {
		return 0, fmt.Errorf("%w: %d > %d", ErrLimitExceeded, n, maxLimit)
	}
	return n, nil
}
