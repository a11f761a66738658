package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// MatchingHandler serves ranking and pair score requests.
type MatchingHandler struct {
	deps         Dependencies
	defaultLimit int
	maxLimit     int
}

// NewMatchingHandler creates a new matching handler.
func NewMatchingHandler(deps Dependencies, defaultLimit, maxLimit int) *MatchingHandler {
	return &MatchingHandler{
		deps:         deps,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// HandleMatchEvents handles GET /matching/events/{volunteerId}?limit=N.
func (h *MatchingHandler) HandleMatchEvents(w http.ResponseWriter, r *http.Request) {
	const op = "api.match_events"
	limit, ok := h.limit(w, r, op)
	if !ok {
		return
	}
	matches, err := h.deps.MatchEventsForVolunteer(r.Context(), r.PathValue("volunteerId"), limit)
	if err != nil {
		writeLookupError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, matches)
}

// HandleMatchVolunteers handles GET /matching/volunteers/{eventId}?limit=N.
func (h *MatchingHandler) HandleMatchVolunteers(w http.ResponseWriter, r *http.Request) {
	const op = "api.match_volunteers"
	limit, ok := h.limit(w, r, op)
	if !ok {
		return
	}
	matches, err := h.deps.MatchVolunteersForEvent(r.Context(), r.PathValue("eventId"), limit)
	if err != nil {
		writeLookupError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, matches)
}

type scoreRequest struct {
	VolunteerID string `json:"volunteerId"`
	EventID     string `json:"eventId"`
}

func (req scoreRequest) validate() error {
	switch {
	case strings.TrimSpace(req.VolunteerID) == "":
		return errors.New("missing volunteerId")
	case strings.TrimSpace(req.EventID) == "":
		return errors.New("missing eventId")
	}
	return nil
}

// HandleCalculateScore handles POST /matching/calculate-score.
func (h *MatchingHandler) HandleCalculateScore(w http.ResponseWriter, r *http.Request) {
	const op = "api.calculate_score"
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", wrap(op, fmt.Errorf("%w: %w", ErrBadRequest, err)))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", wrap(op, fmt.Errorf("%w: %w", ErrBadRequest, err)))
		return
	}
	res, err := h.deps.CalculateScore(r.Context(), req.VolunteerID, req.EventID)
	if err != nil {
		writeLookupError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *MatchingHandler) limit(w http.ResponseWriter, r *http.Request, op string) (int, bool) {
	n, err := parseLimit(r, h.defaultLimit, h.maxLimit)
	if err == nil {
		return n, true
	}
	code := "bad_request"
	if errors.Is(err, ErrLimitExceeded) {
		code = "limit_exceeded"
	}
	writeError(w, http.StatusBadRequest, code, wrap(op, err))
	return 0, false
}
