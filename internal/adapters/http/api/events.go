package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/okian/volunteer-match/internal/adapters/repository"
	"github.com/okian/volunteer-match/internal/domain/model"
)

// Registrar takes spots on events.
type Registrar interface {
	RegisterVolunteer(ctx context.Context, eventID, volunteerID string) (model.Event, error)
}

// EventsHandler handles event registration requests.
type EventsHandler struct {
	registrar Registrar
}

// NewEventsHandler creates a new events handler.
func NewEventsHandler(registrar Registrar) *EventsHandler {
	return &EventsHandler{registrar: registrar}
}

type registerRequest struct {
	VolunteerID string `json:"volunteerId"`
}

// HandleRegister handles POST /events/{eventId}/register and returns the updated event.
func (h *EventsHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	const op = "api.register"
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", wrap(op, fmt.Errorf("%w: %w", ErrBadRequest, err)))
		return
	}
	if strings.TrimSpace(req.VolunteerID) == "" {
		writeError(w, http.StatusBadRequest, "bad_request", wrap(op, fmt.Errorf("%w: missing volunteerId", ErrBadRequest)))
		return
	}

	e, err := h.registrar.RegisterVolunteer(r.Context(), r.PathValue("eventId"), req.VolunteerID)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, e)
	case errors.Is(err, repository.ErrEventFull):
		writeError(w, http.StatusConflict, "event_full", wrap(op, err))
	case errors.Is(err, repository.ErrEventClosed):
		writeError(w, http.StatusConflict, "event_closed", wrap(op, err))
	default:
		writeLookupError(w, op, err)
	}
}
