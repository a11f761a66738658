// Package repository stores volunteers and events for the matching service.
package repository

import (
	"context"

	"github.com/okian/volunteer-match/internal/domain/model"
)

// Store provides read/write access to volunteers and events.
// Returned records are copies; mutating them does not affect the store.
type Store interface {
	PutVolunteer(ctx context.Context, v model.Volunteer) error
	PutEvent(ctx context.Context, e model.Event) error

	// Volunteer and Event return ErrNotFound for unknown ids.
	Volunteer(ctx context.Context, id string) (model.Volunteer, error)
	Event(ctx context.Context, id string) (model.Event, error)

	// Volunteers and Events list every record in insertion order.
	Volunteers(ctx context.Context) []model.Volunteer
	Events(ctx context.Context) []model.Event

	// ActiveVolunteers and UpcomingEvents are the candidate pools for matching.
	ActiveVolunteers(ctx context.Context) []model.Volunteer
	UpcomingEvents(ctx context.Context) []model.Event

	// RegisterVolunteer atomically takes one spot on an upcoming event.
	// It fails with ErrNotFound, ErrEventClosed or ErrEventFull.
	RegisterVolunteer(ctx context.Context, eventID string) (model.Event, error)
}
