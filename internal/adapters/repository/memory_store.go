package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/okian/volunteer-match/internal/domain/model"
)

// MemoryStore is a thread-safe in-memory Store.
type MemoryStore struct {
	mu sync.RWMutex

	volunteers     map[string]model.Volunteer
	volunteerOrder []string
	events         map[string]model.Event
	eventOrder     []string

	newID func() string
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		volunteers: make(map[string]model.Volunteer),
		events:     make(map[string]model.Event),
		newID:      newUUID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PutVolunteer inserts or replaces a volunteer. An empty id is generated.
func (s *MemoryStore) PutVolunteer(_ context.Context, v model.Volunteer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v.ID == "" {
		v.ID = s.newID()
	}
	if _, ok := s.volunteers[v.ID]; !ok {
		s.volunteerOrder = append(s.volunteerOrder, v.ID)
	}
	s.volunteers[v.ID] = cloneVolunteer(v)
	return nil
}

// PutEvent inserts or replaces an event. An empty id is generated.
func (s *MemoryStore) PutEvent(_ context.Context, e model.Event) error {
	if e.CurrentVolunteers < 0 || e.CurrentVolunteers > e.MaxVolunteers {
		return fmt.Errorf("%w: event %q has %d of %d volunteers", ErrInvalidSeed, e.ID, e.CurrentVolunteers, e.MaxVolunteers)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == "" {
		e.ID = s.newID()
	}
	if e.Status == "" {
		e.Status = model.StatusUpcoming
	}
	if _, ok := s.events[e.ID]; !ok {
		s.eventOrder = append(s.eventOrder, e.ID)
	}
	s.events[e.ID] = cloneEvent(e)
	return nil
}

// Volunteer returns the volunteer with id.
func (s *MemoryStore) Volunteer(_ context.Context, id string) (model.Volunteer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.volunteers[id]
	if !ok {
		return model.Volunteer{}, fmt.Errorf("volunteer %q: %w", id, ErrNotFound)
	}
	return cloneVolunteer(v), nil
}

// Event returns the event with id.
func (s *MemoryStore) Event(_ context.Context, id string) (model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.events[id]
	if !ok {
		return model.Event{}, fmt.Errorf("event %q: %w", id, ErrNotFound)
	}
	return cloneEvent(e), nil
}

// Volunteers lists every volunteer.
func (s *MemoryStore) Volunteers(_ context.Context) []model.Volunteer {
	return s.filterVolunteers(func(model.Volunteer) bool { return true })
}

// Events lists every event.
func (s *MemoryStore) Events(_ context.Context) []model.Event {
	return s.filterEvents(func(model.Event) bool { return true })
}

// ActiveVolunteers lists volunteers whose profile is active.
func (s *MemoryStore) ActiveVolunteers(_ context.Context) []model.Volunteer {
	return s.filterVolunteers(func(v model.Volunteer) bool { return v.Active })
}

// UpcomingEvents lists events with status upcoming.
func (s *MemoryStore) UpcomingEvents(_ context.Context) []model.Event {
	return s.filterEvents(func(e model.Event) bool { return e.Status == model.StatusUpcoming })
}

// RegisterVolunteer increments the event's volunteer count under the write lock.
// Only upcoming events accept registrations.
func (s *MemoryStore) RegisterVolunteer(_ context.Context, eventID string) (model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[eventID]
	if !ok {
		return model.Event{}, fmt.Errorf("event %q: %w", eventID, ErrNotFound)
	}
	if e.Status != model.StatusUpcoming {
		return model.Event{}, fmt.Errorf("event %q is %s: %w", eventID, e.Status, ErrEventClosed)
	}
	if e.CurrentVolunteers >= e.MaxVolunteers {
		return model.Event{}, fmt.Errorf("event %q: %w", eventID, ErrEventFull)
	}
	e.CurrentVolunteers++
	s.events[eventID] = e
	return cloneEvent(e), nil
}

func (s *MemoryStore) filterVolunteers(keep func(model.Volunteer) bool) []model.Volunteer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Volunteer, 0, len(s.volunteerOrder))
	for _, id := range s.volunteerOrder {
		if v := s.volunteers[id]; keep(v) {
			out = append(out, cloneVolunteer(v))
		}
	}
	return out
}

func (s *MemoryStore) filterEvents(keep func(model.Event) bool) []model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Event, 0, len(s.eventOrder))
	for _, id := range s.eventOrder {
		if e := s.events[id]; keep(e) {
			out = append(out, cloneEvent(e))
		}
	}
	return out
}

func cloneVolunteer(v model.Volunteer) model.Volunteer {
	v.Skills = slices.Clone(v.Skills)
	v.Preferences.EventTypes = slices.Clone(v.Preferences.EventTypes)
	v.Location = cloneLocation(v.Location)
	return v
}

func cloneEvent(e model.Event) model.Event {
	e.RequiredSkills = slices.Clone(e.RequiredSkills)
	e.Location = cloneLocation(e.Location)
	return e
}

func cloneLocation(l model.Location) model.Location {
	if l.Coordinates != nil {
		c := *l.Coordinates
		l.Coordinates = &c
	}
	return l
}
