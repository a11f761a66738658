package model

import "time"

// EventStatus is the lifecycle state of an event.
type EventStatus string

// Event statuses.
const (
	StatusUpcoming  EventStatus = "upcoming"
	StatusActive    EventStatus = "active"
	StatusCompleted EventStatus = "completed"
	StatusCancelled EventStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s EventStatus) Valid() bool {
	switch s {
	case StatusUpcoming, StatusActive, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Event is a volunteering opportunity created by an administrator.
type Event struct {
	ID                string      `json:"id" yaml:"id"`
	Title             string      `json:"title" yaml:"title"`
	Description       string      `json:"description,omitempty" yaml:"description"`
	RequiredSkills    []string    `json:"requiredSkills" yaml:"required_skills"`
	StartDate         time.Time   `json:"startDate" yaml:"start_date"`
	EndDate           time.Time   `json:"endDate" yaml:"end_date"`
	EventType         string      `json:"eventType" yaml:"event_type"`
	Location          Location    `json:"location" yaml:"location"`
	MaxVolunteers     int         `json:"maxVolunteers" yaml:"max_volunteers"`
	CurrentVolunteers int         `json:"currentVolunteers" yaml:"current_volunteers"`
	Status            EventStatus `json:"status" yaml:"status"`
}

// AvailableSpots returns the number of open volunteer slots.
// It is not clamped; callers guarantee CurrentVolunteers <= MaxVolunteers.
func (e Event) AvailableSpots() int {
	return e.MaxVolunteers - e.CurrentVolunteers
}

// FillRatio returns the filled share of the event, or 0 when it has no capacity.
func (e Event) FillRatio() float64 {
	if e.MaxVolunteers <= 0 {
		return 0
	}
	return float64(e.CurrentVolunteers) / float64(e.MaxVolunteers)
}
