// Package types contains the response shapes shared by the service and HTTP layers.
package types

import "github.com/okian/volunteer-match/internal/domain/model"

// Urgency classifies how badly an under-filled event needs volunteers.
type Urgency string

// Urgency levels.
const (
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// EventMatch is one ranked event for a volunteer.
// Distance is nil when either side is missing coordinates.
type EventMatch struct {
	Event      model.Event `json:"event"`
	MatchScore float64     `json:"matchScore"`
	Distance   *float64    `json:"distance"`
}

// VolunteerMatch is one ranked volunteer for an event.
type VolunteerMatch struct {
	Volunteer  model.Volunteer `json:"volunteer"`
	MatchScore float64         `json:"matchScore"`
	Distance   *float64        `json:"distance"`
}

// Alert flags an upcoming event that is short on volunteers.
type Alert struct {
	Event          model.Event `json:"event"`
	AvailableSpots int         `json:"availableSpots"`
	DaysUntilEvent int         `json:"daysUntilEvent"`
	Urgency        Urgency     `json:"urgency"`
}

// Stats aggregates matching counters for the admin dashboard.
type Stats struct {
	TotalVolunteers int `json:"totalVolunteers"`
	TotalEvents     int `json:"totalEvents"`
	UrgentEvents    int `json:"urgentEvents"`
	PendingMatches  int `json:"pendingMatches"`
}

// ScoreResult is the answer to a single volunteer/event score request.
type ScoreResult struct {
	MatchScore float64  `json:"matchScore"`
	Distance   *float64 `json:"distance"`
}
