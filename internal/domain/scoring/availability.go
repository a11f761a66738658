package scoring

import (
	"time"

	"github.com/okian/volunteer-match/internal/domain/model"
)

// Slot is a part of the day used by the availability grid.
type Slot string

// Day slots. Boundaries are hour based: [0,12) morning, [12,17) afternoon, [17,24) evening.
const (
	SlotMorning   Slot = "morning"
	SlotAfternoon Slot = "afternoon"
	SlotEvening   Slot = "evening"
)

const (
	noonHour    = 12
	eveningHour = 17
)

// SlotFor maps an hour of day to its slot.
func SlotFor(hour int) Slot {
	switch {
	case hour < noonHour:
		return SlotMorning
	case hour < eveningHour:
		return SlotAfternoon
	default:
		return SlotEvening
	}
}

// IsWeekend reports whether t falls on a Saturday or Sunday in t's location.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsAvailable reports whether the grid covers the slot eventStart falls into.
// Day and hour are read in eventStart's own location with no normalization.
func IsAvailable(a model.Availability, eventStart time.Time) bool {
	slots := a.Weekdays
	if IsWeekend(eventStart) {
		slots = a.Weekends
	}

	switch SlotFor(eventStart.Hour()) {
	case SlotMorning:
		return slots.Morning
	case SlotAfternoon:
		return slots.Afternoon
	default:
		return slots.Evening
	}
}
