// Package urgency finds upcoming events that are short on volunteers.
package urgency

import (
	"math"
	"sort"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/okian/volunteer-match/internal/domain/model"
	"github.com/okian/volunteer-match/internal/domain/types"
)

// Default analyzer configuration constants.
const (
	defaultWindowDays    = 7
	defaultHighDays      = 3
	defaultFillThreshold = 0.5
	day                  = 24 * time.Hour
)

// Analyzer classifies under-filled, near-term events.
type Analyzer struct {
	clock         clockwork.Clock
	windowDays    int
	highDays      int
	fillThreshold float64
}

// NewAnalyzer creates an Analyzer backed by the real clock.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		clock:         clockwork.NewRealClock(),
		windowDays:    defaultWindowDays,
		highDays:      defaultHighDays,
		fillThreshold: defaultFillThreshold,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// DaysUntil returns the number of days from now to start, rounded up.
func DaysUntil(start, now time.Time) int {
	return int(math.Ceil(float64(start.Sub(now)) / float64(day)))
}

// UnderFilled reports whether e is upcoming and below the fill threshold.
// An event without capacity is never under-filled.
func (a *Analyzer) UnderFilled(e model.Event) bool {
	return e.Status == model.StatusUpcoming &&
		e.MaxVolunteers > 0 &&
		e.FillRatio() < a.fillThreshold
}

// FindUrgentAlerts returns alerts for under-filled events starting within the
// window, soonest first. Events that already started are skipped.
func (a *Analyzer) FindUrgentAlerts(events []model.Event) []types.Alert {
	now := a.clock.Now()

	alerts := make([]types.Alert, 0)
	for _, e := range events {
		if !a.UnderFilled(e) || e.StartDate.Before(now) {
			continue
		}
		days := DaysUntil(e.StartDate, now)
		spots := e.AvailableSpots()
		if days > a.windowDays || spots <= 0 {
			continue
		}
		alerts = append(alerts, types.Alert{
			Event:          e,
			AvailableSpots: spots,
			DaysUntilEvent: days,
			Urgency:        a.classify(days),
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Event.StartDate.Before(alerts[j].Event.StartDate)
	})
	return alerts
}

// Stats counts active volunteers, upcoming events and under-filled events.
// PendingMatches mirrors UrgentEvents.
func (a *Analyzer) Stats(volunteers []model.Volunteer, events []model.Event) types.Stats {
	var s types.Stats
	for _, v := range volunteers {
		if v.Active {
			s.TotalVolunteers++
		}
	}
	for _, e := range events {
		if e.Status != model.StatusUpcoming {
			continue
		}
		s.TotalEvents++
		if a.UnderFilled(e) {
			s.UrgentEvents++
		}
	}
	s.PendingMatches = s.UrgentEvents
	return s
}

func (a *Analyzer) classify(days int) types.Urgency {
	if days <= a.highDays {
		return types.UrgencyHigh
	}
	return types.UrgencyMedium
}
