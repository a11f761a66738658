// Package matching ranks events for volunteers and volunteers for events.
package matching

import (
	"fmt"
	"sort"

	"github.com/okian/volunteer-match/internal/domain/model"
	"github.com/okian/volunteer-match/internal/domain/scoring"
	"github.com/okian/volunteer-match/internal/domain/types"
)

// DefaultThreshold excludes weak matches; a score must be strictly above it.
const DefaultThreshold = 0.3

// Scorer explains a volunteer/event pairing.
type Scorer interface {
	Breakdown(v model.Volunteer, e model.Event) scoring.Breakdown
}

// Finder scores a candidate pool against one subject and ranks the result.
type Finder struct {
	scorer    Scorer
	threshold float64
}

// NewFinder creates a Finder that uses scorer for every pairing.
func NewFinder(scorer Scorer, opts ...Option) *Finder {
	f := &Finder{
		scorer:    scorer,
		threshold: DefaultThreshold,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Threshold returns the minimum (exclusive) score a match must reach.
func (f *Finder) Threshold() float64 {
	return f.threshold
}

// FindMatchingEvents ranks events for v, best first. Ties keep the order of
// events. A limit of zero or less returns every match above the threshold.
func (f *Finder) FindMatchingEvents(v *model.Volunteer, events []model.Event, limit int) ([]types.EventMatch, error) {
	if v == nil {
		return nil, fmt.Errorf("volunteer: %w", ErrNotFound)
	}

	matches := make([]types.EventMatch, 0, len(events))
	for _, e := range events {
		b := f.scorer.Breakdown(*v, e)
		if !(b.Score > f.threshold) {
			continue
		}
		matches = append(matches, types.EventMatch{
			Event:      e,
			MatchScore: b.Score,
			Distance:   b.Distance,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
	return truncate(matches, limit), nil
}

// FindMatchingVolunteers ranks volunteers for e with the same rules as
// FindMatchingEvents.
func (f *Finder) FindMatchingVolunteers(e *model.Event, volunteers []model.Volunteer, limit int) ([]types.VolunteerMatch, error) {
	if e == nil {
		return nil, fmt.Errorf("event: %w", ErrNotFound)
	}

	matches := make([]types.VolunteerMatch, 0, len(volunteers))
	for _, v := range volunteers {
		b := f.scorer.Breakdown(v, *e)
		if !(b.Score > f.threshold) {
			continue
		}
		matches = append(matches, types.VolunteerMatch{
			Volunteer:  v,
			MatchScore: b.Score,
			Distance:   b.Distance,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
	return truncate(matches, limit), nil
}

func truncate[T any](s []T, limit int) []T {
	if limit > 0 && len(s) > limit {
		return s[:limit]
	}
	return s
}
