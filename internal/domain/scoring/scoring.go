// Package scoring computes how well a volunteer fits an event.
package scoring

import (
	"math"

	"github.com/okian/volunteer-match/internal/domain/geo"
	"github.com/okian/volunteer-match/internal/domain/model"
)

// Default scoring configuration constants.
const (
	defaultMaxDistanceMiles     = 10.0
	defaultUnknownDistanceScore = 0.5
	scorePrecision              = 100
)

// Breakdown holds the per-factor inputs that produced a score.
type Breakdown struct {
	SkillMatch      float64
	Available       bool
	DistanceScore   float64
	Distance        *float64
	PreferenceMatch bool
	Score           float64
}

// Scorer combines skill, availability, distance and preference into one score.
// It holds no mutable state and is safe for concurrent use.
type Scorer struct {
	weights              Weights
	defaultMaxDistance   float64
	unknownDistanceScore float64
}

// NewScorer creates a scorer with the default weights and fallbacks.
func NewScorer(opts ...Option) *Scorer {
	s := &Scorer{
		weights:              DefaultWeights,
		defaultMaxDistance:   defaultMaxDistanceMiles,
		unknownDistanceScore: defaultUnknownDistanceScore,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Weights returns the weights in use.
func (s *Scorer) Weights() Weights {
	return s.weights
}

// Score returns the weighted match score in [0,1], rounded to 2 decimals.
func (s *Scorer) Score(v model.Volunteer, e model.Event) float64 {
	return s.Breakdown(v, e).Score
}

// Breakdown scores v against e and reports every factor.
func (s *Scorer) Breakdown(v model.Volunteer, e model.Event) Breakdown {
	b := Breakdown{
		SkillMatch:      SkillMatch(v.Skills, e.RequiredSkills),
		Available:       IsAvailable(v.Availability, e.StartDate),
		DistanceScore:   s.unknownDistanceScore,
		PreferenceMatch: v.PrefersType(e.EventType),
	}

	// non-finite distances from malformed coordinates count as unknown
	if d, ok := geo.Between(v.Location.Coordinates, e.Location.Coordinates); ok && !math.IsNaN(d) && !math.IsInf(d, 0) {
		b.Distance = &d
		b.DistanceScore = math.Max(0, 1-d/s.maxDistance(v))
	}

	total := s.weights.Skill*b.SkillMatch +
		s.weights.Availability*boolScore(b.Available) +
		s.weights.Distance*b.DistanceScore +
		s.weights.Preference*boolScore(b.PreferenceMatch)

	b.Score = round2(total)
	return b
}

func (s *Scorer) maxDistance(v model.Volunteer) float64 {
	if v.Preferences.MaxDistanceMiles > 0 {
		return v.Preferences.MaxDistanceMiles
	}
	return s.defaultMaxDistance
}

func boolScore(ok bool) float64 {
	if ok {
		return 1
	}
	return 0
}

func round2(x float64) float64 {
	return math.Round(x*scorePrecision) / scorePrecision
}
