package scoring

import (
	"fmt"
	"math"
)

const weightSumTolerance = 1e-9

// Weights sets how much each factor contributes to a match score.
type Weights struct {
	Skill        float64
	Availability float64
	Distance     float64
	Preference   float64
}

// DefaultWeights favours skills, then availability, distance and preference.
var DefaultWeights = Weights{
	Skill:        0.4,
	Availability: 0.3,
	Distance:     0.2,
	Preference:   0.1,
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.Skill + w.Availability + w.Distance + w.Preference
}

// Validate checks that no weight is negative and that they add up to 1,
// which keeps every score within [0,1].
func (w Weights) Validate() error {
	for name, v := range map[string]float64{
		"skill":        w.Skill,
		"availability": w.Availability,
		"distance":     w.Distance,
		"preference":   w.Preference,
	} {
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			return fmt.Errorf("%w: %s weight %v is not a finite number", ErrInvalidWeights, name, v)
		case v < 0:
			return fmt.Errorf("%w: %s weight %v is negative", ErrInvalidWeights, name, v)
		}
	}
	if sum := w.Sum(); math.Abs(sum-1) > weightSumTolerance {
		return fmt.Errorf("%w: weights sum to %v, want 1", ErrInvalidWeights, sum)
	}
	return nil
}
