package scoring

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithWeights replaces the factor weights. Invalid weights are ignored.
func WithWeights(w Weights) Option {
	return func(s *Scorer) {
		if w.Validate() == nil {
			s.weights = w
		}
	}
}

// WithDefaultMaxDistance sets the travel radius used when a volunteer has none.
func WithDefaultMaxDistance(miles float64) Option {
	return func(s *Scorer) {
		if miles > 0 {
			s.defaultMaxDistance = miles
		}
	}
}

// WithUnknownDistanceScore sets the distance score used when coordinates are missing.
func WithUnknownDistanceScore(score float64) Option {
	return func(s *Scorer) {
		if score >= 0 && score <= 1 {
			s.unknownDistanceScore = score
		}
	}
}
