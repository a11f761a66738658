package service

import (
	"github.com/jonboulle/clockwork"

	"github.com/okian/volunteer-match/internal/domain/scoring"
	"github.com/okian/volunteer-match/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithWeights sets the scoring weights.
func WithWeights(w scoring.Weights) Option {
	return func(s *Service) {
		s.weights = w
	}
}

// WithDefaultMaxDistance sets the radius used for volunteers without a preference.
func WithDefaultMaxDistance(miles float64) Option {
	return func(s *Service) {
		s.defaultMaxDistance = miles
	}
}

// WithMatchThreshold sets the score a match must exceed.
func WithMatchThreshold(threshold float64) Option {
	return func(s *Service) {
		s.threshold = threshold
	}
}

// WithUrgency sets the alert window, the high urgency cut-off and the fill threshold.
func WithUrgency(windowDays, highDays int, fillThreshold float64) Option {
	return func(s *Service) {
		s.windowDays = windowDays
		s.highDays = highDays
		s.fillThreshold = fillThreshold
	}
}

// WithClock sets the time source for urgency checks.
func WithClock(c clockwork.Clock) Option {
	return func(s *Service) {
		s.clock = c
	}
}

// WithSeedFile sets a YAML fixture loaded by Start.
func WithSeedFile(path string) Option {
	return func(s *Service) {
		s.seedFile = path
	}
}
