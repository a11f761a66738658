// Package config defines service configuration and its defaults.
package config

import (
	"fmt"

	"github.com/okian/volunteer-match/internal/domain/scoring"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects text or json output.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// SeedFile optionally points at a YAML file of volunteers and events loaded at startup.
	SeedFile string `koanf:"seed_file"`

	// DefaultMatchLimit is used when a match request has no limit.
	DefaultMatchLimit int `koanf:"default_match_limit"`

	// MaxMatchLimit caps the limit query parameter.
	MaxMatchLimit int `koanf:"max_match_limit"`

	// MatchThreshold is the score a match must exceed to be returned.
	MatchThreshold float64 `koanf:"match_threshold"`

	// DefaultMaxDistanceMiles applies to volunteers without a travel preference.
	DefaultMaxDistanceMiles float64 `koanf:"default_max_distance_miles"`

	// Factor weights; they must sum to 1.
	WeightSkill        float64 `koanf:"weight_skill"`
	WeightAvailability float64 `koanf:"weight_availability"`
	WeightDistance     float64 `koanf:"weight_distance"`
	WeightPreference   float64 `koanf:"weight_preference"`

	// UrgencyWindowDays and HighUrgencyDays bound urgent alert classification.
	UrgencyWindowDays int `koanf:"urgency_window_days"`
	HighUrgencyDays   int `koanf:"high_urgency_days"`

	// FillThreshold is the filled share below which an upcoming event is under-staffed.
	FillThreshold float64 `koanf:"fill_threshold"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:                "info",
		LogFormat:               "text",
		Addr:                    ":9080",
		DefaultMatchLimit:       10,
		MaxMatchLimit:           100,
		MatchThreshold:          0.3,
		DefaultMaxDistanceMiles: 10,
		WeightSkill:             scoring.DefaultWeights.Skill,
		WeightAvailability:      scoring.DefaultWeights.Availability,
		WeightDistance:          scoring.DefaultWeights.Distance,
		WeightPreference:        scoring.DefaultWeights.Preference,
		UrgencyWindowDays:       7,
		HighUrgencyDays:         3,
		FillThreshold:           0.5,
	}
}

// Weights returns the configured scoring weights.
func (c *Config) Weights() scoring.Weights {
	return scoring.Weights{
		Skill:        c.WeightSkill,
		Availability: c.WeightAvailability,
		Distance:     c.WeightDistance,
		Preference:   c.WeightPreference,
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.DefaultMatchLimit < 1:
		return fmt.Errorf("%w: default_match_limit must be positive", ErrInvalidConfig)
	case c.MaxMatchLimit < c.DefaultMatchLimit:
		return fmt.Errorf("%w: max_match_limit must be at least default_match_limit", ErrInvalidConfig)
	case c.MatchThreshold < 0 || c.MatchThreshold >= 1:
		return fmt.Errorf("%w: match_threshold must be in [0,1)", ErrInvalidConfig)
	case c.DefaultMaxDistanceMiles <= 0:
		return fmt.Errorf("%w: default_max_distance_miles must be positive", ErrInvalidConfig)
	case c.UrgencyWindowDays < 1:
		return fmt.Errorf("%w: urgency_window_days must be positive", ErrInvalidConfig)
	case c.HighUrgencyDays < 0 || c.HighUrgencyDays > c.UrgencyWindowDays:
		return fmt.Errorf("%w: high_urgency_days must be within the urgency window", ErrInvalidConfig)
	case c.FillThreshold <= 0 || c.FillThreshold > 1:
		return fmt.Errorf("%w: fill_threshold must be in (0,1]", ErrInvalidConfig)
	}
	if err := c.Weights().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
