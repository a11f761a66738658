// Package seedgen generates random volunteer and event fixtures.
package seedgen

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned when a generation config cannot produce a fixture.
var ErrInvalidConfig = errors.New("invalid seedgen config")

// Config holds generation parameters.
type Config struct {
	Volunteers  int       // Number of volunteers to generate
	Events      int       // Number of events to generate
	CenterLat   float64   // Center of the scatter area
	CenterLng   float64   // Center of the scatter area
	RadiusMiles float64   // Max distance of any record from the center
	HorizonDays int       // Events start within this many days of Now
	Now         time.Time // Reference time for event dates
	RandSeed    uint64    // Non-zero makes output deterministic
}

// DefaultConfig returns a small fixture centered on Austin, TX.
func DefaultConfig() Config {
	return Config{
		Volunteers:  50,
		Events:      20,
		CenterLat:   30.2672,
		CenterLng:   -97.7431,
		RadiusMiles: 15,
		HorizonDays: 14,
	}
}

// Validate reports the first invalid parameter.
func (c Config) Validate() error {
	switch {
	case c.Volunteers < 0:
		return fmt.Errorf("%w: volunteers must be >= 0, got %d", ErrInvalidConfig, c.Volunteers)
	case c.Events < 0:
		return fmt.Errorf("%w: events must be >= 0, got %d", ErrInvalidConfig, c.Events)
	case c.RadiusMiles < 0:
		return fmt.Errorf("%w: radius must be >= 0, got %v", ErrInvalidConfig, c.RadiusMiles)
	case c.HorizonDays < 1:
		return fmt.Errorf("%w: horizon must be >= 1 day, got %d", ErrInvalidConfig, c.HorizonDays)
	case c.CenterLat < -90 || c.CenterLat > 90:
		return fmt.Errorf("%w: latitude out of range: %v", ErrInvalidConfig, c.CenterLat)
	case c.CenterLng < -180 || c.CenterLng > 180:
		return fmt.Errorf("%w: longitude out of range: %v", ErrInvalidConfig, c.CenterLng)
	}
	return nil
}
