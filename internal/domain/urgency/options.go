package urgency

import "github.com/jonboulle/clockwork"

// Option applies a configuration option to the Analyzer.
type Option func(*Analyzer)

// WithClock sets the time source. Pass nil to keep the real clock.
func WithClock(c clockwork.Clock) Option {
	return func(a *Analyzer) {
		if c != nil {
			a.clock = c
		}
	}
}

// WithWindowDays sets how many days ahead events are considered.
func WithWindowDays(days int) Option {
	return func(a *Analyzer) {
		if days > 0 {
			a.windowDays = days
		}
	}
}

// WithHighUrgencyDays sets the cut-off at or below which an alert is high urgency.
func WithHighUrgencyDays(days int) Option {
	return func(a *Analyzer) {
		if days >= 0 {
			a.highDays = days
		}
	}
}

// WithFillThreshold sets the filled share below which an event is under-staffed.
func WithFillThreshold(ratio float64) Option {
	return func(a *Analyzer) {
		if ratio > 0 && ratio <= 1 {
			a.fillThreshold = ratio
		}
	}
}
