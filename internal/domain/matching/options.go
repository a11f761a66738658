package matching

// Option applies a configuration option to the Finder.
type Option func(*Finder)

// WithThreshold sets the score a candidate must exceed to be returned.
func WithThreshold(threshold float64) Option {
	return func(f *Finder) {
		if threshold >= 0 && threshold < 1 {
			f.threshold = threshold
		}
	}
}
