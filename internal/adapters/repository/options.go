package repository

import "github.com/google/uuid"

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithIDGenerator sets the function used to fill in missing record ids.
func WithIDGenerator(gen func() string) Option {
	return func(s *MemoryStore) {
		if gen != nil {
			s.newID = gen
		}
	}
}

func newUUID() string {
	return uuid.NewString()
}
