package matching

import "errors"

// Sentinel kinds for matching errors.
var (
	ErrNotFound = errors.New("match subject not found")
)
