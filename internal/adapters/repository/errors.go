package repository

import "errors"

// Sentinel kinds for storage errors.
var (
	ErrNotFound    = errors.New("not found")
	ErrEventFull   = errors.New("event is full")
	ErrEventClosed = errors.New("event is not open for registration")
	ErrInvalidSeed = errors.New("invalid seed data")
)
