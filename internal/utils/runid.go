package utils

import "github.com/google/uuid"

// NewRunID returns a fresh identifier used to correlate all log records of
// a single CLI invocation. UUIDv7 keeps identifiers time-ordered; if v7
// generation fails a random v4 is used instead.
func NewRunID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
