// Package uuid wraps google/uuid so that UUIDs bind directly from URL
// parameters in gin handlers.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

// UUID is a google/uuid UUID with gin parameter binding.
type UUID struct {
	google_uuid.UUID
}

// Nil is the zero UUID.
var Nil UUID

// New returns a random UUID.
func New() UUID {
	return UUID{google_uuid.New()}
}

// NewString returns a random UUID as a string.
func NewString() string {
	return google_uuid.NewString()
}

// UnmarshalParam parses a UUID from a URL parameter. An empty
// parameter binds to the Nil UUID.
func (u *UUID) UnmarshalParam(param string) error {
	parsed, err := Parse(param)
	if err != nil {
		return err
	}

	*u = parsed
	return nil
}

// Parse parses a UUID string, mapping the empty string to Nil.
func Parse(value string) (UUID, error) {
	if value == "" {
		return Nil, nil
	}

	parsed, err := google_uuid.Parse(value)
	if err != nil {
		return Nil, err
	}

	return UUID{parsed}, nil
}
