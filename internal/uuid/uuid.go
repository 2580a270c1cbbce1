// Package uuid generates identifiers for new resources.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

// Generator returns a new unique identifier on every call.
type Generator func() string

// NewString returns a random (version 4) UUID in its string form.
func NewString() string {
	return google_uuid.NewString()
}

// Sequence returns a Generator that yields the given IDs in order and
// falls back to NewString once they are used up.
//
// This is useful to get predictable IDs in tests.
func Sequence(ids ...string) Generator {
	i := 0
	return func() string {
		if i < len(ids) {
			id := ids[i]
			i++
			return id
		}

		return NewString()
	}
}
