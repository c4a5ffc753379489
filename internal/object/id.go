package object

import (
	gkerrors "stackit.dev/gitkit/internal/errors"
)

// IDLength is the length of a hex-encoded SHA-1 object id.
const IDLength = 40

// EmptyTreeID is the id of the tree with no entries.
const EmptyTreeID = "4b825dc642cb6eb9a060e54bf8d69288fbee4904"

// IsID reports whether s is a full object id. Only lowercase hex is
// accepted; abbreviated or uppercase ids are rejected.
func IsID(s string) bool {
	if len(s) != IDLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

// ValidateID returns id unchanged if it is a full lowercase object id.
func ValidateID(id string) (string, error) {
	if !IsID(id) {
		return "", gkerrors.NewValidationError("invalid object id", id)
	}
	return id, nil
}
