package utils

import "github.com/google/uuid"

// IsValidID reports whether s is a well-formed entity identifier.
// All entity IDs are UUID strings assigned at insert time.
func IsValidID(s string) bool {
	if s == "" {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// NewID returns a fresh entity identifier.
func NewID() string {
	return uuid.New().String()
}
