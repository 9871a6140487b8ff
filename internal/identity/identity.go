// Package identity resolves who a participant is. The guest provider mirrors
// a name-only login: the same display name always maps to the same identity,
// so rejoining from another device restores the same picks.
package identity

import (
	"errors"
	"strings"
)

// Identity is a resolved participant.
type Identity struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// ErrInvalidName is returned when a display name cannot be resolved.
var ErrInvalidName = errors.New("invalid display name")

// Provider resolves a display name to a stable identity. Swapping in a real
// authentication backend only requires a new Provider.
type Provider interface {
	Resolve(displayName string) (Identity, error)
}

const maxNameLength = 64

// GuestProvider derives the identity directly from the normalized name.
type GuestProvider struct{}

// Resolve normalizes the display name and returns a stable identity for it.
// Names differing only in case or surrounding whitespace share an identity.
func (GuestProvider) Resolve(displayName string) (Identity, error) {
	trimmed := strings.TrimSpace(displayName)
	if trimmed == "" || len(trimmed) > maxNameLength {
		return Identity{}, ErrInvalidName
	}
	return Identity{
		ID:          strings.ToLower(trimmed),
		DisplayName: trimmed,
	}, nil
}

var _ Provider = GuestProvider{}
