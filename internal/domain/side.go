package domain

import "fmt"

// Side names the two roles a team can hold within a match.
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

// ParseSide validates a raw string against the two allowed sides.
func ParseSide(raw string) (Side, error) {
	switch Side(raw) {
	case SideHome:
		return SideHome, nil
	case SideAway:
		return SideAway, nil
	default:
		return "", fmt.Errorf("unknown side %q", raw)
	}
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideHome {
		return SideAway
	}
	return SideHome
}
