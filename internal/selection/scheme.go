// Package selection resolves drag gestures over a grid into regions of
// time slots and merges them into a committed selection
package selection

import "strings"

// Scheme is the geometric rule that expands a gesture into a region.
type Scheme int

const (
	// Linear selects the contiguous run between two slots in day-major
	// order, wrapping across day boundaries.
	Linear Scheme = iota + 1
	// Square selects the rectangle with the two slots as opposite corners.
	Square
)

// Schemes lists every supported scheme.
var Schemes = []Scheme{Linear, Square}

func (s Scheme) String() string {
	switch s {
	case Linear:
		return "linear"
	case Square:
		return "square"
	default:
		return "unknown"
	}
}

// Next returns the scheme that follows s, wrapping around.
func (s Scheme) Next() Scheme {
	if s == Linear {
		return Square
	}

	return Linear
}

// ParseScheme converts a configuration value into a Scheme.
func ParseScheme(name string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "linear":
		return Linear, nil
	case "square":
		return Square, nil
	default:
		return 0, errUnknownScheme.Fmt(name)
	}
}

// Mode decides whether a gesture adds its region to the selection or
// removes it.
type Mode int

const (
	ModeAdd Mode = iota + 1
	ModeRemove
)

func (m Mode) String() string {
	switch m {
	case ModeAdd:
		return "add"
	case ModeRemove:
		return "remove"
	default:
		return "unknown"
	}
}
