package form3

import (
	"fmt"
	"strings"
)

// Kind identifies one of the solid primitives form3 can build.
type Kind int

const (
	Spindle Kind = iota
	Capsule
	Torus
	Pyramid
	Gear
	Star
	numKinds
)

var kindNames = [numKinds]string{
	Spindle: "Spindle",
	Capsule: "Capsule",
	Torus:   "Torus",
	Pyramid: "Pyramid",
	Gear:    "Gear",
	Star:    "Star",
}

// Kinds returns every buildable kind in declaration order.
func Kinds() []Kind {
	k := make([]Kind, numKinds)
	for i := range k {
		k[i] = Kind(i)
	}
	return k
}

// String returns the object name the shape is created under, e.g. "Torus".
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind parses a shape name case-insensitively.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown shape %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || k >= numKinds {
		return nil, fmt.Errorf("invalid shape kind %d", int(k))
	}
	return []byte(strings.ToLower(kindNames[k])), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
