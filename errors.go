package meshgen

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is matched by errors reporting a parameter outside
	// its closed interval.
	ErrOutOfRange = errors.New("parameter out of range")
	// ErrDegenerate is matched by errors reporting geometry that would
	// yield faces with fewer than three distinct vertices or zero area.
	ErrDegenerate = errors.New("degenerate geometry")
	// ErrIndex is matched by errors reporting a face that references a
	// vertex that does not exist. Seeing it means a builder bug.
	ErrIndex = errors.New("face index out of range")
)

// RangeError reports a numeric field outside [Min, Max].
type RangeError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *RangeError) Error() string {
	if e.Value < e.Min {
		return fmt.Sprintf("%s=%g below minimum %g", e.Field, e.Value, e.Min)
	}
	return fmt.Sprintf("%s=%g above maximum %g", e.Field, e.Value, e.Max)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// Bound returns the bound that Value violates.
func (e *RangeError) Bound() float64 {
	if e.Value < e.Min {
		return e.Min
	}
	return e.Max
}

// CheckFloat returns a *RangeError if v is NaN or outside [min, max].
func CheckFloat(field string, v, min, max float64) error {
	if v >= min && v <= max {
		return nil
	}
	return &RangeError{Field: field, Value: v, Min: min, Max: max}
}

// CheckInt returns a *RangeError if v is outside [min, max].
func CheckInt(field string, v, min, max int) error {
	if v >= min && v <= max {
		return nil
	}
	return &RangeError{Field: field, Value: float64(v), Min: float64(min), Max: float64(max)}
}

// DegenerateError reports geometry that cannot form a valid face.
// Face is -1 when the problem was detected before any face existed.
type DegenerateError struct {
	Face   int
	Reason string
}

func (e *DegenerateError) Error() string {
	if e.Face < 0 {
		return "degenerate geometry: " + e.Reason
	}
	return fmt.Sprintf("degenerate face %d: %s", e.Face, e.Reason)
}

func (e *DegenerateError) Unwrap() error { return ErrDegenerate }

// IndexError reports a face vertex index outside [0, VertexCount).
type IndexError struct {
	Face        int
	Index       int
	VertexCount int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("face %d references vertex %d, mesh has %d vertices", e.Face, e.Index, e.VertexCount)
}

func (e *IndexError) Unwrap() error { return ErrIndex }
