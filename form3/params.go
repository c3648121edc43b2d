package form3

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/soypat/meshgen"
)

// Parameter bounds. All intervals are closed.
const (
	MinSize        = 0.01
	MaxSize        = 10.0
	MaxMinorRadius = 5.0

	MinSegments           = 3
	MaxSegments           = 64
	MaxHemisphereSegments = 36
	MaxMajorSegments      = 128
	MaxMinorSegments      = 64
	MaxTeeth              = 64
	MaxPoints             = 12
)

// Params is implemented by the parameter struct of every shape, both as
// value and as pointer.
type Params interface {
	// Kind returns the shape the parameters describe.
	Kind() Kind
	// Validate returns an error matching meshgen.ErrOutOfRange for every
	// field outside its bounds, or nil.
	Validate() error
}

// SpindleParams describes two cones joined base to base.
type SpindleParams struct {
	Radius   float64 `toml:"radius" yaml:"radius"`
	Height   float64 `toml:"height" yaml:"height"`
	Segments int     `toml:"segments" yaml:"segments"`
}

// CapsuleParams describes a cylinder capped by two hemispheres. Height is
// the length of the cylindrical section; HemisphereSegments is the number
// of rings of the full sphere each cap is cut from.
type CapsuleParams struct {
	Radius             float64 `toml:"radius" yaml:"radius"`
	Height             float64 `toml:"height" yaml:"height"`
	Segments           int     `toml:"segments" yaml:"segments"`
	HemisphereSegments int     `toml:"hemisphere_segments" yaml:"hemisphere_segments"`
}

// TorusParams describes a ring torus around the Z axis. MinorRadius may
// exceed MajorRadius, which yields a self-intersecting spindle torus.
type TorusParams struct {
	MajorRadius   float64 `toml:"major_radius" yaml:"major_radius"`
	MinorRadius   float64 `toml:"minor_radius" yaml:"minor_radius"`
	MajorSegments int     `toml:"major_segments" yaml:"major_segments"`
	MinorSegments int     `toml:"minor_segments" yaml:"minor_segments"`
}

// PyramidParams describes a square pyramid standing on the XY plane.
type PyramidParams struct {
	BaseSize float64 `toml:"base_size" yaml:"base_size"`
	Height   float64 `toml:"height" yaml:"height"`
}

// GearParams describes an extruded toothed disc. InnerRadius is not
// required to be smaller than OuterRadius.
type GearParams struct {
	Teeth       int     `toml:"teeth" yaml:"teeth"`
	InnerRadius float64 `toml:"inner_radius" yaml:"inner_radius"`
	OuterRadius float64 `toml:"outer_radius" yaml:"outer_radius"`
	Depth       float64 `toml:"depth" yaml:"depth"`
}

// StarParams describes an extruded star. Like GearParams, InnerRadius is
// not required to be smaller than OuterRadius.
type StarParams struct {
	Points      int     `toml:"points" yaml:"points"`
	InnerRadius float64 `toml:"inner_radius" yaml:"inner_radius"`
	OuterRadius float64 `toml:"outer_radius" yaml:"outer_radius"`
	Depth       float64 `toml:"depth" yaml:"depth"`
}

// DefaultSpindle returns a spindle of radius 1 and height 2 with 32 segments.
func DefaultSpindle() SpindleParams {
	return SpindleParams{Radius: 1, Height: 2, Segments: 32}
}

// DefaultCapsule returns a capsule of radius 0.5 and height 2 with 32 segments and 16 hemisphere rings.
func DefaultCapsule() CapsuleParams {
	return CapsuleParams{Radius: 0.5, Height: 2, Segments: 32, HemisphereSegments: 16}
}

// DefaultTorus returns a 48x12 torus with radii 1 and 0.25.
func DefaultTorus() TorusParams {
	return TorusParams{MajorRadius: 1, MinorRadius: 0.25, MajorSegments: 48, MinorSegments: 12}
}

// DefaultPyramid returns a pyramid with unit base and height 1.5.
func DefaultPyramid() PyramidParams {
	return PyramidParams{BaseSize: 1, Height: 1.5}
}

// DefaultGear returns a 16 tooth gear with radii 0.5 and 1 and depth 0.3.
func DefaultGear() GearParams {
	return GearParams{Teeth: 16, InnerRadius: 0.5, OuterRadius: 1, Depth: 0.3}
}

// DefaultStar returns a five pointed star with radii 0.5 and 1 and depth 0.3.
func DefaultStar() StarParams {
	return StarParams{Points: 5, InnerRadius: 0.5, OuterRadius: 1, Depth: 0.3}
}

// Defaults returns the default parameters of kind as a value type.
func Defaults(kind Kind) (Params, error) {
	switch kind {
	case Spindle:
		return DefaultSpindle(), nil
	case Capsule:
		return DefaultCapsule(), nil
	case Torus:
		return DefaultTorus(), nil
	case Pyramid:
		return DefaultPyramid(), nil
	case Gear:
		return DefaultGear(), nil
	case Star:
		return DefaultStar(), nil
	}
	return nil, fmt.Errorf("no defaults for %s", kind)
}

func (SpindleParams) Kind() Kind { return Spindle }
func (CapsuleParams) Kind() Kind { return Capsule }
func (TorusParams) Kind() Kind   { return Torus }
func (PyramidParams) Kind() Kind { return Pyramid }
func (GearParams) Kind() Kind    { return Gear }
func (StarParams) Kind() Kind    { return Star }

func (p SpindleParams) Validate() error {
	return errors.Join(
		meshgen.CheckFloat("radius", p.Radius, MinSize, MaxSize),
		meshgen.CheckFloat("height", p.Height, MinSize, MaxSize),
		meshgen.CheckInt("segments", p.Segments, MinSegments, MaxSegments),
	)
}

func (p CapsuleParams) Validate() error {
	return errors.Join(
		meshgen.CheckFloat("radius", p.Radius, MinSize, MaxSize),
		meshgen.CheckFloat("height", p.Height, MinSize, MaxSize),
		meshgen.CheckInt("segments", p.Segments, MinSegments, MaxSegments),
		meshgen.CheckInt("hemisphere_segments", p.HemisphereSegments, MinSegments, MaxHemisphereSegments),
	)
}

func (p TorusParams) Validate() error {
	return errors.Join(
		meshgen.CheckFloat("major_radius", p.MajorRadius, MinSize, MaxSize),
		meshgen.CheckFloat("minor_radius", p.MinorRadius, MinSize, MaxMinorRadius),
		meshgen.CheckInt("major_segments", p.MajorSegments, MinSegments, MaxMajorSegments),
		meshgen.CheckInt("minor_segments", p.MinorSegments, MinSegments, MaxMinorSegments),
	)
}

func (p PyramidParams) Validate() error {
	return errors.Join(
		meshgen.CheckFloat("base_size", p.BaseSize, MinSize, MaxSize),
		meshgen.CheckFloat("height", p.Height, MinSize, MaxSize),
	)
}

func (p GearParams) Validate() error {
	return errors.Join(
		meshgen.CheckInt("teeth", p.Teeth, MinSegments, MaxTeeth),
		meshgen.CheckFloat("inner_radius", p.InnerRadius, MinSize, MaxSize),
		meshgen.CheckFloat("outer_radius", p.OuterRadius, MinSize, MaxSize),
		meshgen.CheckFloat("depth", p.Depth, MinSize, MaxSize),
	)
}

func (p StarParams) Validate() error {
	return errors.Join(
		meshgen.CheckInt("points", p.Points, MinSegments, MaxPoints),
		meshgen.CheckFloat("inner_radius", p.InnerRadius, MinSize, MaxSize),
		meshgen.CheckFloat("outer_radius", p.OuterRadius, MinSize, MaxSize),
		meshgen.CheckFloat("depth", p.Depth, MinSize, MaxSize),
	)
}

// Clamp returns a copy of p with every field moved into its bounds.
// NaN fields are replaced by the minimum.
func Clamp(p Params) (Params, error) {
	if isNil(p) {
		return nil, errors.New("nil parameters")
	}
	switch p := p.(type) {
	case SpindleParams:
		return clampSpindle(p), nil
	case *SpindleParams:
		return clampSpindle(*p), nil
	case CapsuleParams:
		return clampCapsule(p), nil
	case *CapsuleParams:
		return clampCapsule(*p), nil
	case TorusParams:
		return clampTorus(p), nil
	case *TorusParams:
		return clampTorus(*p), nil
	case PyramidParams:
		return clampPyramid(p), nil
	case *PyramidParams:
		return clampPyramid(*p), nil
	case GearParams:
		return clampGear(p), nil
	case *GearParams:
		return clampGear(*p), nil
	case StarParams:
		return clampStar(p), nil
	case *StarParams:
		return clampStar(*p), nil
	}
	return nil, fmt.Errorf("unsupported parameter type %T", p)
}

func clampSpindle(p SpindleParams) SpindleParams {
	p.Radius = meshgen.Clamp(p.Radius, MinSize, MaxSize)
	p.Height = meshgen.Clamp(p.Height, MinSize, MaxSize)
	p.Segments = clampInt(p.Segments, MinSegments, MaxSegments)
	return p
}

func clampCapsule(p CapsuleParams) CapsuleParams {
	p.Radius = meshgen.Clamp(p.Radius, MinSize, MaxSize)
	p.Height = meshgen.Clamp(p.Height, MinSize, MaxSize)
	p.Segments = clampInt(p.Segments, MinSegments, MaxSegments)
	p.HemisphereSegments = clampInt(p.HemisphereSegments, MinSegments, MaxHemisphereSegments)
	return p
}

func clampTorus(p TorusParams) TorusParams {
	p.MajorRadius = meshgen.Clamp(p.MajorRadius, MinSize, MaxSize)
	p.MinorRadius = meshgen.Clamp(p.MinorRadius, MinSize, MaxMinorRadius)
	p.MajorSegments = clampInt(p.MajorSegments, MinSegments, MaxMajorSegments)
	p.MinorSegments = clampInt(p.MinorSegments, MinSegments, MaxMinorSegments)
	return p
}

func clampPyramid(p PyramidParams) PyramidParams {
	p.BaseSize = meshgen.Clamp(p.BaseSize, MinSize, MaxSize)
	p.Height = meshgen.Clamp(p.Height, MinSize, MaxSize)
	return p
}

func clampGear(p GearParams) GearParams {
	p.Teeth = clampInt(p.Teeth, MinSegments, MaxTeeth)
	p.InnerRadius = meshgen.Clamp(p.InnerRadius, MinSize, MaxSize)
	p.OuterRadius = meshgen.Clamp(p.OuterRadius, MinSize, MaxSize)
	p.Depth = meshgen.Clamp(p.Depth, MinSize, MaxSize)
	return p
}

func clampStar(p StarParams) StarParams {
	p.Points = clampInt(p.Points, MinSegments, MaxPoints)
	p.InnerRadius = meshgen.Clamp(p.InnerRadius, MinSize, MaxSize)
	p.OuterRadius = meshgen.Clamp(p.OuterRadius, MinSize, MaxSize)
	p.Depth = meshgen.Clamp(p.Depth, MinSize, MaxSize)
	return p
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// isNil reports whether p is nil or a nil pointer to a parameter struct.
func isNil(p Params) bool {
	if p == nil {
		return true
	}
	v := reflect.ValueOf(p)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
