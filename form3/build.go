package form3

import (
	"fmt"
	"log/slog"

	"github.com/soypat/meshgen"
	"github.com/soypat/meshgen/form3/must3"
)

// Build validates p and builds the mesh of the given kind. p may be a
// parameter struct or a pointer to one and must describe kind.
// No mesh is returned alongside an error.
func Build(kind Kind, p Params) (*meshgen.Mesh, error) {
	if isNil(p) {
		return nil, fmt.Errorf("%s: nil parameters", kind)
	}
	if p.Kind() != kind {
		return nil, fmt.Errorf("%s: got %s parameters", kind, p.Kind())
	}
	switch p := p.(type) {
	case SpindleParams:
		return BuildSpindle(p)
	case *SpindleParams:
		return BuildSpindle(*p)
	case CapsuleParams:
		return BuildCapsule(p)
	case *CapsuleParams:
		return BuildCapsule(*p)
	case TorusParams:
		return BuildTorus(p)
	case *TorusParams:
		return BuildTorus(*p)
	case PyramidParams:
		return BuildPyramid(p)
	case *PyramidParams:
		return BuildPyramid(*p)
	case GearParams:
		return BuildGear(p)
	case *GearParams:
		return BuildGear(*p)
	case StarParams:
		return BuildStar(p)
	case *StarParams:
		return BuildStar(*p)
	}
	return nil, fmt.Errorf("%s: unsupported parameter type %T", kind, p)
}

// BuildSpindle returns two cones of depth Height/2 joined at their bases on
// the XY plane. The result has 2*Segments+2 vertices and faces.
func BuildSpindle(p SpindleParams) (m *meshgen.Mesh, err error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", Spindle, err)
	}
	defer recoverShape(Spindle, &m, &err)
	m = must3.Spindle(p.Radius, p.Height, p.Segments)
	logBuilt(Spindle, m)
	return m, nil
}

// BuildCapsule returns a cylinder of length Height centered on the origin
// with hemispherical caps centered on its end planes. The three pieces are
// joined without welding, so the bounding box spans Height+2*Radius in Z.
func BuildCapsule(p CapsuleParams) (m *meshgen.Mesh, err error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", Capsule, err)
	}
	defer recoverShape(Capsule, &m, &err)
	m = must3.Capsule(p.Radius, p.Height, p.Segments, p.HemisphereSegments)
	logBuilt(Capsule, m)
	return m, nil
}

// BuildTorus returns a torus around the Z axis made of
// MajorSegments*MinorSegments quads.
func BuildTorus(p TorusParams) (m *meshgen.Mesh, err error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", Torus, err)
	}
	defer recoverShape(Torus, &m, &err)
	m = must3.Torus(p.MajorRadius, p.MinorRadius, p.MajorSegments, p.MinorSegments)
	logBuilt(Torus, m)
	return m, nil
}

// BuildPyramid returns a square pyramid standing on the XY plane.
func BuildPyramid(p PyramidParams) (m *meshgen.Mesh, err error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", Pyramid, err)
	}
	defer recoverShape(Pyramid, &m, &err)
	m = must3.Pyramid(p.BaseSize, p.Height)
	logBuilt(Pyramid, m)
	return m, nil
}

// BuildGear returns an extruded gear with 4*Teeth vertices and 2*Teeth+2
// faces.
func BuildGear(p GearParams) (m *meshgen.Mesh, err error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", Gear, err)
	}
	defer recoverShape(Gear, &m, &err)
	m = must3.Gear(p.Teeth, p.InnerRadius, p.OuterRadius, p.Depth)
	logBuilt(Gear, m)
	return m, nil
}

// BuildStar returns an extruded star with 4*Points vertices and 2*Points+2
// faces.
func BuildStar(p StarParams) (m *meshgen.Mesh, err error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", Star, err)
	}
	defer recoverShape(Star, &m, &err)
	m = must3.Star(p.Points, p.InnerRadius, p.OuterRadius, p.Depth)
	logBuilt(Star, m)
	return m, nil
}

func logBuilt(kind Kind, m *meshgen.Mesh) {
	meshgen.Logger().Debug("built mesh",
		slog.String("kind", kind.String()),
		slog.Int("vertices", m.VertexCount()),
		slog.Int("faces", m.FaceCount()),
	)
}
