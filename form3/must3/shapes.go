package must3

import (
	"github.com/soypat/meshgen"
	"github.com/soypat/meshgen/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Spindle returns two cones of depth height/2 sharing a base ring on the
// XY plane, apexes at +height/2 and -height/2. The cones are not welded so
// the mesh has 2*segments+2 vertices and as many faces.
func Spindle(radius, height float64, segments int) *meshgen.Mesh {
	upper := Cone(radius, height/2, segments, true).Translate(r3.Vec{Z: height / 4})
	lower := Cone(radius, height/2, segments, false).Translate(r3.Vec{Z: -height / 4})
	return mustValid(meshgen.Join(upper, lower))
}

// Capsule returns a cylinder of the given radius and height capped by two
// hemispheres. Each hemisphere is a UV sphere bisected through its center
// with the cut sealed, so the result is three closed pieces. Their seams
// are not welded and the cut rings need not match the cylinder rims.
func Capsule(radius, height float64, segments, rings int) *meshgen.Mesh {
	assert(height > 0, "capsule height <= 0")
	half := height / 2
	top := hemisphere(radius, segments, rings, meshgen.Plane{
		Point:  r3.Vec{Z: half},
		Normal: r3.Vec{Z: -1},
	})
	bottom := hemisphere(radius, segments, rings, meshgen.Plane{
		Point:  r3.Vec{Z: -half},
		Normal: r3.Vec{Z: 1},
	})
	middle := Cylinder(radius, height, segments)
	return mustValid(meshgen.Join(top, bottom, middle))
}

// hemisphere builds a sphere centered on p.Point and keeps the half behind p.
func hemisphere(radius float64, segments, rings int, p meshgen.Plane) *meshgen.Mesh {
	sphere := UVSphere(radius, segments, rings).Translate(p.Point)
	half, err := meshgen.Bisect(sphere, p, true)
	if err != nil {
		panic(err)
	}
	return half
}

// Torus returns a ring torus around the Z axis. Vertex (i, j) sits at index
// i*minorSegments+j where i walks the major circle and j the tube. Every
// face is the quad (i,j), (i+1,j), (i+1,j+1), (i,j+1) with wraparound.
func Torus(majorRadius, minorRadius float64, majorSegments, minorSegments int) *meshgen.Mesh {
	assert(majorRadius > 0, "torus major radius <= 0")
	assert(minorRadius > 0, "torus minor radius <= 0")
	assert(majorSegments >= 3, "torus major segments < 3")
	assert(minorSegments >= 3, "torus minor segments < 3")
	n := majorSegments * minorSegments
	m := &meshgen.Mesh{
		Vertices: make([]r3.Vec, 0, n),
		Faces:    make([]meshgen.Face, 0, n),
	}
	tube := ring(minorRadius, 0, minorSegments)
	for i := 0; i < majorSegments; i++ {
		theta := tau * float64(i) / float64(majorSegments)
		for _, t := range tube {
			// t.X is r*cos(phi) and t.Y is r*sin(phi).
			m.Vertices = append(m.Vertices, d3.Polar(majorRadius+t.X, theta, t.Y))
		}
	}
	idx := func(i, j int) int {
		return (i%majorSegments)*minorSegments + j%minorSegments
	}
	for i := 0; i < majorSegments; i++ {
		for j := 0; j < minorSegments; j++ {
			m.Faces = append(m.Faces, meshgen.Face{idx(i, j), idx(i+1, j), idx(i+1, j+1), idx(i, j+1)})
		}
	}
	return mustValid(m)
}

// Pyramid returns a square based pyramid with its base centered on the
// origin and its apex at (0, 0, height).
func Pyramid(baseSize, height float64) *meshgen.Mesh {
	assert(baseSize > 0, "pyramid base <= 0")
	assert(height > 0, "pyramid height <= 0")
	s := baseSize / 2
	m := &meshgen.Mesh{
		Vertices: []r3.Vec{
			{X: s, Y: s},
			{X: -s, Y: s},
			{X: -s, Y: -s},
			{X: s, Y: -s},
			{Z: height},
		},
		Faces: []meshgen.Face{
			{3, 2, 1, 0},
			{0, 1, 4},
			{1, 2, 4},
			{2, 3, 4},
			{3, 0, 4},
		},
	}
	return mustValid(m)
}

// Gear returns a toothed disc of the given depth. Tooth tips lie on the
// outer radius and the gaps between them on the inner radius.
func Gear(teeth int, innerRadius, outerRadius, depth float64) *meshgen.Mesh {
	return mustValid(RadialPrism(teeth, innerRadius, outerRadius, depth))
}

// Star returns an extruded star with the given number of points.
func Star(points int, innerRadius, outerRadius, depth float64) *meshgen.Mesh {
	return mustValid(RadialPrism(points, innerRadius, outerRadius, depth))
}
