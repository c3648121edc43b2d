package must3

import (
	"math"

	"github.com/soypat/meshgen"
	"github.com/soypat/meshgen/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

const tau = 2 * math.Pi

func assert(cond bool, reason string) {
	if !cond {
		panic(&meshgen.DegenerateError{Face: -1, Reason: reason})
	}
}

// mustValid panics with the validation error of m if there is one.
func mustValid(m *meshgen.Mesh) *meshgen.Mesh {
	if err := m.Validate(); err != nil {
		panic(err)
	}
	return m
}

// ring returns n points on a circle of the given radius at height z,
// counter-clockwise seen from +Z starting on the +X axis.
func ring(radius, z float64, n int) []r3.Vec {
	pts := make([]r3.Vec, n)
	for i := range pts {
		pts[i] = d3.Polar(radius, tau*float64(i)/float64(n), z)
	}
	return pts
}

// Cone returns an n sided cone centered on the origin. The base ring is
// the first n vertices and the apex is last. With apexUp the apex sits at
// +height/2 and the base at -height/2, otherwise the other way around.
func Cone(radius, height float64, n int, apexUp bool) *meshgen.Mesh {
	assert(radius > 0, "cone radius <= 0")
	assert(height > 0, "cone height <= 0")
	assert(n >= 3, "cone sides < 3")
	half := height / 2
	baseZ, apexZ := -half, half
	if !apexUp {
		baseZ, apexZ = half, -half
	}
	m := &meshgen.Mesh{
		Vertices: append(ring(radius, baseZ, n), r3.Vec{Z: apexZ}),
		Faces:    make([]meshgen.Face, 0, n+1),
	}
	apex := n
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		if apexUp {
			m.Faces = append(m.Faces, meshgen.Face{i, next, apex})
		} else {
			m.Faces = append(m.Faces, meshgen.Face{next, i, apex})
		}
	}
	base := make(meshgen.Face, n)
	for i := range base {
		if apexUp {
			base[i] = n - 1 - i
		} else {
			base[i] = i
		}
	}
	m.Faces = append(m.Faces, base)
	return m
}

// Cylinder returns an n sided cylinder centered on the origin with its axis
// along Z. Vertices 0..n-1 form the bottom ring and n..2n-1 the top ring.
func Cylinder(radius, height float64, n int) *meshgen.Mesh {
	assert(radius > 0, "cylinder radius <= 0")
	assert(height > 0, "cylinder height <= 0")
	assert(n >= 3, "cylinder sides < 3")
	m := &meshgen.Mesh{
		Vertices: append(ring(radius, -height/2, n), ring(radius, height/2, n)...),
		Faces:    make([]meshgen.Face, 0, n+2),
	}
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		m.Faces = append(m.Faces, meshgen.Face{i, next, n + next, n + i})
	}
	top := make(meshgen.Face, n)
	bottom := make(meshgen.Face, n)
	for i := 0; i < n; i++ {
		top[i] = n + i
		bottom[i] = n - 1 - i
	}
	m.Faces = append(m.Faces, top, bottom)
	return m
}

// UVSphere returns a sphere centered on the origin made of segments
// meridians and rings parallels counted pole to pole. Vertex 0 is the north
// pole, ring k (1 <= k < rings) occupies indices 1+(k-1)*segments onwards
// and the south pole is last. The mesh has 2+(rings-1)*segments vertices
// and segments*rings faces.
func UVSphere(radius float64, segments, rings int) *meshgen.Mesh {
	assert(radius > 0, "sphere radius <= 0")
	assert(segments >= 3, "sphere segments < 3")
	assert(rings >= 2, "sphere rings < 2")
	nv := 2 + (rings-1)*segments
	m := &meshgen.Mesh{
		Vertices: make([]r3.Vec, 0, nv),
		Faces:    make([]meshgen.Face, 0, segments*rings),
	}
	m.Vertices = append(m.Vertices, r3.Vec{Z: radius})
	for k := 1; k < rings; k++ {
		phi := tau / 2 * float64(k) / float64(rings)
		s, c := math.Sincos(phi)
		m.Vertices = append(m.Vertices, ring(radius*s, radius*c, segments)...)
	}
	m.Vertices = append(m.Vertices, r3.Vec{Z: -radius})

	north, south := 0, nv-1
	at := func(k, j int) int { return 1 + (k-1)*segments + j%segments }
	for j := 0; j < segments; j++ {
		m.Faces = append(m.Faces, meshgen.Face{north, at(1, j), at(1, j+1)})
	}
	for k := 1; k < rings-1; k++ {
		for j := 0; j < segments; j++ {
			m.Faces = append(m.Faces, meshgen.Face{at(k, j), at(k+1, j), at(k+1, j+1), at(k, j+1)})
		}
	}
	for j := 0; j < segments; j++ {
		m.Faces = append(m.Faces, meshgen.Face{at(rings-1, j), south, at(rings-1, j+1)})
	}
	return m
}

// RadialPrism extrudes a polygon of 2*n corners alternating between
// outer (even corners) and inner (odd corners) radius into a prism of the
// given depth centered on the XY plane. Corner i sits at angle i*pi/n with
// its top vertex at index 2i and its bottom vertex at 2i+1. The result has
// 4n vertices and 2n+2 faces.
func RadialPrism(n int, inner, outer, depth float64) *meshgen.Mesh {
	assert(n >= 3, "prism points < 3")
	assert(inner > 0, "prism inner radius <= 0")
	assert(outer > 0, "prism outer radius <= 0")
	assert(depth > 0, "prism depth <= 0")
	corners := 2 * n
	m := &meshgen.Mesh{
		Vertices: make([]r3.Vec, 0, 2*corners),
		Faces:    make([]meshgen.Face, 0, corners+2),
	}
	for i := 0; i < corners; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		theta := tau / 2 * float64(i) / float64(n)
		m.Vertices = append(m.Vertices, d3.Polar(r, theta, depth/2), d3.Polar(r, theta, -depth/2))
	}
	total := 2 * corners
	for i := 0; i < corners; i++ {
		next := (2*i + 2) % total
		m.Faces = append(m.Faces, meshgen.Face{2 * i, 2*i + 1, next + 1, next})
	}
	top := make(meshgen.Face, corners)
	bottom := make(meshgen.Face, corners)
	for i := 0; i < corners; i++ {
		top[i] = 2 * i
		bottom[i] = 2*(corners-1-i) + 1
	}
	m.Faces = append(m.Faces, top, bottom)
	return m
}
