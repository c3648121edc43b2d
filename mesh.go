// Package meshgen holds the polygon mesh value types shared by the shape
// builders in form3 along with the operations used to compose them: joining
// pre-aligned pieces and bisecting a mesh by a plane.
//
// Meshes are built relative to a local origin with Z up. Faces are wound
// counter-clockwise when seen from outside the solid.
package meshgen

import (
	"math"
	"strconv"

	"github.com/soypat/meshgen/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Face is an ordered list of vertex indices describing a planar or
// near-planar polygon. Winding follows the right-hand rule.
type Face []int

// Mesh is an ordered vertex list plus a polygon list referencing it.
// A vertex index is its position in Vertices and is stable for the
// lifetime of the mesh.
type Mesh struct {
	Vertices []r3.Vec
	Faces    []Face
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Vertices) }

// FaceCount returns the number of faces.
func (m *Mesh) FaceCount() int { return len(m.Faces) }

// Bounds returns the axis aligned bounding box of the vertices.
// An empty mesh returns the zero box.
func (m *Mesh) Bounds() r3.Box {
	if len(m.Vertices) == 0 {
		return r3.Box{}
	}
	bb := d3.EmptyBox()
	for _, v := range m.Vertices {
		bb = bb.Include(v)
	}
	return r3.Box(bb)
}

// Clone returns a deep copy of m.
func (m *Mesh) Clone() *Mesh {
	out := &Mesh{
		Vertices: append([]r3.Vec(nil), m.Vertices...),
		Faces:    make([]Face, len(m.Faces)),
	}
	for i, f := range m.Faces {
		out.Faces[i] = append(Face(nil), f...)
	}
	return out
}

// Translate returns a copy of m with every vertex moved by v.
func (m *Mesh) Translate(v r3.Vec) *Mesh {
	out := m.Clone()
	for i := range out.Vertices {
		out.Vertices[i] = r3.Add(out.Vertices[i], v)
	}
	return out
}

// FacePoints returns the positions of face i's vertices in winding order.
func (m *Mesh) FacePoints(i int) []r3.Vec {
	f := m.Faces[i]
	pts := make([]r3.Vec, len(f))
	for j, idx := range f {
		pts[j] = m.Vertices[idx]
	}
	return pts
}

// FaceNormal returns the unit normal of face i. Degenerate faces return
// the zero vector.
func (m *Mesh) FaceNormal(i int) r3.Vec {
	n := d3.Newell(m.FacePoints(i))
	l := r3.Norm(n)
	if l == 0 {
		return r3.Vec{}
	}
	return r3.Scale(1/l, n)
}

// FaceArea returns the area of face i.
func (m *Mesh) FaceArea(i int) float64 {
	return r3.Norm(d3.Newell(m.FacePoints(i))) / 2
}

// Validate checks the mesh invariants: every face index references an
// existing vertex, every face has at least three distinct vertices and a
// non-zero area, and no vertex coordinate is NaN or infinite.
// The returned error matches ErrIndex or ErrDegenerate.
func (m *Mesh) Validate() error {
	for i, v := range m.Vertices {
		if badVec(v) {
			return &DegenerateError{Face: -1, Reason: "vertex " + strconv.Itoa(i) + " is not finite"}
		}
	}
	n := len(m.Vertices)
	for i, f := range m.Faces {
		if len(f) < 3 {
			return &DegenerateError{Face: i, Reason: "fewer than 3 vertices"}
		}
		for _, idx := range f {
			if idx < 0 || idx >= n {
				return &IndexError{Face: i, Index: idx, VertexCount: n}
			}
		}
		if distinct(f) < 3 {
			return &DegenerateError{Face: i, Reason: "fewer than 3 distinct vertices"}
		}
		if m.FaceArea(i) < areaTol {
			return &DegenerateError{Face: i, Reason: "zero area"}
		}
	}
	return nil
}

func distinct(f Face) int {
	count := 0
	for i, idx := range f {
		seen := false
		for _, prev := range f[:i] {
			if prev == idx {
				seen = true
				break
			}
		}
		if !seen {
			count++
		}
	}
	return count
}

func badVec(v r3.Vec) bool {
	return math.IsNaN(v.X) || math.IsInf(v.X, 0) ||
		math.IsNaN(v.Y) || math.IsInf(v.Y, 0) ||
		math.IsNaN(v.Z) || math.IsInf(v.Z, 0)
}
