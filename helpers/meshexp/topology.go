package meshexp

import (
	"github.com/soypat/meshgen"
	"gonum.org/v1/gonum/spatial/r3"
)

// EdgeReport summarizes how the faces of a mesh share their edges.
// Edges are identified by vertex index, so unwelded seams count as
// boundary.
type EdgeReport struct {
	// Edges is the number of distinct undirected edges.
	Edges int
	// Boundary edges are used by a single face.
	Boundary int
	// NonManifold edges are used by more than two faces.
	NonManifold int
	// Inconsistent edges are used by two faces traversing them in the
	// same direction, which means one of the faces is flipped.
	Inconsistent int
}

// Closed reports whether every edge is shared by exactly two faces with
// opposite winding.
func (r EdgeReport) Closed() bool {
	return r.Boundary == 0 && r.NonManifold == 0 && r.Inconsistent == 0
}

// Edges returns the edge report of m.
func Edges(m *meshgen.Mesh) EdgeReport {
	type use struct{ forward, backward int }
	uses := make(map[[2]int]*use)
	for _, f := range m.Faces {
		for k, a := range f {
			b := f[(k+1)%len(f)]
			key, forward := [2]int{a, b}, true
			if a > b {
				key, forward = [2]int{b, a}, false
			}
			u := uses[key]
			if u == nil {
				u = &use{}
				uses[key] = u
			}
			if forward {
				u.forward++
			} else {
				u.backward++
			}
		}
	}
	r := EdgeReport{Edges: len(uses)}
	for _, u := range uses {
		switch total := u.forward + u.backward; {
		case total == 1:
			r.Boundary++
		case total > 2:
			r.NonManifold++
		case u.forward != 1:
			r.Inconsistent++
		}
	}
	return r
}

// Components returns the number of face groups connected through shared
// vertices.
func Components(m *meshgen.Mesh) int {
	parent := make([]int, len(m.Vertices))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}
	used := make([]bool, len(m.Vertices))
	for _, f := range m.Faces {
		root := find(f[0])
		for _, idx := range f {
			used[idx] = true
			parent[find(idx)] = root
		}
	}
	count := 0
	for i := range parent {
		if used[i] && find(i) == i {
			count++
		}
	}
	return count
}

// Volume returns the signed volume enclosed by m. It is positive for a
// closed mesh whose faces are wound counter-clockwise seen from outside.
func Volume(m *meshgen.Mesh) (float64, error) {
	tris, err := m.Triangles()
	if err != nil {
		return 0, err
	}
	var vol float64
	for _, t := range tris {
		vol += r3.Dot(t[0], r3.Cross(t[1], t[2]))
	}
	return vol / 6, nil
}

// Area returns the total surface area of m.
func Area(m *meshgen.Mesh) float64 {
	var area float64
	for i := range m.Faces {
		area += m.FaceArea(i)
	}
	return area
}
