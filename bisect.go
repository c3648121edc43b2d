package meshgen

import (
	"log/slog"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Plane is an infinite plane through Point. Normal points toward the side
// that Bisect discards and need not be unit length.
type Plane struct {
	Point  r3.Vec
	Normal r3.Vec
}

// Distance returns the signed distance from v to the plane, positive on
// the side Normal points to.
func (p Plane) Distance(v r3.Vec) float64 {
	return r3.Dot(r3.Sub(v, p.Point), r3.Unit(p.Normal))
}

// Bisect clips m by the plane and returns the part behind it.
//
// Vertices with signed distance greater than a small tolerance are
// discarded. Faces straddling the plane are clipped polygon by polygon and
// the vertices introduced on a crossed edge are shared by both faces using
// that edge. Faces left with fewer than three distinct vertices are dropped.
// When fill is true each open boundary loop lying in the plane is closed by
// a single polygon whose normal points along p.Normal.
//
// Surviving input vertices keep their relative order and are followed by the
// vertices created on the plane. m is not modified.
func Bisect(m *Mesh, p Plane, fill bool) (*Mesh, error) {
	if r3.Norm(p.Normal) == 0 || badVec(p.Normal) || badVec(p.Point) {
		return nil, &DegenerateError{Face: -1, Reason: "bisect plane has no direction"}
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	nv := len(m.Vertices)
	dist := make([]float64, nv)
	side := make([]int, nv) // -1 kept, 0 on plane, 1 discarded.
	for i, v := range m.Vertices {
		d := p.Distance(v)
		dist[i] = d
		switch {
		case d > epsilon:
			side[i] = 1
		case d < -epsilon:
			side[i] = -1
		}
	}

	// Provisional indices: kept input vertices first, in input order.
	out := &Mesh{}
	remap := make([]int, nv)
	for i := range m.Vertices {
		remap[i] = -1
		if side[i] <= 0 {
			remap[i] = len(out.Vertices)
			out.Vertices = append(out.Vertices, m.Vertices[i])
		}
	}
	cuts := make(map[[2]int]int)
	cut := func(a, b int) int {
		key := [2]int{a, b}
		if a > b {
			key = [2]int{b, a}
		}
		if idx, ok := cuts[key]; ok {
			return idx
		}
		// Interpolate from the lower index so both faces sharing the edge
		// compute the exact same point.
		lo, hi := key[0], key[1]
		t := dist[lo] / (dist[lo] - dist[hi])
		v := r3.Add(m.Vertices[lo], r3.Scale(t, r3.Sub(m.Vertices[hi], m.Vertices[lo])))
		idx := len(out.Vertices)
		out.Vertices = append(out.Vertices, v)
		cuts[key] = idx
		return idx
	}

	for _, f := range m.Faces {
		poly := make(Face, 0, len(f)+1)
		for k, a := range f {
			b := f[(k+1)%len(f)]
			if side[a] <= 0 {
				poly = append(poly, remap[a])
			}
			if side[a]*side[b] < 0 {
				poly = append(poly, cut(a, b))
			}
		}
		poly = dropRepeats(poly)
		if distinct(poly) < 3 {
			continue
		}
		out.Faces = append(out.Faces, poly)
	}

	if fill {
		loops, err := boundaryLoops(out.Faces)
		if err != nil {
			return nil, err
		}
		capped := 0
		for _, loop := range loops {
			if len(loop) < 3 || !onPlane(out.Vertices, loop, p) {
				continue
			}
			lid := make(Face, len(loop))
			for i, idx := range loop {
				lid[len(loop)-1-i] = idx
			}
			out.Faces = append(out.Faces, lid)
			capped++
		}
		Logger().Debug("bisect filled", slog.Int("loops", len(loops)), slog.Int("capped", capped))
	}
	out = compact(out)
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// dropRepeats removes consecutive duplicate indices, including the wrap
// from last to first.
func dropRepeats(f Face) Face {
	if len(f) == 0 {
		return f
	}
	out := f[:1]
	for _, idx := range f[1:] {
		if idx != out[len(out)-1] {
			out = append(out, idx)
		}
	}
	for len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}

// boundaryLoops returns the chains of directed edges that have no opposing
// twin, each as a closed loop in the direction the faces traverse them.
// Loops are returned in the order their first edge appears in faces.
func boundaryLoops(faces []Face) ([][]int, error) {
	edges := make(map[[2]int]struct{})
	for _, f := range faces {
		for k, a := range f {
			edges[[2]int{a, f[(k+1)%len(f)]}] = struct{}{}
		}
	}
	next := make(map[int]int)
	var starts []int
	for _, f := range faces {
		for k, a := range f {
			b := f[(k+1)%len(f)]
			if _, twin := edges[[2]int{b, a}]; twin {
				continue
			}
			if prev, dup := next[a]; dup && prev != b {
				return nil, &DegenerateError{Face: -1, Reason: "boundary is not manifold at cut"}
			}
			if _, seen := next[a]; !seen {
				starts = append(starts, a)
			}
			next[a] = b
		}
	}
	visited := make(map[int]bool)
	var loops [][]int
	for _, start := range starts {
		if visited[start] {
			continue
		}
		var loop []int
		for v := start; !visited[v]; {
			visited[v] = true
			loop = append(loop, v)
			n, ok := next[v]
			if !ok {
				return nil, &DegenerateError{Face: -1, Reason: "open boundary does not close"}
			}
			v = n
		}
		loops = append(loops, loop)
	}
	return loops, nil
}

func onPlane(verts []r3.Vec, loop []int, p Plane) bool {
	for _, idx := range loop {
		if math.Abs(p.Distance(verts[idx])) > planeTol {
			return false
		}
	}
	return true
}

// compact removes vertices not referenced by any face while preserving the
// order of the remaining ones.
func compact(m *Mesh) *Mesh {
	used := make([]bool, len(m.Vertices))
	for _, f := range m.Faces {
		for _, idx := range f {
			used[idx] = true
		}
	}
	remap := make([]int, len(m.Vertices))
	out := &Mesh{Faces: m.Faces}
	for i, v := range m.Vertices {
		remap[i] = -1
		if used[i] {
			remap[i] = len(out.Vertices)
			out.Vertices = append(out.Vertices, v)
		}
	}
	for _, f := range out.Faces {
		for j, idx := range f {
			f[j] = remap[idx]
		}
	}
	return out
}
