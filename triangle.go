package meshgen

import (
	"math"

	"github.com/soypat/meshgen/internal/d3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle is a 3D triangle wound counter-clockwise when seen from the side
// its normal points to.
type Triangle [3]r3.Vec

// Normal returns the unit normal of the triangle, or the zero vector for a
// degenerate triangle.
func (t Triangle) Normal() r3.Vec {
	n := r3.Cross(r3.Sub(t[1], t[0]), r3.Sub(t[2], t[0]))
	l := r3.Norm(n)
	if l == 0 {
		return r3.Vec{}
	}
	return r3.Scale(1/l, n)
}

// Degenerate returns true if any two vertices are within tol of each other.
func (t Triangle) Degenerate(tol float64) bool {
	return r3.Norm(r3.Sub(t[0], t[1])) <= tol ||
		r3.Norm(r3.Sub(t[1], t[2])) <= tol ||
		r3.Norm(r3.Sub(t[2], t[0])) <= tol
}

// Triangles splits every face of m into triangles with the same winding.
// Triangles and quads are fanned, larger polygons are ear clipped after
// projecting them onto their dominant plane, which handles the concave
// gear and star caps.
func (m *Mesh) Triangles() ([]Triangle, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	var out []Triangle
	for i := range m.Faces {
		pts := m.FacePoints(i)
		switch len(pts) {
		case 3:
			out = append(out, Triangle{pts[0], pts[1], pts[2]})
		case 4:
			out = appendQuad(out, pts)
		default:
			idx, err := earClip(pts)
			if err != nil {
				return nil, &DegenerateError{Face: i, Reason: err.Error()}
			}
			for k := 0; k < len(idx); k += 3 {
				out = append(out, Triangle{pts[idx[k]], pts[idx[k+1]], pts[idx[k+2]]})
			}
		}
	}
	return out, nil
}

// appendQuad splits the quad along the shorter diagonal, which keeps
// non-planar torus quads closer to their true surface.
func appendQuad(dst []Triangle, q []r3.Vec) []Triangle {
	d02 := r3.Norm(r3.Sub(q[2], q[0]))
	d13 := r3.Norm(r3.Sub(q[3], q[1]))
	if d02 <= d13 {
		return append(dst, Triangle{q[0], q[1], q[2]}, Triangle{q[0], q[2], q[3]})
	}
	return append(dst, Triangle{q[0], q[1], q[3]}, Triangle{q[1], q[2], q[3]})
}

type triangulateErr string

func (e triangulateErr) Error() string { return string(e) }

// earClip triangulates a simple polygon and returns vertex index triples
// into pts. Corners where the outline runs straight are dropped first so
// no zero area triangle is emitted.
func earClip(pts []r3.Vec) ([]int, error) {
	n := d3.Newell(pts)
	if r3.Norm(n) == 0 {
		return nil, triangulateErr("polygon has no normal")
	}
	poly := project(pts, n)
	remaining := make([]int, len(pts))
	for i := range remaining {
		remaining[i] = i
	}
	tris := make([]int, 0, 3*(len(pts)-2))
	for len(remaining) > 3 {
		if k := straightCorner(poly, remaining); k >= 0 {
			remaining = append(remaining[:k], remaining[k+1:]...)
			continue
		}
		clipped := false
		for k := range remaining {
			a := remaining[(k+len(remaining)-1)%len(remaining)]
			b := remaining[k]
			c := remaining[(k+1)%len(remaining)]
			if !isEar(poly, remaining, a, b, c) {
				continue
			}
			tris = append(tris, a, b, c)
			remaining = append(remaining[:k], remaining[k+1:]...)
			clipped = true
			break
		}
		if !clipped {
			return nil, triangulateErr("polygon is not simple")
		}
	}
	return append(tris, remaining[0], remaining[1], remaining[2]), nil
}

func isEar(poly []r2.Vec, remaining []int, a, b, c int) bool {
	pa, pb, pc := poly[a], poly[b], poly[c]
	if cross2(pa, pb, pc) <= 0 {
		return false // Reflex or collinear corner.
	}
	for _, k := range remaining {
		if k == a || k == b || k == c {
			continue
		}
		p := poly[k]
		if cross2(pa, pb, p) >= 0 && cross2(pb, pc, p) >= 0 && cross2(pc, pa, p) >= 0 {
			return false
		}
	}
	return true
}

// straightCorner returns the position in remaining of a corner whose
// neighbours are collinear with it, or -1.
func straightCorner(poly []r2.Vec, remaining []int) int {
	for k := range remaining {
		a := poly[remaining[(k+len(remaining)-1)%len(remaining)]]
		b := poly[remaining[k]]
		c := poly[remaining[(k+1)%len(remaining)]]
		if collinear(a, b, c) {
			return k
		}
	}
	return -1
}

// collinear reports whether a, b and c lie on one line, up to a relative
// tolerance of epsilon.
func collinear(a, b, c r2.Vec) bool {
	scale := r2.Norm(r2.Sub(b, a)) * r2.Norm(r2.Sub(c, a))
	return math.Abs(cross2(a, b, c)) <= epsilon*scale
}

func cross2(a, b, c r2.Vec) float64 {
	u, v := r2.Sub(b, a), r2.Sub(c, a)
	return u.X*v.Y - u.Y*v.X
}

// project drops the dominant axis of normal n so the polygon keeps its
// counter-clockwise orientation in 2D.
func project(pts []r3.Vec, n r3.Vec) []r2.Vec {
	ax, ay, az := math.Abs(n.X), math.Abs(n.Y), math.Abs(n.Z)
	out := make([]r2.Vec, len(pts))
	for i, p := range pts {
		switch {
		case az >= ax && az >= ay:
			out[i] = r2.Vec{X: p.X, Y: p.Y}
			if n.Z < 0 {
				out[i].X = -out[i].X
			}
		case ax >= ay:
			out[i] = r2.Vec{X: p.Y, Y: p.Z}
			if n.X < 0 {
				out[i].X = -out[i].X
			}
		default:
			out[i] = r2.Vec{X: p.Z, Y: p.X}
			if n.Y < 0 {
				out[i].X = -out[i].X
			}
		}
	}
	return out
}
