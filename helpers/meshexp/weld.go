// Package meshexp provides tooling for meshes produced by form3 that sits
// outside the builders themselves: vertex welding, edge topology checks and
// volume measurement.
package meshexp

import (
	"errors"
	"log/slog"

	"github.com/soypat/meshgen"
	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

// Weld merges vertices closer than tol to each other and returns the
// resulting mesh. The first vertex of each cluster in input order is kept,
// so surviving vertices keep their relative order. Repeated consecutive
// indices are removed from each face; faces left with fewer than three
// vertices or that revisit a vertex are dropped.
func Weld(m *meshgen.Mesh, tol float64) (*meshgen.Mesh, error) {
	if tol < 0 {
		return nil, errors.New("negative weld tolerance")
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if len(m.Vertices) == 0 {
		return m.Clone(), nil
	}
	pts := make(weldPoints, len(m.Vertices))
	for i, v := range m.Vertices {
		pts[i] = weldPoint{v: v, idx: i}
	}
	// kdtree.New permutes pts, idx keeps track of the original position.
	tree := kdtree.New(pts, false)

	remap := make([]int, len(m.Vertices))
	for i := range remap {
		remap[i] = -1
	}
	out := &meshgen.Mesh{}
	tol2 := tol * tol
	for i, v := range m.Vertices {
		if remap[i] >= 0 {
			continue
		}
		newIdx := len(out.Vertices)
		out.Vertices = append(out.Vertices, v)
		remap[i] = newIdx
		keep := kdtree.NewDistKeeper(tol2)
		tree.NearestSet(keep, weldPoint{v: v})
		for _, c := range keep.Heap {
			if c.Comparable == nil {
				continue // sentinel
			}
			p := c.Comparable.(weldPoint)
			if remap[p.idx] < 0 {
				remap[p.idx] = newIdx
			}
		}
	}

	dropped := 0
	for _, f := range m.Faces {
		nf := make(meshgen.Face, 0, len(f))
		for _, idx := range f {
			r := remap[idx]
			if len(nf) > 0 && nf[len(nf)-1] == r {
				continue
			}
			nf = append(nf, r)
		}
		if len(nf) > 1 && nf[0] == nf[len(nf)-1] {
			nf = nf[:len(nf)-1]
		}
		if !uniqueAtLeast3(nf) {
			dropped++
			continue
		}
		out.Faces = append(out.Faces, nf)
	}
	meshgen.Logger().Debug("welded mesh",
		slog.Int("vertices_in", len(m.Vertices)),
		slog.Int("vertices_out", len(out.Vertices)),
		slog.Int("faces_dropped", dropped),
	)
	return out, nil
}

func uniqueAtLeast3(f meshgen.Face) bool {
	seen := make(map[int]struct{}, len(f))
	for _, idx := range f {
		seen[idx] = struct{}{}
	}
	return len(seen) >= 3 && len(seen) == len(f)
}

type weldPoint struct {
	v   r3.Vec
	idx int
}

func (p weldPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(weldPoint)
	switch d {
	case 0:
		return p.v.X - q.v.X
	case 1:
		return p.v.Y - q.v.Y
	case 2:
		return p.v.Z - q.v.Z
	}
	panic("unreachable")
}

func (p weldPoint) Dims() int { return 3 }

// Distance returns the squared distance between points.
func (p weldPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(weldPoint)
	return r3.Norm2(r3.Sub(p.v, q.v))
}

type weldPoints []weldPoint

func (w weldPoints) Index(i int) kdtree.Comparable { return w[i] }
func (w weldPoints) Len() int                      { return len(w) }
func (w weldPoints) Slice(start, end int) kdtree.Interface {
	return w[start:end]
}

func (w weldPoints) Pivot(d kdtree.Dim) int {
	p := kdPlane{dim: d, points: w}
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}

type kdPlane struct {
	dim    kdtree.Dim
	points weldPoints
}

func (p kdPlane) Less(i, j int) bool {
	return p.points[i].Compare(p.points[j], p.dim) < 0
}
func (p kdPlane) Swap(i, j int) {
	p.points[i], p.points[j] = p.points[j], p.points[i]
}
func (p kdPlane) Len() int {
	return len(p.points)
}
func (p kdPlane) Slice(start, end int) kdtree.SortSlicer {
	p.points = p.points[start:end]
	return p
}
