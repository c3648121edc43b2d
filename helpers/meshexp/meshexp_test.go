package meshexp

import (
	"math"
	"testing"

	"github.com/soypat/meshgen"
	"github.com/soypat/meshgen/form3/must3"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestWeldSpindle(t *testing.T) {
	const n = 12
	m := must3.Spindle(1, 2, n)
	if Components(m) != 2 {
		t.Fatalf("unwelded spindle should have two components")
	}
	welded, err := Weld(m, 1e-9)
	if err != nil {
		t.Fatal(err)
	}
	if welded.VertexCount() != n+2 || welded.FaceCount() != 2*n+2 {
		t.Errorf("got %d vertices %d faces, want %d and %d", welded.VertexCount(), welded.FaceCount(), n+2, 2*n+2)
	}
	if err := welded.Validate(); err != nil {
		t.Fatal(err)
	}
	if c := Components(welded); c != 1 {
		t.Errorf("got %d components after weld, want 1", c)
	}
	// Both base caps now sit on the shared ring.
	if r := Edges(welded); r.NonManifold != n {
		t.Errorf("got %d non-manifold edges, want %d", r.NonManifold, n)
	}
	// First vertex of each cluster survives in order.
	for i := 0; i <= n; i++ {
		if welded.Vertices[i] != m.Vertices[i] {
			t.Errorf("vertex %d moved", i)
		}
	}
}

func TestWeldCollapse(t *testing.T) {
	m := &meshgen.Mesh{
		Vertices: []r3.Vec{{}, {X: 1}, {X: 1, Y: 1e-6}, {X: 1, Y: 1}, {X: 2}},
		Faces: []meshgen.Face{
			{0, 1, 2, 3},
			{1, 4, 2},
		},
	}
	welded, err := Weld(m, 1e-3)
	if err != nil {
		t.Fatal(err)
	}
	if welded.VertexCount() != 4 {
		t.Errorf("got %d vertices, want 4", welded.VertexCount())
	}
	if welded.FaceCount() != 1 {
		t.Fatalf("got %d faces, want 1", welded.FaceCount())
	}
	if got := welded.Faces[0]; len(got) != 3 || got[0] != 0 || got[1] != 1 || got[2] != 2 {
		t.Errorf("got face %v, want [0 1 2]", got)
	}
	if _, err := Weld(m, -1); err == nil {
		t.Error("expected error for negative tolerance")
	}
}

func TestEdgesTetrahedron(t *testing.T) {
	m := &meshgen.Mesh{
		Vertices: []r3.Vec{{}, {X: 1}, {Y: 1}, {Z: 1}},
		Faces:    []meshgen.Face{{0, 2, 1}, {0, 1, 3}, {1, 2, 3}, {0, 3, 2}},
	}
	r := Edges(m)
	if r.Edges != 6 || !r.Closed() {
		t.Errorf("got %+v, want 6 closed edges", r)
	}
	m.Faces[3] = meshgen.Face{0, 2, 3}
	if r := Edges(m); r.Inconsistent != 3 {
		t.Errorf("flipped face: got %+v, want 3 inconsistent edges", r)
	}
	m.Faces = m.Faces[:3]
	if r := Edges(m); r.Boundary != 3 || r.Closed() {
		t.Errorf("open mesh: got %+v, want 3 boundary edges", r)
	}
	vol, err := Volume(&meshgen.Mesh{
		Vertices: m.Vertices,
		Faces:    []meshgen.Face{{0, 2, 1}, {0, 1, 3}, {1, 2, 3}, {0, 3, 2}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(vol-1.0/6) > 1e-12 {
		t.Errorf("volume %g, want 1/6", vol)
	}
}

func TestPyramidMeasures(t *testing.T) {
	m := must3.Pyramid(1, 1.5)
	vol, err := Volume(m)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(vol-0.5) > 1e-12 {
		t.Errorf("volume %g, want 0.5", vol)
	}
	if want := 1 + 2*math.Sqrt(2.5); math.Abs(Area(m)-want) > 1e-12 {
		t.Errorf("area %g, want %g", Area(m), want)
	}
	if c := Components(m); c != 1 {
		t.Errorf("got %d components", c)
	}
}
