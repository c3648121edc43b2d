package meshgen_test

import (
	"errors"
	"math"
	"testing"

	"github.com/soypat/meshgen"
	"github.com/soypat/meshgen/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

func unitSquare(z float64) *meshgen.Mesh {
	return &meshgen.Mesh{
		Vertices: []r3.Vec{{X: 0, Z: z}, {X: 1, Z: z}, {X: 1, Y: 1, Z: z}, {Y: 1, Z: z}},
		Faces:    []meshgen.Face{{0, 1, 2, 3}},
	}
}

func tetrahedron() *meshgen.Mesh {
	return &meshgen.Mesh{
		Vertices: []r3.Vec{{}, {X: 1}, {Y: 1}, {Z: 1}},
		Faces: []meshgen.Face{
			{0, 2, 1},
			{0, 1, 3},
			{1, 2, 3},
			{2, 0, 3},
		},
	}
}

func TestJoin(t *testing.T) {
	a := unitSquare(0)
	b := tetrahedron()
	got := meshgen.Join(a, nil, b)
	if got.VertexCount() != 8 || got.FaceCount() != 5 {
		t.Fatalf("got %d vertices %d faces, want 8 and 5", got.VertexCount(), got.FaceCount())
	}
	for i, f := range b.Faces {
		jf := got.Faces[len(a.Faces)+i]
		for j := range f {
			if jf[j] != f[j]+4 {
				t.Errorf("face %d index %d: got %d, want %d", i, j, jf[j], f[j]+4)
			}
		}
	}
	if err := got.Validate(); err != nil {
		t.Error(err)
	}
	// Inputs untouched.
	if b.Faces[0][0] != 0 || a.VertexCount() != 4 {
		t.Error("Join modified its inputs")
	}
	if empty := meshgen.Join(); empty.VertexCount() != 0 || empty.FaceCount() != 0 {
		t.Error("joining nothing should give an empty mesh")
	}
}

func TestValidate(t *testing.T) {
	for _, test := range []struct {
		name string
		mesh *meshgen.Mesh
		want error
	}{
		{name: "valid", mesh: tetrahedron()},
		{name: "empty", mesh: &meshgen.Mesh{}},
		{
			name: "index out of range",
			mesh: &meshgen.Mesh{Vertices: []r3.Vec{{}, {X: 1}, {Y: 1}}, Faces: []meshgen.Face{{0, 1, 3}}},
			want: meshgen.ErrIndex,
		},
		{
			name: "negative index",
			mesh: &meshgen.Mesh{Vertices: []r3.Vec{{}, {X: 1}, {Y: 1}}, Faces: []meshgen.Face{{0, -1, 2}}},
			want: meshgen.ErrIndex,
		},
		{
			name: "two vertices",
			mesh: &meshgen.Mesh{Vertices: []r3.Vec{{}, {X: 1}}, Faces: []meshgen.Face{{0, 1}}},
			want: meshgen.ErrDegenerate,
		},
		{
			name: "repeated vertex",
			mesh: &meshgen.Mesh{Vertices: []r3.Vec{{}, {X: 1}, {Y: 1}}, Faces: []meshgen.Face{{0, 1, 1}}},
			want: meshgen.ErrDegenerate,
		},
		{
			name: "collinear",
			mesh: &meshgen.Mesh{Vertices: []r3.Vec{{}, {X: 1}, {X: 2}}, Faces: []meshgen.Face{{0, 1, 2}}},
			want: meshgen.ErrDegenerate,
		},
		{
			name: "NaN vertex",
			mesh: &meshgen.Mesh{Vertices: []r3.Vec{{X: math.NaN()}}},
			want: meshgen.ErrDegenerate,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			err := test.mesh.Validate()
			if test.want == nil {
				if err != nil {
					t.Fatal(err)
				}
				return
			}
			if !errors.Is(err, test.want) {
				t.Fatalf("got %v, want %v", err, test.want)
			}
		})
	}
}

func TestIndexErrorFields(t *testing.T) {
	m := &meshgen.Mesh{Vertices: []r3.Vec{{}, {X: 1}, {Y: 1}}, Faces: []meshgen.Face{{0, 1, 2}, {0, 1, 7}}}
	var ie *meshgen.IndexError
	if err := m.Validate(); !errors.As(err, &ie) {
		t.Fatalf("got %v, want *IndexError", err)
	}
	if ie.Face != 1 || ie.Index != 7 || ie.VertexCount != 3 {
		t.Errorf("got %+v", ie)
	}
}

func TestMeshGeometry(t *testing.T) {
	m := unitSquare(2)
	if n := m.FaceNormal(0); !d3.EqualWithin(n, r3.Vec{Z: 1}, 1e-12) {
		t.Errorf("normal %v, want +Z", n)
	}
	if a := m.FaceArea(0); math.Abs(a-1) > 1e-12 {
		t.Errorf("area %g, want 1", a)
	}
	bb := m.Bounds()
	if !d3.EqualWithin(bb.Min, r3.Vec{Z: 2}, 0) || !d3.EqualWithin(bb.Max, r3.Vec{X: 1, Y: 1, Z: 2}, 0) {
		t.Errorf("bounds %v", bb)
	}
	if bb := (&meshgen.Mesh{}).Bounds(); bb != (r3.Box{}) {
		t.Errorf("empty mesh bounds %v", bb)
	}

	moved := m.Translate(r3.Vec{X: 1})
	if moved.Vertices[0].X != 1 || m.Vertices[0].X != 0 {
		t.Error("Translate should return a moved copy")
	}
	clone := m.Clone()
	clone.Faces[0][0] = 3
	if m.Faces[0][0] != 0 {
		t.Error("Clone shares face storage")
	}
}

func TestRangeError(t *testing.T) {
	err := meshgen.CheckFloat("radius", 0.001, 0.01, 10)
	var re *meshgen.RangeError
	if !errors.As(err, &re) || !errors.Is(err, meshgen.ErrOutOfRange) {
		t.Fatalf("got %v", err)
	}
	if re.Bound() != 0.01 {
		t.Errorf("bound %g, want 0.01", re.Bound())
	}
	if err := meshgen.CheckFloat("radius", math.NaN(), 0.01, 10); err == nil {
		t.Error("NaN accepted")
	}
	if err := meshgen.CheckInt("segments", 65, 3, 64); !errors.As(err, &re) || re.Bound() != 64 {
		t.Errorf("got %v", err)
	}
	if err := meshgen.CheckInt("segments", 64, 3, 64); err != nil {
		t.Error(err)
	}
}

func TestClamp(t *testing.T) {
	for _, test := range []struct{ x, want float64 }{
		{-1, 0}, {0.5, 0.5}, {2, 1}, {math.NaN(), 0},
	} {
		if got := meshgen.Clamp(test.x, 0, 1); got != test.want {
			t.Errorf("Clamp(%g) = %g, want %g", test.x, got, test.want)
		}
	}
}
