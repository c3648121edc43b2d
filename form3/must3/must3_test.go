package must3

import (
	"errors"
	"math"
	"testing"

	"github.com/soypat/meshgen"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestPrimitiveCounts(t *testing.T) {
	for _, test := range []struct {
		name         string
		mesh         *meshgen.Mesh
		verts, faces int
		minZ, maxZ   float64
	}{
		{name: "cone up", mesh: Cone(1, 2, 7, true), verts: 8, faces: 8, minZ: -1, maxZ: 1},
		{name: "cone down", mesh: Cone(1, 2, 7, false), verts: 8, faces: 8, minZ: -1, maxZ: 1},
		{name: "cylinder", mesh: Cylinder(1, 3, 5), verts: 10, faces: 7, minZ: -1.5, maxZ: 1.5},
		{name: "sphere", mesh: UVSphere(2, 6, 4), verts: 2 + 3*6, faces: 24, minZ: -2, maxZ: 2},
		{name: "prism", mesh: RadialPrism(4, 0.5, 1, 0.2), verts: 16, faces: 10, minZ: -0.1, maxZ: 0.1},
	} {
		t.Run(test.name, func(t *testing.T) {
			m := test.mesh
			if err := m.Validate(); err != nil {
				t.Fatal(err)
			}
			if m.VertexCount() != test.verts || m.FaceCount() != test.faces {
				t.Errorf("got %d vertices %d faces, want %d and %d", m.VertexCount(), m.FaceCount(), test.verts, test.faces)
			}
			bb := m.Bounds()
			if math.Abs(bb.Min.Z-test.minZ) > 1e-12 || math.Abs(bb.Max.Z-test.maxZ) > 1e-12 {
				t.Errorf("z range [%g, %g], want [%g, %g]", bb.Min.Z, bb.Max.Z, test.minZ, test.maxZ)
			}
		})
	}
}

func TestConeWinding(t *testing.T) {
	up := Cone(1, 1, 6, true)
	// Base faces down, sides face away from the axis.
	if n := up.FaceNormal(up.FaceCount() - 1); n.Z > -1+1e-12 {
		t.Errorf("apex-up base normal %v, want -Z", n)
	}
	down := Cone(1, 1, 6, false)
	if n := down.FaceNormal(down.FaceCount() - 1); n.Z < 1-1e-12 {
		t.Errorf("apex-down base normal %v, want +Z", n)
	}
	for _, m := range []*meshgen.Mesh{up, down} {
		for i := 0; i < 6; i++ {
			c := centroid(m, i)
			n := m.FaceNormal(i)
			if c.X*n.X+c.Y*n.Y <= 0 {
				t.Errorf("side %d normal %v points inward", i, n)
			}
		}
	}
}

func TestRadialPrismLayout(t *testing.T) {
	const n = 5
	m := RadialPrism(n, 0.5, 1, 0.3)
	for i := 0; i < 2*n; i++ {
		top, bottom := m.Vertices[2*i], m.Vertices[2*i+1]
		wantR := 1.0
		if i%2 == 1 {
			wantR = 0.5
		}
		if r := math.Hypot(top.X, top.Y); math.Abs(r-wantR) > 1e-12 {
			t.Errorf("corner %d radius %g, want %g", i, r, wantR)
		}
		if top.Z != 0.15 || bottom.Z != -0.15 || top.X != bottom.X || top.Y != bottom.Y {
			t.Errorf("corner %d top %v bottom %v", i, top, bottom)
		}
	}
	top, bottom := m.Faces[2*n], m.Faces[2*n+1]
	if top[0] != 0 || top[1] != 2 || bottom[0] != 4*n-1 || bottom[len(bottom)-1] != 1 {
		t.Errorf("cap faces top %v bottom %v", top, bottom)
	}
}

func TestAssertPanics(t *testing.T) {
	for _, test := range []struct {
		name string
		fn   func()
	}{
		{"cone radius", func() { Cone(0, 1, 3, true) }},
		{"cone sides", func() { Cone(1, 1, 2, true) }},
		{"cylinder height", func() { Cylinder(1, -1, 3) }},
		{"sphere rings", func() { UVSphere(1, 3, 1) }},
		{"prism points", func() { RadialPrism(2, 1, 1, 1) }},
		{"pyramid base", func() { Pyramid(0, 1) }},
		{"torus minor", func() { Torus(1, 0, 3, 3) }},
		{"capsule height", func() { Capsule(1, 0, 3, 3) }},
	} {
		t.Run(test.name, func(t *testing.T) {
			defer func() {
				a := recover()
				err, ok := a.(error)
				if !ok || !errors.Is(err, meshgen.ErrDegenerate) {
					t.Errorf("got panic %v, want ErrDegenerate", a)
				}
			}()
			test.fn()
		})
	}
}

func centroid(m *meshgen.Mesh, face int) r3.Vec {
	var c r3.Vec
	pts := m.FacePoints(face)
	for _, p := range pts {
		c = r3.Add(c, p)
	}
	return r3.Scale(1/float64(len(pts)), c)
}
