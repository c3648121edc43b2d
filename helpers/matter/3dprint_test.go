package matter

import (
	"math"
	"testing"

	"github.com/soypat/meshgen/form3"
)

func TestLookup(t *testing.T) {
	for _, name := range []string{"pla", "PETG", "Abs"} {
		m, err := Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		if m.shrink <= 0 {
			t.Errorf("%s: shrink %g", name, m.shrink)
		}
	}
	if _, err := Lookup("wood"); err == nil {
		t.Error("expected error for unknown material")
	}
}

func TestScale(t *testing.T) {
	p := form3.DefaultPyramid()
	m, err := form3.BuildPyramid(p)
	if err != nil {
		t.Fatal(err)
	}
	scaled := PLA.Scale(m)
	want := p.Height / (1 - PLA.shrink)
	if got := scaled.Vertices[4].Z; math.Abs(got-want) > 1e-12 {
		t.Errorf("apex z %g, want %g", got, want)
	}
	if m.Vertices[4].Z != p.Height {
		t.Error("Scale modified its input")
	}
	if scaled.FaceCount() != m.FaceCount() {
		t.Error("Scale changed faces")
	}
}

func TestInternalDimScale(t *testing.T) {
	got := PLA.InternalDimScale(10)
	if want := 10*(1+PLA.shrink) + PLA.pullShrink; got != want {
		t.Errorf("got %g, want %g", got, want)
	}
}
