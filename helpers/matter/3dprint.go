package matter

import (
	"fmt"
	"strings"

	"github.com/soypat/meshgen"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// PLA (polylactic acid) is the most widely used plastic filament material in 3D printing.
	PLA = ViscousMaterial{name: "pla", shrink: 0.2e-2, pullShrink: .45} // 0.2% shrinkage
	// PETG shrinks slightly more than PLA once cooled.
	PETG = ViscousMaterial{name: "petg", shrink: 0.4e-2, pullShrink: .3}
	// ABS shrinks noticeably and is usually printed enclosed.
	ABS = ViscousMaterial{name: "abs", shrink: 0.7e-2, pullShrink: .5}
)

var materials = []ViscousMaterial{PLA, PETG, ABS}

type ViscousMaterial struct {
	name string
	// shrink is the thermal contraction shrinkage of a material once the material
	// cools to room temperature after the heated bed is turned off.
	shrink float64
	// pullShrink takes into account viscoelastic shrinkage.
	pullShrink float64
}

// Lookup returns the material with the given name, case-insensitively.
func Lookup(name string) (ViscousMaterial, error) {
	for _, m := range materials {
		if strings.EqualFold(name, m.name) {
			return m, nil
		}
	}
	return ViscousMaterial{}, fmt.Errorf("unknown material %q", name)
}

func (m ViscousMaterial) String() string { return m.name }

// Scale returns a copy of mesh scaled about the origin so that it
// measures as modelled once printed and cooled.
func (m ViscousMaterial) Scale(mesh *meshgen.Mesh) *meshgen.Mesh {
	scale := 1 / (1 - m.shrink)
	out := mesh.Clone()
	for i, v := range out.Vertices {
		out.Vertices[i] = r3.Scale(scale, v)
	}
	return out
}

// InternalDimScale returns the modelled size for an internal dimension
// such as a hole so it prints at the real size.
func (m ViscousMaterial) InternalDimScale(real float64) float64 {
	if real <= 0 {
		panic("InternalDimScale only works for non-zero dimensions")
	}
	return real*(m.shrink+1) + m.pullShrink
}
