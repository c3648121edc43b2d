package d3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// R3 helpers shared by the mesh builders and consumers.

// Elem returns a vector with all components set to v.
func Elem(v float64) r3.Vec {
	return r3.Vec{X: v, Y: v, Z: v}
}

// EqualWithin reports whether every component of a and b differs by at most tol.
func EqualWithin(a, b r3.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

// MinElem return a vector with the minimum components of two vectors.
func MinElem(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}

// Polar returns the point at angle theta on the circle of the given radius
// lying in the plane z.
func Polar(radius, theta, z float64) r3.Vec {
	s, c := math.Sincos(theta)
	return r3.Vec{X: radius * c, Y: radius * s, Z: z}
}

// Newell returns the Newell normal of the closed polygon pts. Its length is
// twice the polygon area and its direction follows the right-hand rule.
func Newell(pts []r3.Vec) r3.Vec {
	var n r3.Vec
	for i, cur := range pts {
		next := pts[(i+1)%len(pts)]
		n.X += (cur.Y - next.Y) * (cur.Z + next.Z)
		n.Y += (cur.Z - next.Z) * (cur.X + next.X)
		n.Z += (cur.X - next.X) * (cur.Y + next.Y)
	}
	return n
}
