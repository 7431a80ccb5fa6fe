package geometry

import (
	"fmt"
	"io"

	"github.com/golang/geo/r3"
)

// Plane is an infinite plane given by the equation dot(N, v) + B = 0.
// It carries no local frame; see OrientedPlane for that.
type Plane struct {
	N r3.Vector
	B float64
}

// NewPlane creates a plane with normal n and offset b
func NewPlane(n r3.Vector, b float64) Plane {
	return Plane{N: n, B: b}
}

// IsOnPlane reports whether v satisfies the plane equation within Epsilon
func (p Plane) IsOnPlane(v r3.Vector) bool {
	return ApproxZero(v.Dot(p.N) + p.B)
}

// Equation returns the plane equation in the form "ax+by+cz + d = 0"
func (p Plane) Equation() string {
	return fmt.Sprintf("%gx+%gy+%gz + %g = 0", p.N.X, p.N.Y, p.N.Z, p.B)
}

func (p Plane) String() string {
	return "Plane{" + p.Equation() + "}"
}

// Describe writes a human readable dump of the plane
func (p Plane) Describe(w io.Writer) {
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, "Printing the Information about the Plane")
	fmt.Fprintln(w, p.Equation())
	fmt.Fprintln(w, banner)
}
