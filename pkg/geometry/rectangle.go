package geometry

import (
	"fmt"
	"io"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// RectangleBound is a rectangle centered on the origin of an oriented plane,
// extending HalfX along the local x axis and HalfY along the local y axis in
// both directions. HalfX and HalfY are expected to be positive.
type RectangleBound struct {
	Plane OrientedPlane
	HalfX float64
	HalfY float64
}

// NewRectangleBound creates a rectangle bound on the given plane
func NewRectangleBound(plane OrientedPlane, halfX, halfY float64) RectangleBound {
	return RectangleBound{Plane: plane, HalfX: halfX, HalfY: halfY}
}

// Bounds returns the rectangle in local coordinates
func (b RectangleBound) Bounds() r2.Rect {
	return r2.Rect{
		X: r1.Interval{Lo: -b.HalfX, Hi: b.HalfX},
		Y: r1.Interval{Lo: -b.HalfY, Hi: b.HalfY},
	}
}

// Contains reports whether v lies on the plane and inside the rectangle.
// Edges are inclusive.
func (b RectangleBound) Contains(v r3.Vector) bool {
	if !b.Plane.IsOnPlane(v) {
		return false
	}
	// OffPlane and NaN coordinates never fall inside a finite interval.
	return b.Bounds().ContainsPoint(b.Plane.ToLocal2D(v))
}

func (b RectangleBound) String() string {
	return fmt.Sprintf("RectangleBound{%s h_x=%g h_y=%g}", b.Plane, b.HalfX, b.HalfY)
}

// Describe writes a human readable dump of the rectangle
func (b RectangleBound) Describe(w io.Writer) {
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, "Printing Information about the rectangle surface")
	b.Plane.describeHandles(w)
	fmt.Fprintf(w, "h_x = %g\n", b.HalfX)
	fmt.Fprintf(w, "h_y = %g\n", b.HalfY)
	fmt.Fprintln(w, banner)
}
