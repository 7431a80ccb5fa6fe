package geometry

import (
	"fmt"
	"io"
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// OffPlane is returned by ToLocal2D for points that do not lie on the plane.
// Both coordinates are +Inf, so any comparison against a finite bound fails.
var OffPlane = r2.Point{X: math.Inf(1), Y: math.Inf(1)}

// OrientedPlane is a plane carrying a local 2D coordinate frame.
//
// Origin is the zero of the local frame. The handle points HX, HY and HZ are
// absolute positions; their displacements from Origin give the local x axis,
// the local y axis and the normal direction respectively.
//
// The handles must be distinct from Origin and HZ-Origin must not lie in the
// span of the other two displacements. This is not checked on construction;
// call Validate when the input is untrusted.
type OrientedPlane struct {
	Origin r3.Vector
	HX     r3.Vector
	HY     r3.Vector
	HZ     r3.Vector
}

// NewOrientedPlane creates an oriented plane from its origin and handle points
func NewOrientedPlane(origin, hx, hy, hz r3.Vector) OrientedPlane {
	return OrientedPlane{Origin: origin, HX: hx, HY: hy, HZ: hz}
}

// XAxis returns the local x direction HX-Origin (not normalized)
func (p OrientedPlane) XAxis() r3.Vector {
	return p.HX.Sub(p.Origin)
}

// YAxis returns the local y direction HY-Origin (not normalized)
func (p OrientedPlane) YAxis() r3.Vector {
	return p.HY.Sub(p.Origin)
}

// Normal returns the normal direction HZ-Origin (not normalized)
func (p OrientedPlane) Normal() r3.Vector {
	return p.HZ.Sub(p.Origin)
}

// IsOnPlane reports whether v lies on the plane.
//
// The test is dot(HZ-Origin, Origin-v) == 0 within Epsilon. The normal is not
// normalized, so the effective tolerance scales with |HZ-Origin|.
func (p OrientedPlane) IsOnPlane(v r3.Vector) bool {
	return ApproxZero(p.Normal().Dot(p.Origin.Sub(v)))
}

// ToLocal2D maps a point on the plane to its local 2D coordinates.
//
// Points off the plane map to OffPlane. The angle to the local x axis is
// recovered with acos and therefore lies in [0, pi]: a point and its mirror
// image across the local x axis yield the same non-negative y. HY is not
// used to pick the sign.
//
// If v coincides with Origin, or HX coincides with Origin, the angle is
// undefined and the result is NaN. Callers must not rely on any other value.
func (p OrientedPlane) ToLocal2D(v r3.Vector) r2.Point {
	if !p.IsOnPlane(v) {
		return OffPlane
	}

	ov := v.Sub(p.Origin)
	r := ov.Norm()

	ox := p.XAxis()
	l := ox.Norm()

	// Rounding can push the cosine just past +-1 for points on the x axis.
	// Clamping keeps those finite; 0/0 stays NaN.
	cos := math.Max(-1, math.Min(1, ox.Dot(ov)/(r*l)))
	theta := math.Acos(cos)

	return r2.Point{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
}

// Local is the comma-ok form of ToLocal2D. ok is false when v is off the
// plane, in which case the returned point is OffPlane.
func (p OrientedPlane) Local(v r3.Vector) (r2.Point, bool) {
	if !p.IsOnPlane(v) {
		return OffPlane, false
	}
	return p.ToLocal2D(v), true
}

// ToGlobal3D lifts local coordinates back to the global frame as
// Origin + ((x, y, 0) - Origin).
//
// The origin terms cancel, so the result is (x, y, 0) regardless of the
// frame. It undoes ToLocal2D only for a frame aligned with the global axes
// and for points with non-negative local y; rotated frames are not inverted.
func (p OrientedPlane) ToGlobal3D(q r2.Point) r3.Vector {
	extended := r3.Vector{X: q.X, Y: q.Y, Z: 0}
	ov := extended.Sub(p.Origin)
	return p.Origin.Add(ov)
}

func (p OrientedPlane) String() string {
	return fmt.Sprintf("OrientedPlane{origin=%s hx=%s hy=%s hz=%s}",
		FormatVector(p.Origin), FormatVector(p.HX), FormatVector(p.HY), FormatVector(p.HZ))
}

// Describe writes a human readable dump of the plane and its handles
func (p OrientedPlane) Describe(w io.Writer) {
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, "Printing the Information about the Plane")
	p.describeHandles(w)
	fmt.Fprintln(w, banner)
}

func (p OrientedPlane) describeHandles(w io.Writer) {
	fmt.Fprintf(w, "origin = %s\n", FormatVector(p.Origin))
	fmt.Fprintf(w, "hx = %s\n", FormatVector(p.HX))
	fmt.Fprintf(w, "hy = %s\n", FormatVector(p.HY))
	fmt.Fprintf(w, "hz = %s\n", FormatVector(p.HZ))
}
