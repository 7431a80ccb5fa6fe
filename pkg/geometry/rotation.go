package geometry

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
)

// NewRotatedPlane creates a plane parallel to the global XY plane through
// origin, with its local axes rotated counter-clockwise by angle about the
// global z axis. All handles sit at unit distance from origin.
func NewRotatedPlane(origin r3.Vector, angle s1.Angle) OrientedPlane {
	rot := mgl64.Rotate3DZ(angle.Radians())
	x := rot.Mul3x1(mgl64.Vec3{1, 0, 0})
	y := rot.Mul3x1(mgl64.Vec3{0, 1, 0})

	return NewOrientedPlane(
		origin,
		origin.Add(fromVec3(x)),
		origin.Add(fromVec3(y)),
		origin.Add(r3.Vector{X: 0, Y: 0, Z: 1}),
	)
}

// Rotation returns the unsigned angle between the local x axis and the
// global x axis, in [0, pi].
func (p OrientedPlane) Rotation() s1.Angle {
	return p.XAxis().Angle(r3.Vector{X: 1, Y: 0, Z: 0})
}

func fromVec3(v mgl64.Vec3) r3.Vector {
	return r3.Vector{X: v.X(), Y: v.Y(), Z: v.Z()}
}
