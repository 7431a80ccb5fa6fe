package geometry

import (
	"errors"
	"fmt"
	"math"
)

// ValidationError describes a violated precondition of a shape
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks that the handles define a proper frame: every displacement
// from Origin is non-zero and the normal is not coplanar with the local axes.
// The geometry operations never call it themselves.
func (p OrientedPlane) Validate() []ValidationError {
	var errs []ValidationError

	axes := []struct {
		field string
		v     float64
	}{
		{"hx", p.XAxis().Norm()},
		{"hy", p.YAxis().Norm()},
		{"hz", p.Normal().Norm()},
	}
	degenerate := false
	for _, a := range axes {
		if ApproxZero(a.v) {
			degenerate = true
			errs = append(errs, ValidationError{
				Field:   a.field,
				Message: "handle coincides with origin",
			})
		}
	}
	if degenerate {
		return errs
	}

	if ApproxZero(p.Normal().Dot(p.XAxis().Cross(p.YAxis()))) {
		errs = append(errs, ValidationError{
			Field:   "hz",
			Message: "normal lies in the plane spanned by hx and hy",
		})
	}

	return errs
}

// Validate checks the plane and that both half-extents are positive
func (b RectangleBound) Validate() []ValidationError {
	errs := b.Plane.Validate()

	if !(b.HalfX > 0) || math.IsInf(b.HalfX, 0) {
		errs = append(errs, ValidationError{
			Field:   "half_x",
			Message: fmt.Sprintf("half-extent is %g, must be positive and finite", b.HalfX),
		})
	}
	if !(b.HalfY > 0) || math.IsInf(b.HalfY, 0) {
		errs = append(errs, ValidationError{
			Field:   "half_y",
			Message: fmt.Sprintf("half-extent is %g, must be positive and finite", b.HalfY),
		})
	}

	return errs
}

// Join combines validation errors into a single error, or nil if there are none
func Join(errs []ValidationError) error {
	if len(errs) == 0 {
		return nil
	}
	joined := make([]error, len(errs))
	for i, e := range errs {
		joined[i] = e
	}
	return errors.Join(joined...)
}
