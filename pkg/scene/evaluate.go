package scene

import (
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/philipparndt/planebound/pkg/geometry"
)

// Kind identifies the type of shape a Result refers to
type Kind string

const (
	KindPlane     Kind = "plane"
	KindOriented  Kind = "oriented"
	KindRectangle Kind = "rectangle"
)

// Result is the outcome of testing one point against one shape.
// Local is only meaningful for oriented planes and rectangles; it holds
// geometry.OffPlane when the point is not on the plane.
type Result struct {
	Shape string
	Kind  Kind
	Point string
	At    r3.Vector
	Hit   bool
	Local r2.Point
}

// Evaluate tests every point against every shape, shapes in file order with
// planes first, then oriented planes, then rectangles.
func (s *Scene) Evaluate() []Result {
	results := make([]Result, 0, s.ShapeCount()*len(s.Points))

	for _, plane := range s.Planes {
		for _, p := range s.Points {
			results = append(results, Result{
				Shape: plane.Name,
				Kind:  KindPlane,
				Point: p.Name,
				At:    p.Shape,
				Hit:   plane.Shape.IsOnPlane(p.Shape),
				Local: geometry.OffPlane,
			})
		}
	}

	for _, o := range s.Oriented {
		for _, p := range s.Points {
			local, ok := o.Shape.Local(p.Shape)
			results = append(results, Result{
				Shape: o.Name,
				Kind:  KindOriented,
				Point: p.Name,
				At:    p.Shape,
				Hit:   ok,
				Local: local,
			})
		}
	}

	for _, r := range s.Rectangles {
		for _, p := range s.Points {
			results = append(results, Result{
				Shape: r.Name,
				Kind:  KindRectangle,
				Point: p.Name,
				At:    p.Shape,
				Hit:   r.Shape.Contains(p.Shape),
				Local: r.Shape.Plane.ToLocal2D(p.Shape),
			})
		}
	}

	return results
}

// Hits counts the results whose point was on or inside the shape
func Hits(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Hit {
			n++
		}
	}
	return n
}
