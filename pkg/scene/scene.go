// Package scene loads shapes and query points from YAML or TOML files and
// evaluates every query against every shape.
package scene

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/philipparndt/planebound/pkg/geometry"
)

// Vec is a 3D vector as written in a scene file: a list of three numbers
type Vec []float64

// Vector converts v to an r3.Vector
func (v Vec) Vector() (r3.Vector, error) {
	if len(v) != 3 {
		return r3.Vector{}, fmt.Errorf("expected 3 components, got %d", len(v))
	}
	return r3.Vector{X: v[0], Y: v[1], Z: v[2]}, nil
}

// PlaneSpec describes an infinite plane n.v + offset = 0
type PlaneSpec struct {
	Name   string  `yaml:"name" toml:"name"`
	Normal Vec     `yaml:"normal" toml:"normal"`
	Offset float64 `yaml:"offset" toml:"offset"`
}

// FrameSpec describes an oriented plane by its origin and handle points
type FrameSpec struct {
	Name   string `yaml:"name" toml:"name"`
	Origin Vec    `yaml:"origin" toml:"origin"`
	HX     Vec    `yaml:"hx" toml:"hx"`
	HY     Vec    `yaml:"hy" toml:"hy"`
	HZ     Vec    `yaml:"hz" toml:"hz"`
}

// RectangleSpec describes a rectangle bound on an oriented plane
type RectangleSpec struct {
	Name  string    `yaml:"name" toml:"name"`
	Plane FrameSpec `yaml:"plane" toml:"plane"`
	HalfX float64   `yaml:"half_x" toml:"half_x"`
	HalfY float64   `yaml:"half_y" toml:"half_y"`
}

// PointSpec is a named query point
type PointSpec struct {
	Name string `yaml:"name" toml:"name"`
	At   Vec    `yaml:"at" toml:"at"`
}

// File is the on-disk layout of a scene
type File struct {
	Planes     []PlaneSpec     `yaml:"planes" toml:"planes"`
	Oriented   []FrameSpec     `yaml:"oriented" toml:"oriented"`
	Rectangles []RectangleSpec `yaml:"rectangles" toml:"rectangles"`
	Points     []PointSpec     `yaml:"points" toml:"points"`
}

// Named pairs a geometry value with the name it was given in the file
type Named[T any] struct {
	Name  string
	Shape T
}

// Scene holds the resolved shapes and query points of a scene file
type Scene struct {
	Planes     []Named[geometry.Plane]
	Oriented   []Named[geometry.OrientedPlane]
	Rectangles []Named[geometry.RectangleBound]
	Points     []Named[r3.Vector]
}

// ShapeCount returns the number of shapes in the scene
func (s *Scene) ShapeCount() int {
	return len(s.Planes) + len(s.Oriented) + len(s.Rectangles)
}

func (f FrameSpec) resolve() (geometry.OrientedPlane, error) {
	origin, err := f.Origin.Vector()
	if err != nil {
		return geometry.OrientedPlane{}, fmt.Errorf("origin: %w", err)
	}
	hx, err := f.HX.Vector()
	if err != nil {
		return geometry.OrientedPlane{}, fmt.Errorf("hx: %w", err)
	}
	hy, err := f.HY.Vector()
	if err != nil {
		return geometry.OrientedPlane{}, fmt.Errorf("hy: %w", err)
	}
	hz, err := f.HZ.Vector()
	if err != nil {
		return geometry.OrientedPlane{}, fmt.Errorf("hz: %w", err)
	}
	return geometry.NewOrientedPlane(origin, hx, hy, hz), nil
}

// Resolve converts the file layout into geometry values and validates every
// shape. Unnamed entries get a name derived from their kind and position.
func (f *File) Resolve() (*Scene, error) {
	s := &Scene{}

	for i, p := range f.Planes {
		name := nameOr(p.Name, "plane", i)
		n, err := p.Normal.Vector()
		if err != nil {
			return nil, fmt.Errorf("plane %s: normal: %w", name, err)
		}
		if geometry.ApproxZero(n.Norm()) {
			return nil, fmt.Errorf("plane %s: normal must be non-zero", name)
		}
		s.Planes = append(s.Planes, Named[geometry.Plane]{Name: name, Shape: geometry.NewPlane(n, p.Offset)})
	}

	for i, o := range f.Oriented {
		name := nameOr(o.Name, "oriented", i)
		plane, err := o.resolve()
		if err != nil {
			return nil, fmt.Errorf("oriented plane %s: %w", name, err)
		}
		if err := geometry.Join(plane.Validate()); err != nil {
			return nil, fmt.Errorf("oriented plane %s: %w", name, err)
		}
		s.Oriented = append(s.Oriented, Named[geometry.OrientedPlane]{Name: name, Shape: plane})
	}

	for i, r := range f.Rectangles {
		name := nameOr(r.Name, "rectangle", i)
		plane, err := r.Plane.resolve()
		if err != nil {
			return nil, fmt.Errorf("rectangle %s: %w", name, err)
		}
		rect := geometry.NewRectangleBound(plane, r.HalfX, r.HalfY)
		if err := geometry.Join(rect.Validate()); err != nil {
			return nil, fmt.Errorf("rectangle %s: %w", name, err)
		}
		s.Rectangles = append(s.Rectangles, Named[geometry.RectangleBound]{Name: name, Shape: rect})
	}

	for i, p := range f.Points {
		name := nameOr(p.Name, "point", i)
		v, err := p.At.Vector()
		if err != nil {
			return nil, fmt.Errorf("point %s: %w", name, err)
		}
		s.Points = append(s.Points, Named[r3.Vector]{Name: name, Shape: v})
	}

	return s, nil
}

func nameOr(name, kind string, index int) string {
	if name != "" {
		return name
	}
	return fmt.Sprintf("%s#%d", kind, index+1)
}
