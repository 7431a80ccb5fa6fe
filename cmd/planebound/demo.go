package main

import (
	"fmt"
	"io"
	"math"

	"github.com/golang/geo/r3"
	"github.com/philipparndt/planebound/pkg/geometry"
	"github.com/spf13/cobra"
)

func newDemoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through the plane and rectangle checks on example shapes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runDemo(cmd.OutOrStdout(), opts)
			return nil
		},
	}
}

func runDemo(w io.Writer, opts *options) {
	// x+2y+3z = 0
	plane := geometry.NewPlane(r3.Vector{X: 1, Y: 2, Z: 3}, 0)
	plane.Describe(w)
	zero := r3.Vector{}
	fmt.Fprintf(w, "Does the point %s lie on the plane %v\n", geometry.FormatVector(zero), plane.IsOnPlane(zero))

	// Translation of the standard basis by (1, 1, 1)
	oriented := geometry.NewOrientedPlane(
		r3.Vector{X: 1, Y: 1, Z: 1},
		r3.Vector{X: 2, Y: 1, Z: 1},
		r3.Vector{X: 1, Y: 2, Z: 1},
		r3.Vector{X: 1, Y: 1, Z: 2},
	)
	oriented.Describe(w)
	for _, p := range []r3.Vector{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 1}} {
		fmt.Fprintf(w, "Does the point %s lie on the oriented plane %v\n", geometry.FormatVector(p), oriented.IsOnPlane(p))
	}

	rect := geometry.NewRectangleBound(oriented, 1, 1)
	rect.Describe(w)
	// (1.5, 1, 1) is local (0.5, 0): inside. (2.5, 1, 1) is local (1.5, 0): outside.
	for _, p := range []r3.Vector{{X: 1.5, Y: 1, Z: 1}, {X: 2.5, Y: 1, Z: 1}} {
		fmt.Fprintf(w, "Does the point %s lie on the rectangle bound %v\n", geometry.FormatVector(p), rect.Contains(p))
	}

	// 30 degree anti-clockwise rotation of the local axes
	angle := math.Pi / 6
	cos, sin := math.Cos(angle), math.Sin(angle)
	rotated := geometry.NewOrientedPlane(
		r3.Vector{X: 1, Y: 1, Z: 1},
		r3.Vector{X: 1 + cos, Y: 2 - sin, Z: 1},
		r3.Vector{X: 2 + sin, Y: 1 + cos, Z: 1},
		r3.Vector{X: 1, Y: 1, Z: 2},
	)
	rotatedRect := geometry.NewRectangleBound(rotated, 1, 1)
	rotatedRect.Describe(w)

	// (1, 1, 0) carried onto the edge of the rotated rectangle
	corner := r3.Vector{X: cos - sin + 1, Y: cos + sin + 1, Z: 1}
	fmt.Fprintf(w, "Local coordinates of %s are %s\n", geometry.FormatVector(corner), geometry.FormatPoint(rotated.ToLocal2D(corner)))
	fmt.Fprintf(w, "Does the point %s lie on the rectangle bound %v\n", geometry.FormatVector(corner), rotatedRect.Contains(corner))

	opts.dumpTo(w, plane, rect, rotatedRect)
}
