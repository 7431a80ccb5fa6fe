package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/philipparndt/planebound/pkg/geometry"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// parseComponents splits "1,2,3" into n floats
func parseComponents(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d comma separated numbers, got %q", n, s)
	}
	out := make([]float64, n)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", part, err)
		}
		out[i] = v
	}
	return out, nil
}

// vectorValue is a pflag.Value holding a 3D vector written as "x,y,z"
type vectorValue struct {
	v *r3.Vector
}

var _ pflag.Value = vectorValue{}

func (f vectorValue) String() string {
	if f.v == nil {
		return ""
	}
	return fmt.Sprintf("%g,%g,%g", f.v.X, f.v.Y, f.v.Z)
}

func (f vectorValue) Set(s string) error {
	c, err := parseComponents(s, 3)
	if err != nil {
		return err
	}
	*f.v = r3.Vector{X: c[0], Y: c[1], Z: c[2]}
	return nil
}

func (f vectorValue) Type() string { return "x,y,z" }

// pointValue is a pflag.Value holding a 2D point written as "x,y"
type pointValue struct {
	p *r2.Point
}

var _ pflag.Value = pointValue{}

func (f pointValue) String() string {
	if f.p == nil {
		return ""
	}
	return fmt.Sprintf("%g,%g", f.p.X, f.p.Y)
}

func (f pointValue) Set(s string) error {
	c, err := parseComponents(s, 2)
	if err != nil {
		return err
	}
	*f.p = r2.Point{X: c[0], Y: c[1]}
	return nil
}

func (f pointValue) Type() string { return "x,y" }

// frameFlags binds the four points of an oriented plane to command flags.
// The defaults describe the unit frame translated to (1, 1, 1).
type frameFlags struct {
	origin, hx, hy, hz r3.Vector
}

func newFrameFlags() *frameFlags {
	return &frameFlags{
		origin: r3.Vector{X: 1, Y: 1, Z: 1},
		hx:     r3.Vector{X: 2, Y: 1, Z: 1},
		hy:     r3.Vector{X: 1, Y: 2, Z: 1},
		hz:     r3.Vector{X: 1, Y: 1, Z: 2},
	}
}

func (f *frameFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.Var(vectorValue{&f.origin}, "origin", "Origin of the local frame")
	flags.Var(vectorValue{&f.hx}, "hx", "Handle point defining the local x axis")
	flags.Var(vectorValue{&f.hy}, "hy", "Handle point defining the local y axis")
	flags.Var(vectorValue{&f.hz}, "hz", "Handle point defining the normal")
}

func (f *frameFlags) plane() geometry.OrientedPlane {
	return geometry.NewOrientedPlane(f.origin, f.hx, f.hy, f.hz)
}
