package main

import (
	"fmt"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/philipparndt/planebound/pkg/geometry"
	"github.com/spf13/cobra"
)

func newProjectCmd(opts *options) *cobra.Command {
	frame := newFrameFlags()
	var point r3.Vector

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Map a global point to local coordinates on an oriented plane",
		Long: `Map a point given in global coordinates to the 2D coordinates of an oriented
plane. The local y coordinate is never negative: the angle to the local x axis
is recovered with acos, so mirror images across the x axis coincide.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			plane := frame.plane()

			local, ok := plane.Local(point)
			if !ok {
				fmt.Fprintf(out, "Point %s is off the plane\n", geometry.FormatVector(point))
			} else {
				fmt.Fprintf(out, "Point %s has local coordinates %s\n", geometry.FormatVector(point), geometry.FormatPoint(local))
			}

			opts.dumpTo(out, plane, local)
			return nil
		},
	}

	frame.register(cmd)
	cmd.Flags().Var(vectorValue{&point}, "point", "Point to project")
	_ = cmd.MarkFlagRequired("point")

	return cmd
}

func newLiftCmd(opts *options) *cobra.Command {
	frame := newFrameFlags()
	var local r2.Point

	cmd := &cobra.Command{
		Use:   "lift",
		Short: "Map local coordinates on an oriented plane to a global point",
		Long: `Map local 2D coordinates back to the global frame. This only inverts
"project" for a frame aligned with the global axes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			plane := frame.plane()

			global := plane.ToGlobal3D(local)
			fmt.Fprintf(out, "Local %s is global point %s\n", geometry.FormatPoint(local), geometry.FormatVector(global))

			opts.dumpTo(out, plane, global)
			return nil
		},
	}

	frame.register(cmd)
	cmd.Flags().Var(pointValue{&local}, "local", "Local coordinates to lift")
	_ = cmd.MarkFlagRequired("local")

	return cmd
}

func newContainsCmd(opts *options) *cobra.Command {
	frame := newFrameFlags()
	var point r3.Vector
	var halfX, halfY float64

	cmd := &cobra.Command{
		Use:   "contains",
		Short: "Check whether a point lies inside a rectangle on an oriented plane",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			rect := geometry.NewRectangleBound(frame.plane(), halfX, halfY)
			if err := geometry.Join(rect.Validate()); err != nil {
				return fmt.Errorf("invalid rectangle: %w", err)
			}

			fmt.Fprintf(out, "Does the point %s lie on the rectangle bound %v\n", geometry.FormatVector(point), rect.Contains(point))

			opts.dumpTo(out, rect)
			return nil
		},
	}

	frame.register(cmd)
	cmd.Flags().Var(vectorValue{&point}, "point", "Point to test")
	cmd.Flags().Float64Var(&halfX, "half-x", 1, "Half-extent along the local x axis")
	cmd.Flags().Float64Var(&halfY, "half-y", 1, "Half-extent along the local y axis")
	_ = cmd.MarkFlagRequired("point")

	return cmd
}
