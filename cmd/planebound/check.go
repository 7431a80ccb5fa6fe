package main

import (
	"fmt"
	"io"

	"github.com/philipparndt/planebound/pkg/geometry"
	"github.com/philipparndt/planebound/pkg/scene"
	"github.com/spf13/cobra"
)

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check [scene]",
		Short: "Evaluate every point of a scene file against every shape",
		Long:  "Load a YAML or TOML scene file, validate its shapes and test each query point against each plane, oriented plane and rectangle.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.OutOrStdout(), args[0], opts)
		},
	}
}

func runCheck(w io.Writer, filename string, opts *options) error {
	s, err := scene.Load(filename)
	if err != nil {
		return err
	}

	results := s.Evaluate()

	fmt.Fprintln(w, "Scene Check")
	fmt.Fprintln(w, "===========")
	fmt.Fprintf(w, "File: %s\n", filename)
	fmt.Fprintf(w, "Shapes: %d, Points: %d\n\n", s.ShapeCount(), len(s.Points))

	if len(results) == 0 {
		fmt.Fprintln(w, "Nothing to evaluate.")
		return nil
	}

	fmt.Fprintf(w, "%-16s %-10s %-16s %-35s %-6s %-25s\n", "Shape", "Kind", "Point", "At", "Hit", "Local")
	fmt.Fprintln(w, "--------------------------------------------------------------------------------------------------------------")
	for _, r := range results {
		local := "-"
		if r.Kind != scene.KindPlane {
			local = geometry.FormatPoint(r.Local)
		}
		fmt.Fprintf(w, "%-16s %-10s %-16s %-35s %-6v %-25s\n",
			r.Shape, r.Kind, r.Point, geometry.FormatVector(r.At), r.Hit, local)
	}
	fmt.Fprintf(w, "\n%d of %d checks hit\n", scene.Hits(results), len(results))

	opts.dumpTo(w, s)
	return nil
}
