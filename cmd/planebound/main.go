package main

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/philipparndt/planebound/version"
	"github.com/spf13/cobra"
)

// options shared by every subcommand
type options struct {
	dump bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "planebound",
		Short: "Test points against planes and bounded rectangles",
		Long: `planebound checks whether 3D points lie on infinite planes, on oriented planes
with a local 2D frame, or inside rectangles bounded on such a frame. Shapes can
be given as flags or loaded from YAML/TOML scene files.`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&opts.dump, "dump", false, "Dump the evaluated objects in full")

	rootCmd.AddCommand(
		newDemoCmd(opts),
		newProjectCmd(opts),
		newLiftCmd(opts),
		newContainsCmd(opts),
		newCheckCmd(opts),
		newWatchCmd(opts),
	)

	return rootCmd
}

// dumpTo writes a full structural dump of values when --dump is set
func (o *options) dumpTo(w io.Writer, values ...interface{}) {
	if !o.dump {
		return
	}
	cfg := spew.ConfigState{Indent: "  ", DisableMethods: true, DisablePointerAddresses: true, SortKeys: true}
	cfg.Fdump(w, values...)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
