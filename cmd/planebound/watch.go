package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/philipparndt/planebound/pkg/watcher"
	"github.com/spf13/cobra"
)

func newWatchCmd(opts *options) *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch [scene]",
		Short: "Re-run check every time a scene file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runWatch(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], debounce, opts)
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", 300*time.Millisecond, "Delay after the last change before re-checking")

	return cmd
}

// runWatch checks the scene once and then after every change until ctx is done
func runWatch(ctx context.Context, out, errOut io.Writer, filename string, debounce time.Duration, opts *options) error {
	check := func() {
		if err := runCheck(out, filename, opts); err != nil {
			fmt.Fprintf(errOut, "Error: %v\n", err)
		}
	}

	fw, err := watcher.NewFileWatcher(debounce, func(err error) {
		fmt.Fprintf(errOut, "Watcher error: %v\n", err)
	})
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fw.Close()

	changes := make(chan string, 1)
	callback := func(changedFile string) {
		select {
		case changes <- changedFile:
		default:
		}
	}
	if err := fw.Watch([]string{filename}, callback); err != nil {
		return fmt.Errorf("failed to watch files: %w", err)
	}
	fw.Start()

	check()
	fmt.Fprintf(out, "Watching file for changes: %s\n", filename)

	for {
		select {
		case <-ctx.Done():
			return nil
		case changed := <-changes:
			fmt.Fprintf(out, "\nFile changed: %s\n", changed)
			check()
		}
	}
}
