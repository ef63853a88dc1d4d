package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vardecl/internal/prof"
)

// setupProfiling starts the profilers requested by the batch flags. The
// returned stop function is safe to call more than once.
func setupProfiling(cmd *cobra.Command) (func(), error) {
	var (
		paths prof.Paths
		err   error
	)
	if paths.CPU, err = cmd.Flags().GetString("cpu-profile"); err != nil {
		return nil, fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if paths.Heap, err = cmd.Flags().GetString("mem-profile"); err != nil {
		return nil, fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if paths.Trace, err = cmd.Flags().GetString("runtime-trace"); err != nil {
		return nil, fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	if paths.Empty() {
		return func() {}, nil
	}

	session, err := prof.Start(paths)
	if err != nil {
		return nil, err
	}
	current.logger.Debug("profiling started", "cpu", paths.CPU, "heap", paths.Heap, "trace", paths.Trace)
	return func() {
		if err := session.Stop(); err != nil {
			current.logger.Error("profiling", "err", err)
		}
	}, nil
}
