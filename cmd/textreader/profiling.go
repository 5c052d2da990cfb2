package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"textreader/internal/prof"
)

var profileCleanup func()

// setupProfiling starts the profilers requested by --cpu-profile and
// --mem-profile. The returned cleanup may be called more than once.
func setupProfiling(cmd *cobra.Command) (func(), error) {
	flags := cmd.Root().PersistentFlags()
	cpuPath, err := flags.GetString("cpu-profile")
	if err != nil {
		return nil, fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	memPath, err := flags.GetString("mem-profile")
	if err != nil {
		return nil, fmt.Errorf("failed to get mem-profile flag: %w", err)
	}

	stopCPU := func() {}
	if cpuPath != "" {
		if err := prof.StartCPU(cpuPath); err != nil {
			return nil, err
		}
		stopCPU = prof.StopCPU
	}

	done := false
	return func() {
		if done {
			return
		}
		done = true
		stopCPU()
		if memPath != "" {
			if err := prof.WriteMem(memPath); err != nil {
				fmt.Fprintf(os.Stderr, "failed to write heap profile: %v\n", err)
			}
		}
	}, nil
}
