package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"textreader/internal/observ"
)

func newTimer(cmd *cobra.Command) *observ.Timer {
	enabled, _ := cmd.Root().PersistentFlags().GetBool("timings")
	if !enabled {
		return nil
	}
	return observ.NewTimer()
}

func printTimings(cmd *cobra.Command, timer *observ.Timer) {
	if timer == nil || isQuiet(cmd) {
		return
	}
	fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
}
