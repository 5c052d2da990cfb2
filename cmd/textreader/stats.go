package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"textreader/internal/diagfmt"
	"textreader/internal/driver"
)

var statsCmd = &cobra.Command{
	Use:   "stats [flags] FILE...",
	Short: "Count characters, lines and columns of one or more files",
	Long:  `Stats walks every FILE in parallel and prints rune, line and column counts.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	statsCmd.Flags().Int("jobs", 0, "max parallel files (0=GOMAXPROCS)")
	addDecodeFlags(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	format := "pretty"
	if cmd.Flags().Changed("format") || activeConfig.Output.Format == "json" {
		var err error
		if format, err = outputFormat(cmd, "pretty", "json"); err != nil {
			return err
		}
	}
	opts, err := driverOptions(cmd)
	if err != nil {
		return err
	}
	jobs := activeConfig.Stats.Jobs
	if cmd.Flags().Changed("jobs") {
		if jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
			return fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}

	stats, err := driver.Stats(cmd.Context(), args, jobs, opts)
	if err != nil {
		return err
	}

	if format == "json" {
		if err := diagfmt.FormatStatsJSON(cmd.OutOrStdout(), stats); err != nil {
			return err
		}
	} else {
		diagfmt.FormatStatsPretty(cmd.OutOrStdout(), stats, useColor(cmd, os.Stdout))
	}

	failed := 0
	for _, st := range stats {
		if st.Err != "" {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be read", failed, len(stats))
	}
	return nil
}
