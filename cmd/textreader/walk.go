package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"textreader/internal/diagfmt"
	"textreader/internal/driver"
)

var walkCmd = &cobra.Command{
	Use:   "walk [flags] FILE",
	Short: "Print every character with its offset, line and column",
	Long:  `Walk reads FILE with the cursor and prints each character at the location it was read from. Use - for stdin.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runWalk,
}

func init() {
	walkCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	walkCmd.Flags().Int("limit", 0, "stop after N characters (0 = no limit)")
	addDecodeFlags(walkCmd)
}

func runWalk(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd, "pretty", "json", "msgpack")
	if err != nil {
		return err
	}
	opts, err := driverOptions(cmd)
	if err != nil {
		return err
	}
	opts.Limit, err = cmd.Flags().GetInt("limit")
	if err != nil {
		return fmt.Errorf("failed to get limit flag: %w", err)
	}

	timer := newTimer(cmd)
	res, err := driver.Walk(cmd.Context(), args[0], opts, timer)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		err = diagfmt.FormatCharsJSON(out, res.Records)
	case "msgpack":
		err = diagfmt.FormatCharsMsgpack(out, res.Records)
	default:
		err = diagfmt.FormatCharsPretty(out, res.Records, diagfmt.CharsOpts{Color: useColor(cmd, os.Stdout)})
	}
	if err != nil {
		return err
	}

	if res.Truncated && !isQuiet(cmd) {
		fmt.Fprintf(cmd.ErrOrStderr(), "stopped after %d of %d characters\n", len(res.Records), res.Cursor.Len())
	}
	printTimings(cmd, timer)
	return nil
}
