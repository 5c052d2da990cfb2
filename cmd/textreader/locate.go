package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"textreader/internal/diagfmt"
	"textreader/internal/driver"
)

var locateCmd = &cobra.Command{
	Use:   "locate [flags] FILE OFFSET",
	Short: "Show the line and column of a character offset",
	Long:  `Locate advances the cursor OFFSET characters into FILE and prints a caret snippet at that point.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runLocate,
}

var lineCmd = &cobra.Command{
	Use:   "line [flags] FILE OFFSET",
	Short: "Print the line that contains a character offset",
	Args:  cobra.ExactArgs(2),
	RunE:  runLine,
}

func init() {
	locateCmd.Flags().String("message", "", "message printed after the location")
	locateCmd.Flags().Bool("gutter", true, "print the line number next to the source line")
	locateCmd.Flags().Int("tab-width", 0, "expand tabs to this width (0 keeps tabs)")
	addDecodeFlags(locateCmd)
	addDecodeFlags(lineCmd)
}

func parseOffset(s string) (int, error) {
	offset, err := strconv.Atoi(s)
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("invalid offset %q: must be a non-negative integer", s)
	}
	return offset, nil
}

func runLocate(cmd *cobra.Command, args []string) error {
	offset, err := parseOffset(args[1])
	if err != nil {
		return err
	}
	opts, err := driverOptions(cmd)
	if err != nil {
		return err
	}
	msg, _ := cmd.Flags().GetString("message")
	gutter, _ := cmd.Flags().GetBool("gutter")
	tabWidth := activeConfig.Output.TabWidth
	if cmd.Flags().Changed("tab-width") {
		tabWidth, _ = cmd.Flags().GetInt("tab-width")
	}

	timer := newTimer(cmd)
	opened, err := driver.Locate(cmd.Context(), args[0], offset, opts, timer)
	if err != nil {
		return err
	}

	snippetOpts := diagfmt.SnippetOpts{
		Color:    useColor(cmd, os.Stdout),
		TabWidth: tabWidth,
		Gutter:   gutter,
	}
	path := opened.File.FormatPath(opts.PathMode, "")
	if err := diagfmt.Snippet(cmd.OutOrStdout(), path, opened.Cursor, msg, snippetOpts); err != nil {
		return err
	}
	printTimings(cmd, timer)
	return nil
}

func runLine(cmd *cobra.Command, args []string) error {
	offset, err := parseOffset(args[1])
	if err != nil {
		return err
	}
	opts, err := driverOptions(cmd)
	if err != nil {
		return err
	}
	timer := newTimer(cmd)
	opened, err := driver.Locate(cmd.Context(), args[0], offset, opts, timer)
	if err != nil {
		return err
	}
	if line, ok := opened.Cursor.ThisLine(); ok {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	printTimings(cmd, timer)
	return nil
}
