package main

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"textreader/internal/driver"
	"textreader/internal/ui"
)

var stepCmd = &cobra.Command{
	Use:   "step [flags] FILE",
	Short: "Step through a file interactively",
	Long:  `Step opens FILE in a terminal UI: move forward one character at a time, take the last step back, or reset to the start.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runStep,
}

func init() {
	addDecodeFlags(stepCmd)
}

func runStep(cmd *cobra.Command, args []string) error {
	if !isTerminal(os.Stdout) || !isTerminal(os.Stdin) {
		return errors.New("step needs an interactive terminal")
	}
	opts, err := driverOptions(cmd)
	if err != nil {
		return err
	}
	opened, err := driver.Open(cmd.Context(), args[0], opts, nil)
	if err != nil {
		return err
	}
	model := ui.NewStepper(opened.File.FormatPath(opts.PathMode, ""), opened.Cursor)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	_, err = program.Run()
	return err
}
