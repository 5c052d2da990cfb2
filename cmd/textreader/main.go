package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"textreader/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "textreader",
	Short: "Walk text rune by rune with line and column tracking",
	Long: `textreader decodes a text file into Unicode characters and walks it with a
cursor that tracks position, line and column. It prints every character with
its location, points at an offset with a caret snippet, and summarizes files.`,
	SilenceUsage:      true,
	PersistentPreRunE: preRun,
	PersistentPostRun: postRun,
}

// main executes the root command.
// If command execution returns an error, the process exits with status code 1.
func main() {
	rootCmd.Version = version.Version

	err := rootCmd.Execute()
	// PersistentPostRun не вызывается, если RunE вернул ошибку
	postRun(nil, nil)
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(walkCmd)
	rootCmd.AddCommand(locateCmd)
	rootCmd.AddCommand(lineCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(stepCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().String("config", "", "path to textreader.toml (default: search upward from the working directory)")
	rootCmd.PersistentFlags().String("trace", "", "trace output file (- for stderr)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	rootCmd.PersistentFlags().String("trace-format", "auto", "trace format (auto|text|ndjson)")
	rootCmd.PersistentFlags().String("path-mode", "auto", "how file paths are shown (auto|absolute|relative|basename)")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to file on exit")
}

func preRun(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfigForCommand(cmd)
	if err != nil {
		return err
	}
	activeConfig = cfg
	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	traceCleanup = cleanup
	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	profileCleanup = stopProfiling
	return nil
}

func postRun(*cobra.Command, []string) {
	if profileCleanup != nil {
		profileCleanup()
		profileCleanup = nil
	}
	if traceCleanup != nil {
		traceCleanup()
		traceCleanup = nil
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves --color against the config and the terminal.
func useColor(cmd *cobra.Command, f *os.File) bool {
	mode := activeConfig.Output.Color
	if cmd.Root().PersistentFlags().Changed("color") {
		mode, _ = cmd.Root().PersistentFlags().GetString("color")
	}
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f)
	}
}

func isQuiet(cmd *cobra.Command) bool {
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	return quiet
}
