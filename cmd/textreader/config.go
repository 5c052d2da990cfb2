package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

const configFileName = "textreader.toml"

type fileConfig struct {
	Decode decodeConfig `toml:"decode"`
	Output outputConfig `toml:"output"`
	Stats  statsConfig  `toml:"stats"`
}

type decodeConfig struct {
	Encoding  string `toml:"encoding"`
	Normalize string `toml:"normalize"`
	CRLF      bool   `toml:"crlf"`      // приводить \r\n к \n
	StripBOM  bool   `toml:"strip_bom"` // убирать UTF-8 BOM
}

type outputConfig struct {
	Format   string `toml:"format"`
	Color    string `toml:"color"`
	TabWidth int    `toml:"tab_width"`
	PathMode string `toml:"path_mode"` // auto|absolute|relative|basename
}

type statsConfig struct {
	Jobs int `toml:"jobs"`
}

var (
	activeConfig = defaultConfig()
	traceCleanup func()
)

func defaultConfig() fileConfig {
	return fileConfig{
		Decode: decodeConfig{Encoding: "utf-8", CRLF: true, StripBOM: true},
		Output: outputConfig{Format: "pretty", Color: "auto", PathMode: "auto"},
	}
}

func findConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadConfig(path string) (fileConfig, error) {
	cfg := defaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return fileConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fileConfig{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return fileConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c fileConfig) validate() error {
	switch c.Output.Format {
	case "pretty", "json", "msgpack":
	default:
		return fmt.Errorf("[output].format must be pretty|json|msgpack, got %q", c.Output.Format)
	}
	switch c.Output.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("[output].color must be auto|on|off, got %q", c.Output.Color)
	}
	if !validPathMode(c.Output.PathMode) {
		return fmt.Errorf("[output].path_mode must be auto|absolute|relative|basename, got %q", c.Output.PathMode)
	}
	if c.Output.TabWidth < 0 {
		return fmt.Errorf("[output].tab_width must not be negative")
	}
	if c.Stats.Jobs < 0 {
		return fmt.Errorf("[stats].jobs must not be negative")
	}
	return nil
}

func loadConfigForCommand(cmd *cobra.Command) (fileConfig, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return fileConfig{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path == "" {
		found, ok, err := findConfig(".")
		if err != nil {
			return fileConfig{}, err
		}
		if !ok {
			return defaultConfig(), nil
		}
		path = found
	}
	return loadConfig(path)
}
