package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"textreader/internal/driver"
	"textreader/internal/reader"
	"textreader/internal/source"
)

// addDecodeFlags registers the flags shared by every command that opens a file.
func addDecodeFlags(cmd *cobra.Command) {
	cmd.Flags().String("encoding", "", "input encoding, any WHATWG label (utf-8, latin1, utf-16le, shift_jis, ...)")
	cmd.Flags().String("normalize", "", "Unicode normalization applied after decoding (nfc|nfd|nfkc|nfkd)")
	cmd.Flags().Bool("keep-crlf", false, "do not normalize CRLF line endings to LF")
	cmd.Flags().Bool("keep-bom", false, "do not strip a leading UTF-8 byte order mark")
}

// driverOptions merges decode flags over the active config.
func driverOptions(cmd *cobra.Command) (driver.Options, error) {
	cfg := activeConfig.Decode
	opts := driver.Options{
		Load: source.LoadOptions{
			KeepCRLF: !cfg.CRLF,
			KeepBOM:  !cfg.StripBOM,
		},
		Decode: reader.Options{
			Encoding:  cfg.Encoding,
			Normalize: cfg.Normalize,
		},
	}

	flags := cmd.Flags()
	if flags.Changed("encoding") {
		opts.Decode.Encoding, _ = flags.GetString("encoding")
	}
	if flags.Changed("normalize") {
		opts.Decode.Normalize, _ = flags.GetString("normalize")
	}
	if flags.Changed("keep-crlf") {
		opts.Load.KeepCRLF, _ = flags.GetBool("keep-crlf")
	}
	if flags.Changed("keep-bom") {
		opts.Load.KeepBOM, _ = flags.GetBool("keep-bom")
	}

	opts.PathMode = activeConfig.Output.PathMode
	if root := cmd.Root().PersistentFlags(); root.Changed("path-mode") {
		opts.PathMode, _ = root.GetString("path-mode")
	}
	if !validPathMode(opts.PathMode) {
		return driver.Options{}, fmt.Errorf("unsupported path mode %q (expected auto|absolute|relative|basename)", opts.PathMode)
	}

	// ошибки в именах ловим до чтения файла
	if _, err := reader.LookupEncoding(opts.Decode.Encoding); err != nil {
		return driver.Options{}, err
	}
	if _, err := reader.ParseNormalization(opts.Decode.Normalize); err != nil {
		return driver.Options{}, err
	}
	return opts, nil
}

func validPathMode(mode string) bool {
	switch mode {
	case "auto", "absolute", "relative", "basename":
		return true
	}
	return false
}

// outputFormat resolves --format against the config.
func outputFormat(cmd *cobra.Command, allowed ...string) (string, error) {
	format := activeConfig.Output.Format
	if cmd.Flags().Changed("format") {
		var err error
		format, err = cmd.Flags().GetString("format")
		if err != nil {
			return "", fmt.Errorf("failed to get format flag: %w", err)
		}
	}
	format = strings.ToLower(strings.TrimSpace(format))
	for _, a := range allowed {
		if format == a {
			return format, nil
		}
	}
	return "", fmt.Errorf("unsupported format %q (expected %s)", format, strings.Join(allowed, "|"))
}
