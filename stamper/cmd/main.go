// Package main provides the stamper CLI that reads build
// status files and expands {KEY} placeholders in a format
// string or file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/byte4ever/strfmt/placeholder"
	"github.com/byte4ever/strfmt/stamper"
)

type arrayFlags []string

func (af *arrayFlags) String() string {
	return ""
}

func (af *arrayFlags) Set(value string) error {
	*af = append(*af, value)
	return nil
}

func run() error {
	const errCtx = "stamper"

	var stampInfoFiles arrayFlags

	var (
		output     string
		format     string
		formatFile string
		strict     bool
	)

	flag.Var(
		&stampInfoFiles,
		"stamp-info-file",
		"path to a KEY VALUE status file (repeatable)",
	)

	flag.StringVar(
		&output, "output", "",
		"output file path (default: stdout)",
	)

	flag.StringVar(
		&formatFile, "format-file", "",
		"file containing stamp variable placeholders",
	)

	flag.StringVar(
		&format, "format", "",
		"format string containing stamp variables",
	)

	flag.BoolVar(
		&strict, "strict", false,
		"fail when a placeholder has no stamp value",
	)

	flag.Parse()

	if formatFile != "" && format != "" {
		return fmt.Errorf(
			"%s: only one of --format or"+
				" --format-file may be specified",
			errCtx,
		)
	}

	if formatFile != "" {
		content, err := os.ReadFile( //nolint:gosec // path from CLI flag
			formatFile,
		)
		if err != nil {
			return fmt.Errorf(
				"%s: reading format file: %w",
				errCtx, err,
			)
		}

		format = string(content)
	}

	result, err := stamper.Stamp(
		stampInfoFiles, format, strict,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if output != "" {
		err = os.WriteFile( //nolint:gosec // path from CLI flag
			output, []byte(result), 0o666,
		)
		if err != nil {
			return fmt.Errorf(
				"%s: writing output: %w",
				errCtx, err,
			)
		}

		return nil
	}

	_, err = os.Stdout.WriteString(result)
	if err != nil {
		return fmt.Errorf(
			"%s: writing to stdout: %w",
			errCtx, err,
		)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		var mke *placeholder.MissingKeyError
		if errors.As(err, &mke) {
			slog.Error(
				"unresolved stamp placeholder",
				"placeholder", mke.Placeholder,
			)
		} else {
			slog.Error(err.Error())
		}

		os.Exit(1)
	}
}
