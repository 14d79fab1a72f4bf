// Binary fast_template_engine expands a template file from
// status files, values files and explicit variables.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/byte4ever/strfmt/placeholder"
	"github.com/byte4ever/strfmt/templating"
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
	const errCtx = "fast_template_engine"

	var (
		stampInfoFile arrayFlags
		valuesFile    arrayFlags
		variable      arrayFlags
		imports       arrayFlags
		output        string
		tpl           string
		executable    bool
		strict        bool
		startTag      string
		endTag        string
	)

	flag.Var(
		&stampInfoFile,
		"stamp_info_file",
		"Stamp info file path (repeatable)",
	)

	flag.Var(
		&valuesFile,
		"values",
		"YAML or JSON values file path (repeatable)",
	)

	flag.Var(
		&variable,
		"variable",
		"Variable in NAME=VALUE format (repeatable)",
	)

	flag.Var(
		&imports,
		"imports",
		"Import in NAME=filename format (repeatable)",
	)

	flag.StringVar(
		&output, "output", "",
		"Output file path (stdout if empty)",
	)

	flag.StringVar(
		&tpl, "template", "",
		"Input template file path (stdin if empty)",
	)

	flag.BoolVar(
		&executable, "executable", false,
		"Set executable bit on output file",
	)

	flag.BoolVar(
		&strict, "strict", true,
		"Fail on unknown variables and unresolved placeholders",
	)

	flag.StringVar(
		&startTag, "start_tag", placeholder.DefaultPrefix,
		"Start tag for template placeholders",
	)

	flag.StringVar(
		&endTag, "end_tag", placeholder.DefaultSuffix,
		"End tag for template placeholders",
	)

	flag.Parse()

	en := templating.Engine{
		Prefix:         startTag,
		Suffix:         endTag,
		Strict:         strict,
		StampInfoFiles: stampInfoFile,
		ValuesFiles:    valuesFile,
	}

	if err := en.Expand(
		tpl, output, variable, imports, executable,
	); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

func main() {
	err := run()
	if err == nil {
		return
	}

	var (
		knf *placeholder.KeyNotFoundError
		mke *placeholder.MissingKeyError
	)

	switch {
	case errors.As(err, &knf):
		slog.Error(
			"variable not found in template",
			"key", knf.Key,
		)
	case errors.As(err, &mke):
		slog.Error(
			"unresolved placeholder",
			"placeholder", mke.Placeholder,
		)
	default:
		slog.Error(err.Error())
	}

	os.Exit(1)
}
