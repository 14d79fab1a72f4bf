package templating

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/byte4ever/strfmt/placeholder"
	"github.com/byte4ever/strfmt/stamper"
)

// Engine expands template files from status files, values
// files and explicit variables.
type Engine struct {
	Prefix         string
	Suffix         string
	Strict         bool
	StampInfoFiles []string
	ValuesFiles    []string
}

// Expand reads a template, resolves its placeholders and
// writes the result. An empty tplPath reads stdin and an
// empty outPath writes stdout. If executable is true the
// output file receives mode 0777 instead of 0666. Nothing
// is written when resolution fails.
//
// Processing order:
//  1. Load stamps, then values files over them.
//  2. For each import NAME=filename, fill the file against
//     that context and store it as "imports.NAME".
//  3. Apply each variable NAME=VALUE with the builder; the
//     value is first expanded against stamps with "{" "}".
//  4. Fill the remaining placeholders from the context and
//     build.
func (en *Engine) Expand(
	tplPath string,
	outPath string,
	vars []string,
	imports []string,
	executable bool,
) error {
	const errCtx = "expanding template"

	stamps, err := stamper.LoadStamps(en.StampInfoFiles)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	values, err := LoadValues(en.ValuesFiles)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	ctx := make(map[string]any, len(stamps)+len(values))
	for key, val := range stamps {
		ctx[key] = val
	}

	for key, val := range values {
		ctx[key] = val
	}

	if err := en.resolveImports(imports, ctx); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	tplContent, err := en.readTemplate(tplPath)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	result, err := en.Render(string(tplContent), vars, stamps, ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if err := en.writeOutput(outPath, result, executable); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// Render resolves tpl. Each variable NAME=VALUE goes
// through Builder.With, so in strict mode it must occur in
// tpl; its value is expanded against stamps first. ctx then
// fills whatever placeholders it matches.
func (en *Engine) Render(
	tpl string,
	vars []string,
	stamps map[string]any,
	ctx map[string]any,
) (string, error) {
	const errCtx = "rendering"

	bu := placeholder.FormatDelims(tpl, en.Prefix, en.Suffix).
		StrictMode(en.Strict)

	for _, vr := range vars {
		name, raw, ok := strings.Cut(vr, "=")
		if !ok {
			return "", fmt.Errorf(
				"%s: variable must be VAR=value, got %s",
				errCtx, vr,
			)
		}

		val, err := placeholder.Expand(
			raw,
			placeholder.DefaultPrefix,
			placeholder.DefaultSuffix,
			stamps,
			false,
		)
		if err != nil {
			return "", fmt.Errorf("%s: %w", errCtx, err)
		}

		bu.With(name, val)
	}

	out, err := bu.Fill(ctx).Build()
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return out, nil
}

// resolveImports reads each NAME=filename import, fills it
// leniently against ctx with the engine delimiters and
// stores it as "imports.NAME".
func (en *Engine) resolveImports(
	imports []string,
	ctx map[string]any,
) error {
	const errCtx = "resolving imports"

	for _, im := range imports {
		name, path, ok := strings.Cut(im, "=")
		if !ok {
			return fmt.Errorf(
				"%s: import must be NAME=filename, got %s",
				errCtx, im,
			)
		}

		content, err := os.ReadFile(path) //nolint:gosec // paths from CLI flags
		if err != nil {
			return fmt.Errorf(
				"%s: reading %s: %w",
				errCtx, path, err,
			)
		}

		val, err := placeholder.FormatDelims(
			string(content), en.Prefix, en.Suffix,
		).StrictMode(false).Fill(ctx).Build()
		if err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		ctx["imports."+name] = val

		slog.Debug("resolved import", "name", name, "path", path)
	}

	return nil
}

// readTemplate reads the template from a file path. If
// tplPath is empty it reads from stdin.
func (en *Engine) readTemplate(tplPath string) ([]byte, error) {
	const errCtx = "reading template"

	if tplPath != "" {
		content, err := os.ReadFile(tplPath) //nolint:gosec // paths from CLI flags
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtx, err)
		}

		return content, nil
	}

	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf(
			"%s: reading stdin: %w", errCtx, err,
		)
	}

	return content, nil
}

// writeOutput writes result to outPath, or stdout when
// outPath is empty.
func (en *Engine) writeOutput(
	outPath string,
	result string,
	executable bool,
) (retErr error) {
	const errCtx = "writing output"

	if outPath == "" {
		if _, err := os.Stdout.WriteString(result); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		return nil
	}

	var perm os.FileMode = 0o666
	if executable {
		perm = 0o777
	}

	fi, err := os.OpenFile( //nolint:gosec // paths from CLI flags
		outPath,
		os.O_RDWR|os.O_CREATE|os.O_TRUNC,
		perm,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	defer func() {
		if closeErr := fi.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("%s: %w", errCtx, closeErr)
		}
	}()

	if _, err := fi.WriteString(result); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}
