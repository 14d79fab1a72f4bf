package templating

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// LoadValues reads YAML (.yaml, .yml) or JSON (.json)
// values files into one flat map. Nested objects become
// dotted keys such as "db.host". Later files override
// earlier ones.
func LoadValues(paths []string) (map[string]any, error) {
	const errCtx = "loading values"

	values := make(map[string]any)

	for _, pa := range paths {
		doc, err := decodeValuesFile(pa)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtx, err)
		}

		flatten("", doc, values)

		slog.Debug(
			"loaded values file",
			"path", pa,
			"keys", len(doc),
		)
	}

	return values, nil
}

func decodeValuesFile(path string) (map[string]any, error) {
	content, err := os.ReadFile(path) //nolint:gosec // paths from CLI flags
	if err != nil {
		return nil, err
	}

	var doc map[string]any

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &doc); err != nil {
			return nil, fmt.Errorf(
				"decoding yaml %s: %w", path, err,
			)
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(content))
		dec.UseNumber()

		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf(
				"decoding json %s: %w", path, err,
			)
		}
	default:
		return nil, fmt.Errorf(
			"unsupported values file extension %q for %s",
			ext, path,
		)
	}

	return doc, nil
}

// flatten copies src into dst, joining nested map keys
// with dots.
func flatten(prefix string, src map[string]any, dst map[string]any) {
	for key, val := range src {
		if prefix != "" {
			key = prefix + "." + key
		}

		switch nested := val.(type) {
		case map[string]any:
			flatten(key, nested, dst)
		case map[any]any:
			conv := make(map[string]any, len(nested))
			for nk, nv := range nested {
				conv[fmt.Sprint(nk)] = nv
			}

			flatten(key, conv, dst)
		default:
			dst[key] = val
		}
	}
}
