package placeholder

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"
)

// Default delimiters used by Format.
const (
	DefaultPrefix = "{"
	DefaultSuffix = "}"
)

var defaultPattern = compilePattern(DefaultPrefix, DefaultSuffix)

// Builder resolves the placeholders of one template. It is
// owned by a single call chain and is not safe for
// concurrent use.
type Builder struct {
	base    string
	prefix  string
	suffix  string
	strict  bool
	pattern *regexp.Regexp
	err     error
}

// Format returns a strict Builder for template using the
// default "{" and "}" delimiters.
func Format(template string) *Builder {
	return FormatDelims(template, DefaultPrefix, DefaultSuffix)
}

// FormatDelims returns a strict Builder for template using
// prefix and suffix as literal placeholder delimiters. An
// empty delimiter falls back to its default.
func FormatDelims(template, prefix, suffix string) *Builder {
	prefix, suffix = delims(prefix, suffix)

	pattern := defaultPattern
	if prefix != DefaultPrefix || suffix != DefaultSuffix {
		pattern = compilePattern(prefix, suffix)
	}

	return &Builder{
		base:    template,
		prefix:  prefix,
		suffix:  suffix,
		strict:  true,
		pattern: pattern,
	}
}

// StrictMode turns both validations on or off. With active
// false, unknown keys are ignored and leftover placeholders
// are returned verbatim by Build.
func (bu *Builder) StrictMode(active bool) *Builder {
	bu.strict = active

	return bu
}

// With replaces every occurrence of the placeholder for key
// with the string form of value. A nil value is replaced by
// the empty string. In strict mode a key whose placeholder
// does not occur fails the chain with a KeyNotFoundError.
func (bu *Builder) With(key string, value any) *Builder {
	if bu.err != nil {
		return bu
	}

	ph := bu.prefix + key + bu.suffix

	if !strings.Contains(bu.base, ph) {
		if bu.strict {
			bu.err = &KeyNotFoundError{
				Key:      key,
				Template: bu.base,
			}
		}

		return bu
	}

	bu.base = strings.ReplaceAll(bu.base, ph, stringify(value))

	return bu
}

// WithAll calls With for every entry of values in sorted
// key order.
func (bu *Builder) WithAll(values map[string]any) *Builder {
	for _, key := range slices.Sorted(maps.Keys(values)) {
		bu.With(key, values[key])
	}

	return bu
}

// Fill substitutes the entries of values whose placeholder
// occurs in the template and ignores the others, whatever
// the mode. Keys are applied in sorted order.
func (bu *Builder) Fill(values map[string]any) *Builder {
	if bu.err != nil {
		return bu
	}

	for _, key := range slices.Sorted(maps.Keys(values)) {
		ph := bu.prefix + key + bu.suffix
		if strings.Contains(bu.base, ph) {
			bu.base = strings.ReplaceAll(
				bu.base, ph, stringify(values[key]),
			)
		}
	}

	return bu
}

// Err returns the failure that stopped the chain, if any.
func (bu *Builder) Err() error {
	return bu.err
}

// Build returns the resolved string. It returns the chain
// failure if one occurred, and in strict mode a
// MissingKeyError for the first placeholder left in the
// template.
func (bu *Builder) Build() (string, error) {
	if bu.err != nil {
		return "", bu.err
	}

	if bu.strict {
		if ph := bu.pattern.FindString(bu.base); ph != "" {
			return "", &MissingKeyError{Placeholder: ph}
		}
	}

	return bu.base, nil
}

// MustBuild is like Build but panics on failure.
func (bu *Builder) MustBuild() string {
	out, err := bu.Build()
	if err != nil {
		panic(fmt.Sprintf("building template: %v", err))
	}

	return out
}

// Placeholders lists the keys of the placeholders found in
// template, in order of first appearance.
func Placeholders(template, prefix, suffix string) []string {
	prefix, suffix = delims(prefix, suffix)

	var keys []string

	seen := make(map[string]struct{})

	for _, m := range compilePattern(prefix, suffix).
		FindAllStringSubmatch(template, -1) {
		if _, ok := seen[m[1]]; ok {
			continue
		}

		seen[m[1]] = struct{}{}
		keys = append(keys, m[1])
	}

	return keys
}

func delims(prefix, suffix string) (string, string) {
	if prefix == "" {
		prefix = DefaultPrefix
	}

	if suffix == "" {
		suffix = DefaultSuffix
	}

	return prefix, suffix
}

// compilePattern matches prefix, the shortest run of
// characters on the same line, then suffix.
func compilePattern(prefix, suffix string) *regexp.Regexp {
	return regexp.MustCompile(
		regexp.QuoteMeta(prefix) + "(.*?)" + regexp.QuoteMeta(suffix),
	)
}

func stringify(value any) string {
	if value == nil {
		return ""
	}

	return fmt.Sprint(value)
}
