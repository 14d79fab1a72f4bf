package placeholder

import (
	"io"

	"github.com/valyala/fasttemplate"
)

// Expand substitutes the placeholders of template from
// values in a single left-to-right pass. A placeholder is
// the text between a prefix and the next suffix. Substituted
// text is never rescanned. Unknown placeholders are kept
// verbatim unless strict is set, in which case the first
// one fails with a MissingKeyError. Unused values are
// ignored.
func Expand(
	template string,
	prefix string,
	suffix string,
	values map[string]any,
	strict bool,
) (string, error) {
	prefix, suffix = delims(prefix, suffix)

	return fasttemplate.ExecuteFuncStringWithErr(
		template, prefix, suffix,
		func(w io.Writer, tag string) (int, error) {
			if val, ok := values[tag]; ok {
				return io.WriteString(w, stringify(val))
			}

			if strict {
				return 0, &MissingKeyError{
					Placeholder: prefix + tag + suffix,
				}
			}

			return io.WriteString(w, prefix+tag+suffix)
		},
	)
}
