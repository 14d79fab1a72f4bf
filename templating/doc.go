// Package templating expands template files with the placeholder builder.
//
// An Engine gathers values from status files (stamper format), YAML or JSON
// values files and NAME=VALUE variables, then resolves the template with
// configurable delimiters (default "{" and "}"). In strict mode every
// variable must occur in the template and no placeholder may be left over;
// values from files only fill the placeholders they match.
package templating
