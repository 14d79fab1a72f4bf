// Package stamper reads build status files and expands single-brace {KEY}
// placeholders from them. LoadStamps parses "KEY VALUE" lines into a value
// map; Stamp loads the files and expands a format string in one call,
// optionally failing on placeholders no file provides.
package stamper
