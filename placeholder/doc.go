// Package placeholder substitutes named placeholders such as {firstname} in
// a template string through a fluent Builder. Delimiters default to "{" and
// "}" and can be replaced with any literal pair via FormatDelims.
//
// A Builder runs in strict mode unless told otherwise: With fails with a
// KeyNotFoundError when the template does not contain the key, and Build
// fails with a MissingKeyError when a placeholder is left unresolved. The
// first failure stops the chain and is returned by Build.
//
//	msg, err := placeholder.Format("Hello {firstname} {lastname}!").
//		With("firstname", "John").
//		With("lastname", "Doe").
//		Build()
//
// Expand is a single-pass alternative for value maps: substituted text is
// never rescanned, so values containing delimiters are left untouched.
package placeholder
