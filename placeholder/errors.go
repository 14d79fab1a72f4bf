package placeholder

import "fmt"

// KeyNotFoundError reports a substitution for a key whose
// placeholder does not occur in the template. Template is
// the template state at the time of the call.
type KeyNotFoundError struct {
	Key      string
	Template string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf(
		"key %q not found in template %q",
		e.Key, e.Template,
	)
}

// MissingKeyError reports a placeholder left unresolved at
// build time. Placeholder holds the matched text including
// its delimiters.
type MissingKeyError struct {
	Placeholder string
}

func (e *MissingKeyError) Error() string {
	return "no value passed for key " + e.Placeholder
}
