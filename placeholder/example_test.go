package placeholder_test

import (
	"errors"
	"fmt"

	"github.com/byte4ever/strfmt/placeholder"
)

func ExampleFormat() {
	msg, err := placeholder.Format("Hello {firstname} {lastname}!").
		With("firstname", "John").
		With("lastname", "Doe").
		Build()
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(msg)
	// Output: Hello John Doe!
}

func ExampleFormatDelims() {
	fmt.Println(
		placeholder.FormatDelims("Hi [name]!", "[", "]").
			With("name", "Ann").
			MustBuild(),
	)
	// Output: Hi Ann!
}

func ExampleBuilder_Build_missingKey() {
	_, err := placeholder.Format("Hello {firstname} {lastname}!").
		With("firstname", "John").
		Build()

	var mke *placeholder.MissingKeyError
	if errors.As(err, &mke) {
		fmt.Println(mke.Placeholder)
	}
	// Output: {lastname}
}

func ExampleBuilder_StrictMode() {
	out, _ := placeholder.Format("{a}").StrictMode(false).Build() //nolint:errcheck // lenient build never fails

	fmt.Println(out)
	// Output: {a}
}

func ExampleExpand() {
	out, _ := placeholder.Expand( //nolint:errcheck // lenient expand never fails
		"{greeting}, {name}", "", "",
		map[string]any{"greeting": "Hi", "name": "{name}"},
		false,
	)

	fmt.Println(out)
	// Output: Hi, {name}
}
