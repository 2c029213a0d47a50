package naming_test

import (
	"errors"
	"fmt"

	"github.com/erraggy/featdesc/featerrors"
	"github.com/erraggy/featdesc/naming"
)

// Example demonstrates normalizing camelCase identifiers.
func Example() {
	for _, name := range []string{"camelCase", "HTTPServer", "9lives", "value1Name"} {
		normalized, err := naming.NormalizeIdentifier(name)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(normalized)
	}
	// Output:
	// CAMEL_CASE
	// HTTP_SERVER
	// _9LIVES
	// VALUE1_NAME
}

// ExampleNormalizeIdentifier_empty shows the error returned for an empty identifier.
func ExampleNormalizeIdentifier_empty() {
	_, err := naming.NormalizeIdentifier("")
	fmt.Println(errors.Is(err, featerrors.ErrInvalidArgument))
	// Output:
	// true
}

func ExampleToSnakeBoundary() {
	fmt.Println(naming.ToSnakeBoundary("getHTTPResponse"))
	// Output:
	// get_HTTP_Response
}
