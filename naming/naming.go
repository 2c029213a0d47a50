package naming

import (
	"regexp"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/featdesc/featerrors"
)

var (
	// capitalizedWord matches any character followed by a capitalized word.
	capitalizedWord = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
	// lowerToUpper matches a lowercase letter or digit followed by an uppercase letter.
	lowerToUpper = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// ToSnakeBoundary inserts an underscore at every camelCase word boundary in name.
// The original characters are kept; only separators are added.
// Example: "userId" -> "user_Id"
// Example: "HTTPServer" -> "HTTP_Server"
// Example: "signUpDate" -> "sign_Up_Date"
func ToSnakeBoundary(name string) string {
	s := capitalizedWord.ReplaceAllString(name, "${1}_${2}")
	return lowerToUpper.ReplaceAllString(s, "${1}_${2}")
}

// NormalizeIdentifier converts name into an upper-snake-case identifier.
// The result is prefixed with an underscore when it would otherwise start
// with a digit. An empty name returns an *featerrors.InvalidArgumentError.
func NormalizeIdentifier(name string) (string, error) {
	if name == "" {
		return "", &featerrors.InvalidArgumentError{
			Argument: "name",
			Message:  "identifier must not be empty",
		}
	}

	// cases.Caser carries state between calls, so each call gets its own.
	upper := cases.Upper(language.Und).String(ToSnakeBoundary(name))

	if first, _ := utf8.DecodeRuneInString(upper); unicode.IsDigit(first) {
		upper = "_" + upper
	}
	return upper, nil
}

// MustNormalizeIdentifier is like NormalizeIdentifier but panics if name is empty.
// It is intended for identifiers known at compile time.
func MustNormalizeIdentifier(name string) string {
	normalized, err := NormalizeIdentifier(name)
	if err != nil {
		panic("naming: " + err.Error())
	}
	return normalized
}
