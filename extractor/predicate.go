package extractor

import (
	"strings"

	"github.com/erraggy/featdesc/internal/stringutil"
	"github.com/erraggy/featdesc/naming"
)

// AcceptLine reports whether line has the form "<token>:<description>" and,
// if so, returns the normalized token and the trimmed description.
//
// A line is accepted when all of the following hold:
//   - it is not blank
//   - it contains a colon
//   - the text before the first colon is non-empty and alphanumeric
//   - the trimmed line starts with that text followed by a colon
//
// Everything after the first colon, trimmed of surrounding whitespace, is the
// description; later colons are kept. line must not include its newline.
func AcceptLine(line string) (name, description string, ok bool) {
	if stringutil.IsBlank(line) {
		return "", "", false
	}
	token, rest, found := strings.Cut(line, ":")
	if !found {
		return "", "", false
	}
	if !stringutil.IsAlphanumeric(token) {
		return "", "", false
	}
	// Redundant once the token is alphanumeric, but kept as a guard.
	if !strings.HasPrefix(stringutil.TrimSpace(line), token+":") {
		return "", "", false
	}

	name, err := naming.NormalizeIdentifier(token)
	if err != nil {
		return "", "", false
	}
	return name, stringutil.TrimSpace(rest), true
}
