// Package extractor parses loosely structured data description files into a
// mapping from normalized feature names to their descriptions.
//
// # Input Format
//
// A description file is free-form text. Any line of the form
//
//	<token>:<description>
//
// where token is a run of letters and digits starting at the beginning of the
// line contributes one feature. The token is normalized with
// [naming.NormalizeIdentifier] and the description is trimmed. Every other line
// (headers, blank lines, indented value listings, prose) is skipped silently:
//
//	Header line with no colon
//	userId: Unique identifier for each user
//
//	signUpDate:Date the user registered
//	not a valid: token: extra colon
//
// yields USER_ID and SIGN_UP_DATE. When two lines normalize to the same name,
// the later description wins and the name keeps its first position.
//
// # Usage
//
//	descs, err := extractor.Extract("data_description.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, e := range descs.Entries() {
//	    fmt.Printf("%s: %s\n", e.Name, e.Description)
//	}
//
// Use [ExtractWithOptions] to read from an io.Reader or byte slice, attach a
// [Logger], or change the maximum line length.
//
// # Errors
//
// A file that cannot be opened or read returns a [featerrors.IOError] wrapping
// the os error, so both errors.Is(err, featerrors.ErrIO) and
// errors.Is(err, fs.ErrNotExist) work. Malformed lines are never errors.
package extractor
