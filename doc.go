// Package featdesc extracts feature descriptions from loosely structured data
// description files.
//
// A data description file documents the columns of a dataset in prose. Lines of
// the form "<token>: <description>" name a feature; everything else is
// commentary. featdesc turns such a file into an ordered mapping from
// upper-snake-case feature names to their descriptions.
//
// # Overview
//
// The library consists of three packages:
//
//   - naming: convert camelCase identifiers to upper-snake-case feature names
//   - extractor: scan a description file into a feature-description mapping
//   - codegen: render a mapping as Go constants
//
// Errors are typed in package featerrors and work with errors.Is and errors.As.
//
// # Installation
//
//	go get github.com/erraggy/featdesc
//
// # Quick Start
//
// Normalize an identifier:
//
//	name, err := naming.NormalizeIdentifier("signUpDate") // "SIGN_UP_DATE"
//
// Extract every feature from a file:
//
//	descs, err := extractor.Extract("data_description.txt")
//	if err != nil {
//		log.Fatal(err)
//	}
//	desc, ok := descs.Get("SIGN_UP_DATE")
//
// # Command Line
//
// The featdesc command wraps the library:
//
//	featdesc extract --format yaml data_description.txt
//	featdesc normalize userId HTTPServer
//	featdesc generate --package housing --type Column -o columns.go data_description.txt
//	featdesc mcp
package featdesc
