// Package naming converts camelCase and PascalCase identifiers into the
// upper-snake-case form used as feature keys.
//
// # Boundary Rules
//
// [ToSnakeBoundary] inserts an underscore in two global passes:
//
//  1. before a capitalized word that follows any character ("userId" -> "user_Id")
//  2. before an uppercase letter that follows a lowercase letter or digit
//     ("HTTP_Server" is untouched, "getHTTP" -> "get_HTTP")
//
// Digit/letter transitions are not boundaries: "value1Name" becomes
// "VALUE1_NAME", not "VALUE_1_NAME".
//
// # Normalization
//
// [NormalizeIdentifier] applies the boundary rules, uppercases the result, and
// prepends an underscore when the first character is a digit so the result is
// always a valid identifier in most languages:
//
//	naming.NormalizeIdentifier("camelCase")  // "CAMEL_CASE"
//	naming.NormalizeIdentifier("HTTPServer") // "HTTP_SERVER"
//	naming.NormalizeIdentifier("9lives")     // "_9LIVES"
//
// An empty identifier is rejected with a [featerrors.InvalidArgumentError].
package naming
