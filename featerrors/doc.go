// Package featerrors provides structured error types for the featdesc library.
//
// Import path: github.com/erraggy/featdesc/featerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between bad input, unreadable sources, invalid
// configuration, and code generation failures.
//
// # Error Types
//
//   - [InvalidArgumentError]: an argument that can never produce a result, such as an empty identifier
//   - [IOError]: a description source could not be opened or read
//   - [ConfigError]: invalid options, flags, or environment values
//   - [GenerateError]: Go source generation failures
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrInvalidArgument]: Matches any [InvalidArgumentError]
//   - [ErrIO]: Matches any [IOError]
//   - [ErrConfig]: Matches any [ConfigError]
//   - [ErrGenerate]: Matches any [GenerateError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	descs, err := extractor.Extract("data_description.txt")
//	if errors.Is(err, featerrors.ErrIO) {
//	    // Handle unreadable file
//	}
//
// IOError unwraps to the underlying os error, so missing files can be detected
// through the standard error chain:
//
//	if errors.Is(err, fs.ErrNotExist) {
//	    // The description file doesn't exist
//	}
package featerrors
