// Package options provides shared utilities for option validation across packages.
package options

import "github.com/erraggy/featdesc/featerrors"

// ValidateSingleInputSource ensures exactly one input source is specified.
// sources is a variadic list of booleans indicating whether each source is set.
// option names the options involved (e.g. "WithFilePath/WithReader/WithBytes")
// and is reported on the returned *featerrors.ConfigError.
func ValidateSingleInputSource(option string, sources ...bool) error {
	sourceCount := 0
	for _, hasSource := range sources {
		if hasSource {
			sourceCount++
		}
	}

	switch {
	case sourceCount == 0:
		return &featerrors.ConfigError{Option: option, Message: "must specify an input source"}
	case sourceCount > 1:
		return &featerrors.ConfigError{
			Option:  option,
			Value:   sourceCount,
			Message: "must specify exactly one input source",
		}
	}
	return nil
}
