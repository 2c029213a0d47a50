package featdesc

import (
	"fmt"
	"runtime"
)

// Set via ldflags during release builds:
//
//	go build -ldflags "-X github.com/erraggy/featdesc.version=v1.2.3 -X github.com/erraggy/featdesc.commit=abc1234"
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Version returns the compiled version or 'dev' if run from source.
// It is reported to MCP clients and stamped into generated files.
func Version() string {
	return version
}

// BuildInfo returns the multi-line build summary printed by
// `featdesc version --verbose`.
func BuildInfo() string {
	return fmt.Sprintf("Version: %s\nCommit: %s\nBuild Time: %s\nGo Version: %s",
		version, commit, buildTime, runtime.Version())
}
