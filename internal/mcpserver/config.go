package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/erraggy/featdesc/extractor"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// AllowFiles permits tools to read description files from disk.
	AllowFiles bool
	// MaxLineSize is the longest accepted line in bytes.
	MaxLineSize int
	// MaxContentSize caps inline content in bytes.
	MaxContentSize int64

	// Pagination defaults for extract_features.
	ExtractLimit int
	MaxLimit     int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from FEATDESC_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		AllowFiles:     envBool("FEATDESC_ALLOW_FILES", true),
		MaxLineSize:    envInt("FEATDESC_MAX_LINE_SIZE", extractor.DefaultMaxLineSize),
		MaxContentSize: envInt64("FEATDESC_MAX_CONTENT_SIZE", 10*1024*1024),
		ExtractLimit:   envInt("FEATDESC_EXTRACT_LIMIT", 100),
		MaxLimit:       envInt("FEATDESC_MAX_LIMIT", 1000),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int64 env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}
