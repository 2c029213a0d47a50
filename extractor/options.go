package extractor

import (
	"io"

	"github.com/erraggy/featdesc/featerrors"
	"github.com/erraggy/featdesc/internal/options"
)

// Option is a function that configures an extraction
type Option func(*extractConfig) error

// extractConfig holds configuration for an extraction
type extractConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	logger      Logger
	maxLineSize int
}

// ExtractWithOptions extracts feature descriptions using functional options.
//
// Example:
//
//	descs, err := extractor.ExtractWithOptions(
//	    extractor.WithFilePath("data_description.txt"),
//	    extractor.WithMaxLineSize(4096),
//	)
func ExtractWithOptions(opts ...Option) (*Descriptions, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	e := &Extractor{Logger: cfg.logger, MaxLineSize: cfg.maxLineSize}

	switch {
	case cfg.filePath != nil:
		return e.Extract(*cfg.filePath)
	case cfg.reader != nil:
		return e.ExtractReader(cfg.reader)
	default:
		return e.ExtractBytes(cfg.bytes)
	}
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*extractConfig, error) {
	cfg := &extractConfig{
		logger:      NopLogger{},
		maxLineSize: DefaultMaxLineSize,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"WithFilePath/WithReader/WithBytes",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *extractConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *extractConfig) error {
		if r == nil {
			return &featerrors.ConfigError{Option: "WithReader", Message: "reader cannot be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *extractConfig) error {
		if data == nil {
			return &featerrors.ConfigError{Option: "WithBytes", Message: "bytes cannot be nil"}
		}
		cfg.bytes = data
		return nil
	}
}

// WithLogger sets the logger for the extraction.
// A nil logger disables logging.
func WithLogger(l Logger) Option {
	return func(cfg *extractConfig) error {
		if l == nil {
			l = NopLogger{}
		}
		cfg.logger = l
		return nil
	}
}

// WithMaxLineSize sets the longest accepted line in bytes.
// Default: DefaultMaxLineSize
func WithMaxLineSize(n int) Option {
	return func(cfg *extractConfig) error {
		if n <= 0 {
			return &featerrors.ConfigError{Option: "WithMaxLineSize", Value: n, Message: "must be positive"}
		}
		cfg.maxLineSize = n
		return nil
	}
}
