package extractor

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/featdesc/featerrors"
)

// DefaultMaxLineSize is the longest line, in bytes, an Extractor reads
// unless MaxLineSize says otherwise.
const DefaultMaxLineSize = 1 << 20

// readerSource names streams in errors and log output.
const readerSource = "<reader>"

// Extractor reads description sources and builds feature-description mappings.
// An Extractor holds configuration only and is safe for concurrent use.
type Extractor struct {
	// Logger receives debug output about each extraction.
	// Nil means no logging.
	Logger Logger
	// MaxLineSize is the longest line accepted, in bytes.
	// Zero means DefaultMaxLineSize. A longer line fails the extraction.
	MaxLineSize int
}

// New creates a new Extractor with default settings.
func New() *Extractor {
	return &Extractor{
		Logger:      NopLogger{},
		MaxLineSize: DefaultMaxLineSize,
	}
}

// Extract is a convenience function that extracts the feature descriptions
// in the file at path using a default Extractor.
func Extract(path string) (*Descriptions, error) {
	return New().Extract(path)
}

// Extract opens the file at path and returns its feature-description mapping.
// The file is closed before Extract returns. Failures to open or read the file
// return an *featerrors.IOError and no mapping.
func (e *Extractor) Extract(path string) (*Descriptions, error) {
	f, err := os.Open(path) //nolint:gosec // G304 - reading user-specified description files is the purpose
	if err != nil {
		return nil, fmt.Errorf("extractor: %w", &featerrors.IOError{Path: path, Op: "open", Cause: err})
	}
	defer func() { _ = f.Close() }()

	e.logger().Debug("opened description source", "source", path)
	return e.scan(f, path)
}

// ExtractReader returns the feature-description mapping read from r.
// The reader is consumed but not closed.
func (e *Extractor) ExtractReader(r io.Reader) (*Descriptions, error) {
	if r == nil {
		return nil, fmt.Errorf("extractor: %w", &featerrors.InvalidArgumentError{
			Argument: "reader",
			Message:  "reader cannot be nil",
		})
	}
	return e.scan(r, readerSource)
}

// ExtractBytes returns the feature-description mapping for data.
func (e *Extractor) ExtractBytes(data []byte) (*Descriptions, error) {
	return e.scan(bytes.NewReader(data), readerSource)
}

// scan applies AcceptLine to every line of r in order.
func (e *Extractor) scan(r io.Reader, source string) (*Descriptions, error) {
	log := e.logger().With("source", source)

	maxLine := e.MaxLineSize
	if maxLine <= 0 {
		maxLine = DefaultMaxLineSize
	}
	scanner := bufio.NewScanner(r)
	scanner.Split(scanLines)
	scanner.Buffer(make([]byte, 0, min(64*1024, maxLine)), maxLine)

	descs := NewDescriptions()
	lines, accepted := 0, 0
	for scanner.Scan() {
		lines++
		name, description, ok := AcceptLine(scanner.Text())
		if !ok {
			continue
		}
		accepted++
		descs.Set(name, description)
	}
	if err := scanner.Err(); err != nil {
		log.Error("reading description source failed", "line", lines+1, "error", err)
		return nil, fmt.Errorf("extractor: %w", &featerrors.IOError{Path: source, Op: "read", Cause: err})
	}

	log.Debug("extracted feature descriptions",
		"lines", lines,
		"accepted", accepted,
		"features", descs.Len(),
	)
	return descs, nil
}

// scanLines is a bufio.SplitFunc that ends a line at "\n", "\r\n", or a lone
// "\r". The terminator is not part of the returned line.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// A trailing '\r' may be the first half of "\r\n".
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

func (e *Extractor) logger() Logger {
	if e.Logger == nil {
		return NopLogger{}
	}
	return e.Logger
}
