// Package commands provides CLI command handlers for featdesc.
package commands

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/featdesc/extractor"
	"github.com/erraggy/featdesc/featerrors"
	"github.com/erraggy/featdesc/internal/cliutil"
	"github.com/erraggy/featdesc/internal/fileutil"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return &featerrors.ConfigError{
			Option:  "format",
			Value:   format,
			Message: fmt.Sprintf("valid formats: %s, %s, %s", FormatText, FormatJSON, FormatYAML),
		}
	}
	return nil
}

// MarshalStructured marshals data in the specified format (json or yaml).
func MarshalStructured(data any, format string) ([]byte, error) {
	var out []byte
	var err error

	switch format {
	case FormatJSON:
		out, err = json.MarshalIndent(data, "", "  ")
		if err == nil {
			out = append(out, '\n')
		}
	case FormatYAML:
		out, err = yaml.Marshal(data)
	default:
		return nil, fmt.Errorf("commands: invalid format for structured output: %s", format)
	}

	if err != nil {
		return nil, fmt.Errorf("commands: marshaling to %s: %w", format, err)
	}
	return out, nil
}

// ValidateOutputPath checks that outputPath does not overwrite inputPath.
func ValidateOutputPath(outputPath, inputPath string) error {
	if inputPath == StdinFilePath {
		return nil
	}
	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("commands: invalid output path: %w", err)
	}
	absInputPath, err := filepath.Abs(inputPath)
	if err != nil {
		return fmt.Errorf("commands: invalid input path %s: %w", inputPath, err)
	}
	if absOutputPath == absInputPath {
		return fmt.Errorf("commands: output file %s would overwrite input file %s", outputPath, inputPath)
	}
	return nil
}

// FormatSourcePath returns a display-friendly path for a description source.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatSourcePath(path string) string {
	if path == StdinFilePath {
		return "<stdin>"
	}
	return path
}

// newExtractor returns an Extractor that logs debug output to stderr when
// verbose is set.
func newExtractor(verbose bool, maxLineSize int) *extractor.Extractor {
	e := extractor.New()
	if maxLineSize > 0 {
		e.MaxLineSize = maxLineSize
	}
	if verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		e.Logger = extractor.NewSlogAdapter(slog.New(handler))
	}
	return e
}

// extractSource reads the mapping from path, or from stdin when path is "-".
func extractSource(e *extractor.Extractor, path string) (*extractor.Descriptions, error) {
	if path == StdinFilePath {
		return e.ExtractReader(os.Stdin)
	}
	return e.Extract(path)
}

// writeResult writes data to outputPath, or to stdout when outputPath is empty.
func writeResult(outputPath string, data []byte) error {
	if outputPath == "" {
		cliutil.Writef(os.Stdout, "%s", data)
		return nil
	}
	return fileutil.WriteOutput(outputPath, data)
}
