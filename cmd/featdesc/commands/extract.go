package commands

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/featdesc/extractor"
	"github.com/erraggy/featdesc/internal/cliutil"
)

// ExtractFlags contains flags for the extract command
type ExtractFlags struct {
	Format      string
	Output      string
	MaxLineSize int
	Quiet       bool
	Verbose     bool
}

// SetupExtractFlags creates and configures a FlagSet for the extract command.
// Returns the FlagSet and an ExtractFlags struct with bound flag variables.
func SetupExtractFlags() (*flag.FlagSet, *ExtractFlags) {
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)
	flags := &ExtractFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Output, "o", "", "write output to file instead of stdout")
	fs.StringVar(&flags.Output, "output", "", "write output to file instead of stdout")
	fs.IntVar(&flags.MaxLineSize, "max-line-size", extractor.DefaultMaxLineSize, "longest accepted line in bytes")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the mapping, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the mapping, no diagnostic messages")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log extraction details to stderr")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: featdesc extract [flags] <file|->\n\n")
		cliutil.Writef(output, "Extract \"feature: description\" lines from a data description file.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  featdesc extract data_description.txt\n")
		cliutil.Writef(output, "  featdesc extract --format yaml -o features.yaml data_description.txt\n")
		cliutil.Writef(output, "  cat data_description.txt | featdesc extract -q --format json -\n")
		cliutil.Writef(output, "\nExit Codes:\n")
		cliutil.Writef(output, "  0    Extraction successful (possibly with zero features)\n")
		cliutil.Writef(output, "  1    The file could not be read or flags were invalid\n")
	}

	return fs, flags
}

// HandleExtract executes the extract command
func HandleExtract(args []string) error {
	fs, flags := SetupExtractFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("extract command requires exactly one file path or '-' for stdin")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	sourcePath := fs.Arg(0)
	if flags.Output != "" {
		if err := ValidateOutputPath(flags.Output, sourcePath); err != nil {
			return err
		}
	}

	descs, err := extractSource(newExtractor(flags.Verbose, flags.MaxLineSize), sourcePath)
	if err != nil {
		return fmt.Errorf("extracting %s: %w", FormatSourcePath(sourcePath), err)
	}

	data, err := renderDescriptions(descs, flags.Format)
	if err != nil {
		return err
	}
	if err := writeResult(flags.Output, data); err != nil {
		return err
	}

	if !flags.Quiet {
		cliutil.Writef(os.Stderr, "Extracted %d features from %s\n", descs.Len(), FormatSourcePath(sourcePath))
		if flags.Output != "" {
			cliutil.Writef(os.Stderr, "Output written to: %s\n", flags.Output)
		}
	}
	return nil
}

// renderDescriptions formats descs as an aligned table or structured data.
func renderDescriptions(descs *extractor.Descriptions, format string) ([]byte, error) {
	if format != FormatText {
		return MarshalStructured(descs, format)
	}

	rows := make([][]string, 0, descs.Len())
	for _, e := range descs.Entries() {
		rows = append(rows, []string{e.Name, e.Description})
	}
	var buf bytes.Buffer
	if err := cliutil.WriteTable(&buf, []string{"NAME", "DESCRIPTION"}, rows); err != nil {
		return nil, fmt.Errorf("commands: rendering table: %w", err)
	}
	return buf.Bytes(), nil
}
