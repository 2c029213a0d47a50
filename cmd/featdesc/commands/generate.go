package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/erraggy/featdesc/codegen"
	"github.com/erraggy/featdesc/extractor"
	"github.com/erraggy/featdesc/internal/cliutil"
)

// GenerateFlags contains flags for the generate command
type GenerateFlags struct {
	Output      string
	PackageName string
	TypeName    string
	MaxLineSize int
	Quiet       bool
	Verbose     bool
}

// SetupGenerateFlags creates and configures a FlagSet for the generate command.
// Returns the FlagSet and a GenerateFlags struct with bound flag variables.
func SetupGenerateFlags() (*flag.FlagSet, *GenerateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &GenerateFlags{}

	fs.StringVar(&flags.Output, "o", "", "write generated Go source to file instead of stdout")
	fs.StringVar(&flags.Output, "output", "", "write generated Go source to file instead of stdout")
	fs.StringVar(&flags.PackageName, "package", codegen.DefaultPackageName, "package name of the generated file")
	fs.StringVar(&flags.TypeName, "type", "", "declare a named string type for the constants")
	fs.IntVar(&flags.MaxLineSize, "max-line-size", extractor.DefaultMaxLineSize, "longest accepted line in bytes")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: no diagnostic messages")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log extraction details to stderr")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: featdesc generate [flags] <file|->\n\n")
		cliutil.Writef(output, "Generate Go constants for every feature in a data description file.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  featdesc generate data_description.txt\n")
		cliutil.Writef(output, "  featdesc generate --package housing --type Column -o columns.go data_description.txt\n")
	}

	return fs, flags
}

// HandleGenerate executes the generate command
func HandleGenerate(args []string) error {
	fs, flags := SetupGenerateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("generate command requires exactly one file path or '-' for stdin")
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

	opts := []codegen.Option{
		codegen.WithPackageName(flags.PackageName),
		codegen.WithTypeName(flags.TypeName),
	}
	if sourcePath != StdinFilePath {
		opts = append(opts, codegen.WithSource(filepath.Base(sourcePath)))
	}
	src, err := codegen.Generate(descs, opts...)
	if err != nil {
		return fmt.Errorf("generating code: %w", err)
	}

	if err := writeResult(flags.Output, src); err != nil {
		return err
	}

	if !flags.Quiet {
		cliutil.Writef(os.Stderr, "Generated %d constants from %s\n", descs.Len(), FormatSourcePath(sourcePath))
		if flags.Output != "" {
			cliutil.Writef(os.Stderr, "Output written to: %s\n", flags.Output)
		}
	}
	return nil
}
