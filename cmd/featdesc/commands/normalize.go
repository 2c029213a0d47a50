package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/featdesc/internal/cliutil"
	"github.com/erraggy/featdesc/naming"
)

// NormalizeFlags contains flags for the normalize command
type NormalizeFlags struct {
	Format string
}

// normalizedName is one row of structured normalize output.
type normalizedName struct {
	Input      string `json:"input"      yaml:"input"`
	Normalized string `json:"normalized" yaml:"normalized"`
}

// SetupNormalizeFlags creates and configures a FlagSet for the normalize command.
func SetupNormalizeFlags() (*flag.FlagSet, *NormalizeFlags) {
	fs := flag.NewFlagSet("normalize", flag.ContinueOnError)
	flags := &NormalizeFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: featdesc normalize [flags] <identifier>...\n\n")
		cliutil.Writef(output, "Convert camelCase identifiers to upper-snake-case feature names.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  featdesc normalize userId HTTPServer 9lives\n")
		cliutil.Writef(output, "  featdesc normalize --format json signUpDate\n")
	}

	return fs, flags
}

// HandleNormalize executes the normalize command. Every valid identifier is
// printed; an empty identifier makes the command fail after the others.
func HandleNormalize(args []string) error {
	fs, flags := SetupNormalizeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("normalize command requires at least one identifier")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	results := make([]normalizedName, 0, fs.NArg())
	var errs []error
	for i, name := range fs.Args() {
		normalized, err := naming.NormalizeIdentifier(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("argument %d: %w", i+1, err))
			continue
		}
		results = append(results, normalizedName{Input: name, Normalized: normalized})
	}

	if flags.Format == FormatText {
		for _, r := range results {
			cliutil.Writef(os.Stdout, "%s\n", r.Normalized)
		}
	} else {
		data, err := MarshalStructured(results, flags.Format)
		if err != nil {
			return err
		}
		cliutil.Writef(os.Stdout, "%s", data)
	}

	return errors.Join(errs...)
}
