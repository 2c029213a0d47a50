package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/featdesc/internal/cliutil"
	"github.com/erraggy/featdesc/internal/mcpserver"
)

// SetupMCPFlags creates the FlagSet for the mcp command. It takes no flags;
// the server is configured through FEATDESC_* environment variables.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: featdesc mcp\n\n")
		cliutil.Writef(output, "Run an MCP (Model Context Protocol) server over stdio exposing the\n")
		cliutil.Writef(output, "normalize_identifier and extract_features tools.\n\n")
		cliutil.Writef(output, "Environment:\n")
		cliutil.Writef(output, "  FEATDESC_ALLOW_FILES       allow reading files from disk (default: true)\n")
		cliutil.Writef(output, "  FEATDESC_MAX_LINE_SIZE     longest accepted line in bytes (default: 1048576)\n")
		cliutil.Writef(output, "  FEATDESC_MAX_CONTENT_SIZE  largest inline content in bytes (default: 10485760)\n")
		cliutil.Writef(output, "  FEATDESC_EXTRACT_LIMIT     default page size for extract_features (default: 100)\n")
		cliutil.Writef(output, "  FEATDESC_MAX_LIMIT         largest page size a client may request (default: 1000)\n")
	}
	return fs
}

// HandleMCP executes the mcp command and blocks until the client disconnects
// or the process is interrupted.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mcpserver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
