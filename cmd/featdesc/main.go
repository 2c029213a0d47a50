package main

import (
	"fmt"
	"os"

	"github.com/erraggy/featdesc"
	"github.com/erraggy/featdesc/cmd/featdesc/commands"
	"github.com/erraggy/featdesc/internal/stringutil"
)

// commandHandlers maps each subcommand that takes arguments to its handler.
var commandHandlers = map[string]func([]string) error{
	"extract":   commands.HandleExtract,
	"normalize": commands.HandleNormalize,
	"generate":  commands.HandleGenerate,
	"mcp":       commands.HandleMCP,
}

// knownCommands is the full list used for typo suggestions.
var knownCommands = []string{"extract", "normalize", "generate", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		if len(os.Args) > 2 && os.Args[2] == "--verbose" {
			fmt.Println(featdesc.BuildInfo())
			return
		}
		fmt.Printf("featdesc v%s\n", featdesc.Version())
	case "help", "-h", "--help":
		printUsage()
	default:
		handler, ok := commandHandlers[command]
		if !ok {
			fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
			if suggestion := suggestCommand(command); suggestion != "" {
				fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", suggestion)
			}
			fmt.Fprintln(os.Stderr)
			printUsage()
			os.Exit(1)
		}
		if err := handler(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

// suggestCommand returns the known command closest to input, or "" when
// nothing is within an edit distance of 2.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, cmd := range knownCommands {
		if d := stringutil.Levenshtein(input, cmd); d < bestDist {
			best, bestDist = cmd, d
		}
	}
	return best
}

func printUsage() {
	fmt.Println(`featdesc - Feature Description Tools

Usage:
  featdesc <command> [options]

Commands:
  extract     Extract "feature: description" pairs from a data description file
  normalize   Convert camelCase identifiers to upper-snake-case feature names
  generate    Generate Go constants from a data description file
  mcp         Run an MCP server over stdio
  version     Show version information (--verbose for build details)
  help        Show this help message

Examples:
  featdesc extract data_description.txt
  featdesc extract --format json -o features.json data_description.txt
  featdesc normalize userId HTTPServer 9lives
  featdesc generate --package housing --type Column -o columns.go data_description.txt

Run 'featdesc <command> --help' for more information on a command.`)
}
