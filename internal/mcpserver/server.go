// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes featdesc capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/featdesc"
)

const serverInstructions = `featdesc MCP server: normalizes camelCase identifiers and extracts "feature: description" pairs from data description files.

Configuration: defaults are configurable via FEATDESC_* environment variables set in your MCP client config.

Key settings:
- FEATDESC_ALLOW_FILES (default: true): allow extract_features to read files from disk
- FEATDESC_MAX_LINE_SIZE (default: 1048576): longest accepted line in bytes
- FEATDESC_MAX_CONTENT_SIZE (default: 10485760): largest inline content in bytes
- FEATDESC_EXTRACT_LIMIT (default: 100): default page size for extract_features
- FEATDESC_MAX_LIMIT (default: 1000): largest page size a client may request`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	return newServer().Run(ctx, &mcp.StdioTransport{})
}

func newServer() *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "featdesc", Version: featdesc.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "normalize_identifier",
		Description: "Convert camelCase or PascalCase identifiers to upper-snake-case feature names (userId -> USER_ID, HTTPServer -> HTTP_SERVER). Names starting with a digit get a leading underscore (9lives -> _9LIVES). Digit/letter transitions are not word boundaries. Empty identifiers are reported per item.",
	}, handleNormalize)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "extract_features",
		Description: "Extract feature descriptions from a data description file. Every line of the form `token: description` whose token is alphanumeric and starts the line becomes a feature; the token is normalized to upper-snake-case. Other lines are skipped. Provide exactly one of file or content. Later duplicates replace earlier descriptions. Use offset/limit to paginate large files.",
	}, handleExtract)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ExtractLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ExtractLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
