package mcpserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/featdesc/naming"
)

type normalizeInput struct {
	Identifiers []string `json:"identifiers" jsonschema:"camelCase or PascalCase identifiers to normalize"`
}

type normalizeResult struct {
	Input      string `json:"input"`
	Normalized string `json:"normalized,omitempty"`
	Error      string `json:"error,omitempty"`
}

type normalizeOutput struct {
	Results []normalizeResult `json:"results"`
}

func handleNormalize(_ context.Context, _ *mcp.CallToolRequest, input normalizeInput) (*mcp.CallToolResult, normalizeOutput, error) {
	if len(input.Identifiers) == 0 {
		return errResult(errors.New("identifiers must contain at least one identifier")), normalizeOutput{}, nil
	}

	output := normalizeOutput{Results: make([]normalizeResult, 0, len(input.Identifiers))}
	for _, id := range input.Identifiers {
		r := normalizeResult{Input: id}
		normalized, err := naming.NormalizeIdentifier(id)
		if err != nil {
			r.Error = sanitizeError(err)
		} else {
			r.Normalized = normalized
		}
		output.Results = append(output.Results, r)
	}
	return nil, output, nil
}
