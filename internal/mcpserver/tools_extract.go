package mcpserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/featdesc/extractor"
	"github.com/erraggy/featdesc/internal/options"
)

type extractInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a data description file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline data description text"`
	Offset  int    `json:"offset,omitempty"  jsonschema:"Skip the first N features"`
	Limit   int    `json:"limit,omitempty"   jsonschema:"Maximum number of features to return"`
}

type extractOutput struct {
	Total    int               `json:"total"`
	Returned int               `json:"returned"`
	Features []extractor.Entry `json:"features,omitempty"`
}

func handleExtract(_ context.Context, _ *mcp.CallToolRequest, input extractInput) (*mcp.CallToolResult, extractOutput, error) {
	descs, err := input.run()
	if err != nil {
		return errResult(err), extractOutput{}, nil
	}

	page := paginate(descs.Entries(), input.Offset, input.Limit)
	return nil, extractOutput{
		Total:    descs.Len(),
		Returned: len(page),
		Features: page,
	}, nil
}

// run validates the input source and performs the extraction.
func (in extractInput) run() (*extractor.Descriptions, error) {
	if err := options.ValidateSingleInputSource("file/content", in.File != "", in.Content != ""); err != nil {
		return nil, err
	}

	e := extractor.New()
	e.MaxLineSize = cfg.MaxLineSize

	if in.File != "" {
		if !cfg.AllowFiles {
			return nil, errors.New("reading files is disabled (FEATDESC_ALLOW_FILES=false); pass content instead")
		}
		return e.Extract(in.File)
	}

	if int64(len(in.Content)) > cfg.MaxContentSize {
		return nil, fmt.Errorf("content size %d exceeds maximum %d bytes", len(in.Content), cfg.MaxContentSize)
	}
	return e.ExtractBytes([]byte(in.Content))
}
