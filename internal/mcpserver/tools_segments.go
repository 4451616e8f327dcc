package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/pathtools/pathops"
)

type segmentsInput struct {
	Path     string `json:"path"               jsonschema:"The path to split into segments"`
	Platform string `json:"platform,omitempty" jsonschema:"Path grammar: windows, unix, or native (default: server config)"`
}

type segmentsOutput struct {
	Segments []string `json:"segments"`
	Count    int      `json:"count"`
	Platform string   `json:"platform"`
}

func handleSegments(_ context.Context, _ *mcp.CallToolRequest, input segmentsInput) (*mcp.CallToolResult, segmentsOutput, error) {
	platform, err := resolvePlatform(input.Platform)
	if err != nil {
		return errResult(err), segmentsOutput{}, nil
	}
	if err := validateOperand("path", input.Path); err != nil {
		return errResult(err), segmentsOutput{}, nil
	}

	segments := pathops.Segments(input.Path, platform)
	return nil, segmentsOutput{
		Segments: segments,
		Count:    len(segments),
		Platform: platform.String(),
	}, nil
}
