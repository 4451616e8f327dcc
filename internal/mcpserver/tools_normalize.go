package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/pathtools/pathops"
)

type normalizeInput struct {
	Path     string `json:"path"               jsonschema:"The path to normalize"`
	Platform string `json:"platform,omitempty" jsonschema:"Path grammar: windows, unix, or native (default: server config)"`
}

type normalizeOutput struct {
	Path     string `json:"path"`
	Changed  bool   `json:"changed"`
	Platform string `json:"platform"`
}

func handleNormalize(_ context.Context, _ *mcp.CallToolRequest, input normalizeInput) (*mcp.CallToolResult, normalizeOutput, error) {
	platform, err := resolvePlatform(input.Platform)
	if err != nil {
		return errResult(err), normalizeOutput{}, nil
	}
	if err := validateOperand("path", input.Path); err != nil {
		return errResult(err), normalizeOutput{}, nil
	}

	normalized := pathops.NormalizeDirectorySeparators(
		pathops.RemoveRelativeSegments(input.Path, platform), platform)

	return nil, normalizeOutput{
		Path:     normalized,
		Changed:  normalized != input.Path,
		Platform: platform.String(),
	}, nil
}
