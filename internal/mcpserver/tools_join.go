package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/pathtools/pathops"
)

type joinInput struct {
	Paths    []string `json:"paths"              jsonschema:"The paths to concatenate, in order"`
	Platform string   `json:"platform,omitempty" jsonschema:"Path grammar: windows, unix, or native (default: server config)"`
}

type joinOutput struct {
	Path     string `json:"path"`
	Platform string `json:"platform"`
}

func handleJoin(_ context.Context, _ *mcp.CallToolRequest, input joinInput) (*mcp.CallToolResult, joinOutput, error) {
	platform, err := resolvePlatform(input.Platform)
	if err != nil {
		return errResult(err), joinOutput{}, nil
	}
	if err := validateOperands(input.Paths); err != nil {
		return errResult(err), joinOutput{}, nil
	}

	return nil, joinOutput{
		Path:     pathops.Join(platform, input.Paths...),
		Platform: platform.String(),
	}, nil
}
