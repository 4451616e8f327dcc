package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/pathtools/pathops"
)

type combineInput struct {
	Paths    []string `json:"paths"              jsonschema:"The paths to combine, in order"`
	Platform string   `json:"platform,omitempty" jsonschema:"Path grammar: windows, unix, or native (default: server config)"`
}

type combineOutput struct {
	Path     string `json:"path"`
	Rooted   bool   `json:"rooted"`
	Platform string `json:"platform"`
}

func handleCombine(_ context.Context, _ *mcp.CallToolRequest, input combineInput) (*mcp.CallToolResult, combineOutput, error) {
	platform, err := resolvePlatform(input.Platform)
	if err != nil {
		return errResult(err), combineOutput{}, nil
	}
	if err := validateOperands(input.Paths); err != nil {
		return errResult(err), combineOutput{}, nil
	}

	combined := pathops.Combine(platform, input.Paths...)
	return nil, combineOutput{
		Path:     combined,
		Rooted:   pathops.IsPathRooted(combined, platform),
		Platform: platform.String(),
	}, nil
}
