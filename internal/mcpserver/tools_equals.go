package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/pathtools/pathops"
)

type pathEqualsInput struct {
	Path1    string `json:"path1"              jsonschema:"The first path to compare"`
	Path2    string `json:"path2"              jsonschema:"The second path to compare"`
	Platform string `json:"platform,omitempty" jsonschema:"Path grammar: windows, unix, or native (default: server config)"`
}

type pathEqualsOutput struct {
	Equal    bool   `json:"equal"`
	Platform string `json:"platform"`
}

func handlePathEquals(_ context.Context, _ *mcp.CallToolRequest, input pathEqualsInput) (*mcp.CallToolResult, pathEqualsOutput, error) {
	platform, err := resolvePlatform(input.Platform)
	if err != nil {
		return errResult(err), pathEqualsOutput{}, nil
	}
	if err := validateOperand("path1", input.Path1); err != nil {
		return errResult(err), pathEqualsOutput{}, nil
	}
	if err := validateOperand("path2", input.Path2); err != nil {
		return errResult(err), pathEqualsOutput{}, nil
	}

	return nil, pathEqualsOutput{
		Equal:    pathops.PathEquals(input.Path1, input.Path2, platform),
		Platform: platform.String(),
	}, nil
}
