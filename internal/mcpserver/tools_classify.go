package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/pathtools/pathops"
)

type classifyRootInput struct {
	Path     string `json:"path"               jsonschema:"The path whose root to classify"`
	Platform string `json:"platform,omitempty" jsonschema:"Path grammar: windows, unix, or native (default: server config)"`
}

type classifyRootOutput struct {
	Root           string `json:"root"`
	RootKind       string `json:"root_kind"`
	RootLength     int    `json:"root_length"`
	Rooted         bool   `json:"rooted"`
	FullyQualified bool   `json:"fully_qualified"`
	Platform       string `json:"platform"`
}

func handleClassifyRoot(_ context.Context, _ *mcp.CallToolRequest, input classifyRootInput) (*mcp.CallToolResult, classifyRootOutput, error) {
	platform, err := resolvePlatform(input.Platform)
	if err != nil {
		return errResult(err), classifyRootOutput{}, nil
	}
	if err := validateOperand("path", input.Path); err != nil {
		return errResult(err), classifyRootOutput{}, nil
	}

	return nil, classifyRootOutput{
		Root:           pathops.PathRoot(input.Path, platform),
		RootKind:       pathops.ClassifyRoot(input.Path, platform).String(),
		RootLength:     pathops.RootLength(input.Path, platform),
		Rooted:         pathops.IsPathRooted(input.Path, platform),
		FullyQualified: pathops.IsPathFullyQualified(input.Path, platform),
		Platform:       platform.String(),
	}, nil
}
