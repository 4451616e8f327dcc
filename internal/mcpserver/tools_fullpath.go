package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/pathtools/pathops"
)

type fullPathInput struct {
	Path     string `json:"path"               jsonschema:"The path to resolve"`
	Base     string `json:"base,omitempty"     jsonschema:"Fully qualified base to resolve relative paths against"`
	Platform string `json:"platform,omitempty" jsonschema:"Path grammar: windows, unix, or native (default: server config)"`
}

type fullPathOutput struct {
	Path           string `json:"path"`
	Root           string `json:"root"`
	RootKind       string `json:"root_kind"`
	FullyQualified bool   `json:"fully_qualified"`
	Platform       string `json:"platform"`
}

func handleFullPath(_ context.Context, _ *mcp.CallToolRequest, input fullPathInput) (*mcp.CallToolResult, fullPathOutput, error) {
	platform, err := resolvePlatform(input.Platform)
	if err != nil {
		return errResult(err), fullPathOutput{}, nil
	}
	if err := validateOperand("path", input.Path); err != nil {
		return errResult(err), fullPathOutput{}, nil
	}
	if err := validateOperand("base", input.Base); err != nil {
		return errResult(err), fullPathOutput{}, nil
	}

	var resolved string
	if input.Base != "" {
		resolved, err = pathops.FullPathFrom(input.Base, input.Path, platform)
	} else {
		resolved, err = pathops.FullPath(input.Path, platform)
	}
	if err != nil {
		return errResult(err), fullPathOutput{}, nil
	}

	return nil, fullPathOutput{
		Path:           resolved,
		Root:           pathops.PathRoot(resolved, platform),
		RootKind:       pathops.ClassifyRoot(resolved, platform).String(),
		FullyQualified: pathops.IsPathFullyQualified(resolved, platform),
		Platform:       platform.String(),
	}, nil
}
