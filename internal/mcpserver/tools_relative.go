package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/pathtools/pathops"
)

type relativePathInput struct {
	From     string `json:"from"               jsonschema:"The path to traverse from"`
	To       string `json:"to"                 jsonschema:"The path to traverse to"`
	Base     string `json:"base,omitempty"     jsonschema:"Fully qualified base to resolve relative operands against"`
	Platform string `json:"platform,omitempty" jsonschema:"Path grammar: windows, unix, or native (default: server config)"`
}

type relativePathOutput struct {
	Path     string `json:"path"`
	Traverse bool   `json:"traverse"`
	Platform string `json:"platform"`
}

func handleRelativePath(_ context.Context, _ *mcp.CallToolRequest, input relativePathInput) (*mcp.CallToolResult, relativePathOutput, error) {
	platform, err := resolvePlatform(input.Platform)
	if err != nil {
		return errResult(err), relativePathOutput{}, nil
	}
	for field, value := range map[string]string{"from": input.From, "to": input.To, "base": input.Base} {
		if err := validateOperand(field, value); err != nil {
			return errResult(err), relativePathOutput{}, nil
		}
	}

	var rel string
	if input.Base != "" {
		rel, err = pathops.RelativePathFrom(input.Base, input.From, input.To, platform)
	} else {
		rel, err = pathops.RelativePath(input.From, input.To, platform)
	}
	if err != nil {
		return errResult(err), relativePathOutput{}, nil
	}

	return nil, relativePathOutput{
		Path: rel,
		// A rooted result means the operands share no common root and no
		// traversal exists.
		Traverse: !pathops.IsPathRooted(rel, platform),
		Platform: platform.String(),
	}, nil
}
