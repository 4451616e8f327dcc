package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/pathtools/pathops"
)

type componentsInput struct {
	Path     string `json:"path"               jsonschema:"The path to decompose"`
	Platform string `json:"platform,omitempty" jsonschema:"Path grammar: windows, unix, or native (default: server config)"`
}

type componentsOutput struct {
	Root           string   `json:"root"`
	RootKind       string   `json:"root_kind"`
	Directory      string   `json:"directory"`
	FileName       string   `json:"file_name"`
	Stem           string   `json:"stem"`
	Extension      string   `json:"extension"`
	Segments       []string `json:"segments,omitempty"`
	Rooted         bool     `json:"rooted"`
	FullyQualified bool     `json:"fully_qualified"`
	Platform       string   `json:"platform"`
}

func handleComponents(_ context.Context, _ *mcp.CallToolRequest, input componentsInput) (*mcp.CallToolResult, componentsOutput, error) {
	platform, err := resolvePlatform(input.Platform)
	if err != nil {
		return errResult(err), componentsOutput{}, nil
	}
	if err := validateOperand("path", input.Path); err != nil {
		return errResult(err), componentsOutput{}, nil
	}

	return nil, componentsOutput{
		Root:           pathops.PathRoot(input.Path, platform),
		RootKind:       pathops.ClassifyRoot(input.Path, platform).String(),
		Directory:      pathops.DirectoryName(input.Path, platform),
		FileName:       pathops.FileName(input.Path, platform),
		Stem:           pathops.FileNameWithoutExtension(input.Path, platform),
		Extension:      pathops.Extension(input.Path, platform),
		Segments:       pathops.Segments(input.Path, platform),
		Rooted:         pathops.IsPathRooted(input.Path, platform),
		FullyQualified: pathops.IsPathFullyQualified(input.Path, platform),
		Platform:       platform.String(),
	}, nil
}
