// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes pathtools path algebra as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/pathtools"
)

const serverInstructions = `pathtools MCP server — pure path algebra over Windows and Unix path grammars. No tool touches the filesystem; every operation is a string computation.

Platforms: every tool takes an optional platform field ("windows", "unix", or "native"). When omitted, the server default applies.

Configuration via environment variables in your MCP client config:
- PATHTOOLS_PLATFORM (default: native) — default grammar for tool calls
- PATHTOOLS_MAX_OPERANDS (default: 64) — operand cap for join/combine
- PATHTOOLS_MAX_PATH_LENGTH (default: 32768) — length cap per path operand

Windows grammar understands drive roots (C:\), drive-relative paths (C:foo), current-drive-rooted paths (\foo), UNC shares (\\server\share), and device paths (\\?\, \\.\, \??\). Device paths pass through resolution untouched.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "pathtools", Version: pathtools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "normalize",
		Description: "Normalize a path under the selected grammar: remove . and .. segments, collapse duplicate separators, and flip alternate separators to the canonical one. Does not require the path to be rooted; device paths are returned unchanged.",
	}, handleNormalize)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "full_path",
		Description: "Resolve a path to its fully qualified normalized form. Without base, the path itself must be fully qualified. With base, relative paths, drive-relative paths (C:foo), and current-drive-rooted paths (\\foo) resolve against it following Win32 rules on the windows platform.",
	}, handleFullPath)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "relative_path",
		Description: "Compute the relative traversal from one path to another (e.g. ..\\..\\x). Both operands are resolved first; relative operands require base. When the paths share no common root the resolved target is returned unchanged.",
	}, handleRelativePath)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "components",
		Description: "Decompose a path into its components: root and root kind, directory name, file name, stem, extension, segments, and the rooted/fully-qualified flags. Purely lexical; nothing is resolved.",
	}, handleComponents)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "join",
		Description: "Concatenate paths left to right, inserting exactly one separator between operands that need one. Rooted operands after the first are NOT special; use combine for cd-like semantics.",
	}, handleJoin)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "combine",
		Description: "Combine paths left to right with cd-like semantics: a rooted operand discards everything before it. Empty operands are skipped.",
	}, handleCombine)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "segments",
		Description: "Split a path into its segments. A root is reported as the first segment; duplicate separators produce no empty segments. Dot segments are kept; normalize first to resolve them.",
	}, handleSegments)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "classify_root",
		Description: "Classify a path's root: kind (none, rooted, current-drive-rooted, drive-relative, drive-rooted, unc, device, device-unc), the root text and length, and the rooted/fully-qualified flags.",
	}, handleClassifyRoot)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "path_equals",
		Description: "Compare two paths under the grammar's equality rules: trailing separators are ignored (but never below the root), any separator matches any separator, and the windows platform folds case. Inner segments are NOT normalized; normalize first to compare resolved forms.",
	}, handlePathEquals)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
