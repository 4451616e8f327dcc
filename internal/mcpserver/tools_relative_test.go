package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelativePathTool_Windows(t *testing.T) {
	input := relativePathInput{
		From:     `C:\a\b`,
		To:       `C:\a\c\d`,
		Platform: "windows",
	}
	_, output, err := handleRelativePath(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, `..\c\d`, output.Path)
	assert.True(t, output.Traverse)
	assert.Equal(t, "windows", output.Platform)
}

func TestRelativePathTool_DifferentRoots(t *testing.T) {
	input := relativePathInput{
		From:     `C:\a`,
		To:       `D:\b`,
		Platform: "windows",
	}
	_, output, err := handleRelativePath(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, `D:\b`, output.Path)
	assert.False(t, output.Traverse, "no traversal exists across roots")
}

func TestRelativePathTool_WithBase(t *testing.T) {
	input := relativePathInput{
		From:     "data",
		To:       "logs",
		Base:     "/srv",
		Platform: "unix",
	}
	_, output, err := handleRelativePath(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, "../logs", output.Path)
	assert.True(t, output.Traverse)
}

func TestRelativePathTool_Identical(t *testing.T) {
	input := relativePathInput{
		From:     "/a/b",
		To:       "/a/b",
		Platform: "unix",
	}
	_, output, err := handleRelativePath(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, ".", output.Path)
}

func TestRelativePathTool_RelativeOperandWithoutBase(t *testing.T) {
	input := relativePathInput{
		From:     "a/b",
		To:       "/c",
		Platform: "unix",
	}
	result, output, err := handleRelativePath(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	assert.Empty(t, output.Path)
}
