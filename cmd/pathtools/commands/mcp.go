package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/pathtools/internal/cliutil"
	"github.com/erraggy/pathtools/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: pathtools mcp\n\n")
		cliutil.Writef(fs.Output(), "Run a Model Context Protocol server over stdio, exposing path operations\n")
		cliutil.Writef(fs.Output(), "as MCP tools. Intended to be launched by an MCP client, not interactively.\n\n")
		cliutil.Writef(fs.Output(), "Environment:\n")
		cliutil.Writef(fs.Output(), "  PATHTOOLS_PLATFORM          default grammar for tool calls (default: native)\n")
		cliutil.Writef(fs.Output(), "  PATHTOOLS_MAX_OPERANDS      operand cap for join/combine (default: 64)\n")
		cliutil.Writef(fs.Output(), "  PATHTOOLS_MAX_PATH_LENGTH   length cap per path operand (default: 32768)\n")
		cliutil.Writef(fs.Output(), "\nExample client config:\n")
		cliutil.Writef(fs.Output(), "  {\"mcpServers\": {\"pathtools\": {\"command\": \"pathtools\", \"args\": [\"mcp\"]}}}\n")
	}

	return fs
}

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	return mcpserver.Run(context.Background())
}
