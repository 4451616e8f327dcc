package main

import (
	"fmt"
	"os"

	"github.com/erraggy/pathtools"
	"github.com/erraggy/pathtools/cmd/pathtools/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("pathtools v%s\n", pathtools.Version())
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "normalize":
		err = commands.HandleNormalize(args)
	case "full":
		err = commands.HandleFull(args)
	case "relative":
		err = commands.HandleRelative(args)
	case "components":
		err = commands.HandleComponents(args)
	case "segments":
		err = commands.HandleSegments(args)
	case "join":
		err = commands.HandleJoin(args)
	case "combine":
		err = commands.HandleCombine(args)
	case "equals":
		err = commands.HandleEquals(args)
	case "mcp":
		err = commands.HandleMCP(args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var commandNames = []string{
	"normalize", "full", "relative", "components", "segments",
	"join", "combine", "equals", "mcp", "version", "help",
}

// suggestCommand returns the closest known command within edit distance 2,
// or the empty string when nothing is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDistance := 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDistance {
			best = name
			bestDistance = d
		}
	}
	return best
}

func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`pathtools - Pure path algebra for Windows and Unix path grammars

Usage:
  pathtools <command> [options]

Commands:
  normalize   Remove . and .. segments and canonicalize separators
  full        Resolve a path to its fully qualified normalized form
  relative    Compute the relative traversal between two paths
  components  Decompose a path into root, directory, file name, and extension
  segments    Split a path into its segments
  join        Concatenate paths with separator insertion
  combine     Combine paths with cd-like rooted-operand semantics
  equals      Compare two paths under the grammar's equality rules
  mcp         Run a Model Context Protocol server over stdio
  version     Show version information
  help        Show this help message

Every command takes -p/--platform (windows, unix, or native) and operates
purely on strings; no command touches the filesystem.

Examples:
  pathtools normalize -p windows 'C:/a/./b/../c'
  pathtools full -p windows -b 'C:\work' 'sub\file.txt'
  pathtools relative -p unix /srv/data /srv/logs
  pathtools components --format json -p windows '\\server\share\file.txt'
  pathtools equals -q -p windows 'C:\A' 'c:/a' && echo same

Run 'pathtools <command> --help' for more information on a command.`)
}
