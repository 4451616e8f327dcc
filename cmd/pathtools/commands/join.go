package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/pathtools/internal/cliutil"
	"github.com/erraggy/pathtools/pathops"
)

// JoinFlags contains flags for the join command
type JoinFlags struct {
	Platform string
	Format   string
}

// SetupJoinFlags creates and configures a FlagSet for the join command.
// Returns the FlagSet and a JoinFlags struct with bound flag variables.
func SetupJoinFlags() (*flag.FlagSet, *JoinFlags) {
	fs := flag.NewFlagSet("join", flag.ContinueOnError)
	flags := &JoinFlags{}

	fs.StringVar(&flags.Platform, "platform", "native", "path grammar: windows, unix, or native")
	fs.StringVar(&flags.Platform, "p", "native", "path grammar: windows, unix, or native")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: pathtools join [flags] <path1> <path2> [path3...]\n\n")
		cliutil.Writef(fs.Output(), "Concatenate paths left to right, inserting exactly one separator between\n")
		cliutil.Writef(fs.Output(), "operands that need one. Rooted operands after the first are not special;\n")
		cliutil.Writef(fs.Output(), "use combine for cd-like semantics.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  pathtools join -p windows 'C:\\a' b c\n")
		cliutil.Writef(fs.Output(), "  pathtools join -p unix /a /b\n")
	}

	return fs, flags
}

type joinResult struct {
	Path     string `json:"path" yaml:"path"`
	Platform string `json:"platform" yaml:"platform"`
}

// HandleJoin executes the join command
func HandleJoin(args []string) error {
	fs, flags := SetupJoinFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() < 2 {
		fs.Usage()
		return fmt.Errorf("join command requires at least two paths")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	platform, err := ParsePlatform(flags.Platform)
	if err != nil {
		return err
	}

	joined := pathops.Join(platform, fs.Args()...)
	if flags.Format == FormatText {
		fmt.Println(joined)
		return nil
	}
	return OutputStructured(joinResult{Path: joined, Platform: platform.String()}, flags.Format)
}
