package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/pathtools/internal/cliutil"
	"github.com/erraggy/pathtools/pathops"
)

// FullFlags contains flags for the full command
type FullFlags struct {
	Platform string
	Format   string
	Base     string
}

// SetupFullFlags creates and configures a FlagSet for the full command.
// Returns the FlagSet and a FullFlags struct with bound flag variables.
func SetupFullFlags() (*flag.FlagSet, *FullFlags) {
	fs := flag.NewFlagSet("full", flag.ContinueOnError)
	flags := &FullFlags{}

	fs.StringVar(&flags.Platform, "platform", "native", "path grammar: windows, unix, or native")
	fs.StringVar(&flags.Platform, "p", "native", "path grammar: windows, unix, or native")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Base, "base", "", "fully qualified base to resolve relative paths against")
	fs.StringVar(&flags.Base, "b", "", "fully qualified base to resolve relative paths against")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: pathtools full [flags] <path>\n\n")
		cliutil.Writef(fs.Output(), "Resolve a path to its fully qualified normalized form. Without --base the\n")
		cliutil.Writef(fs.Output(), "path itself must be fully qualified. With --base, relative paths resolve\n")
		cliutil.Writef(fs.Output(), "against it; on the windows grammar drive-relative paths (C:foo) and\n")
		cliutil.Writef(fs.Output(), "current-drive-rooted paths (\\foo) follow Win32 resolution rules.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  pathtools full -p windows 'C:\\a\\b\\..\\c'\n")
		cliutil.Writef(fs.Output(), "  pathtools full -p windows -b 'C:\\work' 'sub\\file.txt'\n")
		cliutil.Writef(fs.Output(), "  pathtools full -p unix -b /srv 'logs/app.log'\n")
	}

	return fs, flags
}

type fullResult struct {
	Path           string `json:"path" yaml:"path"`
	Root           string `json:"root" yaml:"root"`
	RootKind       string `json:"root_kind" yaml:"root_kind"`
	FullyQualified bool   `json:"fully_qualified" yaml:"fully_qualified"`
	Platform       string `json:"platform" yaml:"platform"`
}

// HandleFull executes the full command
func HandleFull(args []string) error {
	fs, flags := SetupFullFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("full command requires exactly one path")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	platform, err := ParsePlatform(flags.Platform)
	if err != nil {
		return err
	}

	var resolved string
	if flags.Base != "" {
		resolved, err = pathops.FullPathFrom(flags.Base, fs.Arg(0), platform)
	} else {
		resolved, err = pathops.FullPath(fs.Arg(0), platform)
	}
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}

	if flags.Format == FormatText {
		fmt.Println(resolved)
		return nil
	}
	return OutputStructured(fullResult{
		Path:           resolved,
		Root:           pathops.PathRoot(resolved, platform),
		RootKind:       pathops.ClassifyRoot(resolved, platform).String(),
		FullyQualified: pathops.IsPathFullyQualified(resolved, platform),
		Platform:       platform.String(),
	}, flags.Format)
}
