package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/pathtools/internal/cliutil"
	"github.com/erraggy/pathtools/pathops"
)

// RelativeFlags contains flags for the relative command
type RelativeFlags struct {
	Platform string
	Format   string
	Base     string
}

// SetupRelativeFlags creates and configures a FlagSet for the relative command.
// Returns the FlagSet and a RelativeFlags struct with bound flag variables.
func SetupRelativeFlags() (*flag.FlagSet, *RelativeFlags) {
	fs := flag.NewFlagSet("relative", flag.ContinueOnError)
	flags := &RelativeFlags{}

	fs.StringVar(&flags.Platform, "platform", "native", "path grammar: windows, unix, or native")
	fs.StringVar(&flags.Platform, "p", "native", "path grammar: windows, unix, or native")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Base, "base", "", "fully qualified base to resolve relative operands against")
	fs.StringVar(&flags.Base, "b", "", "fully qualified base to resolve relative operands against")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: pathtools relative [flags] <from> <to>\n\n")
		cliutil.Writef(fs.Output(), "Compute the relative traversal from one path to another. Both operands\n")
		cliutil.Writef(fs.Output(), "are resolved first; relative operands require --base. When the paths\n")
		cliutil.Writef(fs.Output(), "share no common root the resolved target is returned unchanged.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  pathtools relative -p windows 'C:\\a\\b' 'C:\\a\\c\\d'\n")
		cliutil.Writef(fs.Output(), "  pathtools relative -p unix /srv/data /srv/logs\n")
		cliutil.Writef(fs.Output(), "  pathtools relative -p unix -b /srv data logs\n")
	}

	return fs, flags
}

type relativeResult struct {
	Path     string `json:"path" yaml:"path"`
	Traverse bool   `json:"traverse" yaml:"traverse"`
	Platform string `json:"platform" yaml:"platform"`
}

// HandleRelative executes the relative command
func HandleRelative(args []string) error {
	fs, flags := SetupRelativeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("relative command requires exactly two paths")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	platform, err := ParsePlatform(flags.Platform)
	if err != nil {
		return err
	}

	var rel string
	if flags.Base != "" {
		rel, err = pathops.RelativePathFrom(flags.Base, fs.Arg(0), fs.Arg(1), platform)
	} else {
		rel, err = pathops.RelativePath(fs.Arg(0), fs.Arg(1), platform)
	}
	if err != nil {
		return fmt.Errorf("computing relative path: %w", err)
	}

	if flags.Format == FormatText {
		fmt.Println(rel)
		return nil
	}
	return OutputStructured(relativeResult{
		Path:     rel,
		Traverse: !pathops.IsPathRooted(rel, platform),
		Platform: platform.String(),
	}, flags.Format)
}
