package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/pathtools/internal/cliutil"
	"github.com/erraggy/pathtools/pathops"
)

// NormalizeFlags contains flags for the normalize command
type NormalizeFlags struct {
	Platform string
	Format   string
}

// SetupNormalizeFlags creates and configures a FlagSet for the normalize command.
// Returns the FlagSet and a NormalizeFlags struct with bound flag variables.
func SetupNormalizeFlags() (*flag.FlagSet, *NormalizeFlags) {
	fs := flag.NewFlagSet("normalize", flag.ContinueOnError)
	flags := &NormalizeFlags{}

	fs.StringVar(&flags.Platform, "platform", "native", "path grammar: windows, unix, or native")
	fs.StringVar(&flags.Platform, "p", "native", "path grammar: windows, unix, or native")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: pathtools normalize [flags] <path>\n\n")
		cliutil.Writef(fs.Output(), "Normalize a path under the selected grammar: remove . and .. segments,\n")
		cliutil.Writef(fs.Output(), "collapse duplicate separators, and flip alternate separators to the\n")
		cliutil.Writef(fs.Output(), "canonical one. The path does not need to be rooted.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  pathtools normalize -p windows 'C:/a/./b/../c'\n")
		cliutil.Writef(fs.Output(), "  pathtools normalize -p unix '/a//b/./c'\n")
		cliutil.Writef(fs.Output(), "  pathtools normalize --format json -p windows 'a\\..\\b'\n")
	}

	return fs, flags
}

type normalizeResult struct {
	Path     string `json:"path" yaml:"path"`
	Changed  bool   `json:"changed" yaml:"changed"`
	Platform string `json:"platform" yaml:"platform"`
}

// HandleNormalize executes the normalize command
func HandleNormalize(args []string) error {
	fs, flags := SetupNormalizeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("normalize command requires exactly one path")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	platform, err := ParsePlatform(flags.Platform)
	if err != nil {
		return err
	}

	path := fs.Arg(0)
	normalized := pathops.NormalizeDirectorySeparators(
		pathops.RemoveRelativeSegments(path, platform), platform)

	if flags.Format == FormatText {
		fmt.Println(normalized)
		return nil
	}
	return OutputStructured(normalizeResult{
		Path:     normalized,
		Changed:  normalized != path,
		Platform: platform.String(),
	}, flags.Format)
}
