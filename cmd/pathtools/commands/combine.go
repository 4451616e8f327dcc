package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/pathtools/internal/cliutil"
	"github.com/erraggy/pathtools/pathops"
)

// CombineFlags contains flags for the combine command
type CombineFlags struct {
	Platform string
	Format   string
}

// SetupCombineFlags creates and configures a FlagSet for the combine command.
// Returns the FlagSet and a CombineFlags struct with bound flag variables.
func SetupCombineFlags() (*flag.FlagSet, *CombineFlags) {
	fs := flag.NewFlagSet("combine", flag.ContinueOnError)
	flags := &CombineFlags{}

	fs.StringVar(&flags.Platform, "platform", "native", "path grammar: windows, unix, or native")
	fs.StringVar(&flags.Platform, "p", "native", "path grammar: windows, unix, or native")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: pathtools combine [flags] <path1> <path2> [path3...]\n\n")
		cliutil.Writef(fs.Output(), "Combine paths left to right with cd-like semantics: a rooted operand\n")
		cliutil.Writef(fs.Output(), "discards everything before it. Empty operands are skipped.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  pathtools combine -p windows 'C:\\a' b c.txt\n")
		cliutil.Writef(fs.Output(), "  pathtools combine -p windows 'C:\\a' 'D:\\b' c\n")
	}

	return fs, flags
}

type combineResult struct {
	Path     string `json:"path" yaml:"path"`
	Rooted   bool   `json:"rooted" yaml:"rooted"`
	Platform string `json:"platform" yaml:"platform"`
}

// HandleCombine executes the combine command
func HandleCombine(args []string) error {
	fs, flags := SetupCombineFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() < 2 {
		fs.Usage()
		return fmt.Errorf("combine command requires at least two paths")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	platform, err := ParsePlatform(flags.Platform)
	if err != nil {
		return err
	}

	combined := pathops.Combine(platform, fs.Args()...)
	if flags.Format == FormatText {
		fmt.Println(combined)
		return nil
	}
	return OutputStructured(combineResult{
		Path:     combined,
		Rooted:   pathops.IsPathRooted(combined, platform),
		Platform: platform.String(),
	}, flags.Format)
}
