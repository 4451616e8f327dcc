package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/pathtools/internal/cliutil"
	"github.com/erraggy/pathtools/pathops"
)

// EqualsFlags contains flags for the equals command
type EqualsFlags struct {
	Platform string
	Quiet    bool
}

// SetupEqualsFlags creates and configures a FlagSet for the equals command.
// Returns the FlagSet and an EqualsFlags struct with bound flag variables.
func SetupEqualsFlags() (*flag.FlagSet, *EqualsFlags) {
	fs := flag.NewFlagSet("equals", flag.ContinueOnError)
	flags := &EqualsFlags{}

	fs.StringVar(&flags.Platform, "platform", "native", "path grammar: windows, unix, or native")
	fs.StringVar(&flags.Platform, "p", "native", "path grammar: windows, unix, or native")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: no output, exit status only")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: no output, exit status only")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: pathtools equals [flags] <path1> <path2>\n\n")
		cliutil.Writef(fs.Output(), "Compare two paths under the grammar's equality rules: trailing separators\n")
		cliutil.Writef(fs.Output(), "are ignored (but never below the root), any separator matches any\n")
		cliutil.Writef(fs.Output(), "separator, and the windows grammar folds case. Inner segments are not\n")
		cliutil.Writef(fs.Output(), "normalized; use 'pathtools normalize' first to compare resolved forms.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExit Status:\n")
		cliutil.Writef(fs.Output(), "  0    Paths are equal\n")
		cliutil.Writef(fs.Output(), "  1    Paths differ\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  pathtools equals -p windows 'C:\\Work\\File.TXT' 'c:/work/file.txt'\n")
		cliutil.Writef(fs.Output(), "  pathtools equals -q -p unix /a/b/ /a/b && echo same\n")
	}

	return fs, flags
}

// HandleEquals executes the equals command
func HandleEquals(args []string) error {
	fs, flags := SetupEqualsFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("equals command requires exactly two paths")
	}

	platform, err := ParsePlatform(flags.Platform)
	if err != nil {
		return err
	}

	equal := pathops.PathEquals(fs.Arg(0), fs.Arg(1), platform)
	if !flags.Quiet {
		fmt.Println(equal)
	}
	if !equal {
		os.Exit(1)
	}
	return nil
}
