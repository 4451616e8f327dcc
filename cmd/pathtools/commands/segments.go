package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/pathtools/internal/cliutil"
	"github.com/erraggy/pathtools/pathops"
)

// SegmentsFlags contains flags for the segments command
type SegmentsFlags struct {
	Platform string
	Format   string
}

// SetupSegmentsFlags creates and configures a FlagSet for the segments command.
// Returns the FlagSet and a SegmentsFlags struct with bound flag variables.
func SetupSegmentsFlags() (*flag.FlagSet, *SegmentsFlags) {
	fs := flag.NewFlagSet("segments", flag.ContinueOnError)
	flags := &SegmentsFlags{}

	fs.StringVar(&flags.Platform, "platform", "native", "path grammar: windows, unix, or native")
	fs.StringVar(&flags.Platform, "p", "native", "path grammar: windows, unix, or native")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: pathtools segments [flags] <path>\n\n")
		cliutil.Writef(fs.Output(), "Split a path into its segments, one per line. A root is reported as the\n")
		cliutil.Writef(fs.Output(), "first segment; duplicate separators produce no empty segments.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  pathtools segments -p windows 'C:\\work\\src\\main.go'\n")
		cliutil.Writef(fs.Output(), "  pathtools segments --format json -p unix /srv/logs/app.log\n")
	}

	return fs, flags
}

type segmentsResult struct {
	Segments []string `json:"segments" yaml:"segments"`
	Count    int      `json:"count" yaml:"count"`
	Platform string   `json:"platform" yaml:"platform"`
}

// HandleSegments executes the segments command
func HandleSegments(args []string) error {
	fs, flags := SetupSegmentsFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("segments command requires exactly one path")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	platform, err := ParsePlatform(flags.Platform)
	if err != nil {
		return err
	}

	segments := pathops.Segments(fs.Arg(0), platform)
	if flags.Format == FormatText {
		for _, segment := range segments {
			fmt.Println(segment)
		}
		return nil
	}
	return OutputStructured(segmentsResult{
		Segments: segments,
		Count:    len(segments),
		Platform: platform.String(),
	}, flags.Format)
}
