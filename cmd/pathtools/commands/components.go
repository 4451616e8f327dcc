package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/erraggy/pathtools/internal/cliutil"
	"github.com/erraggy/pathtools/pathops"
)

// ComponentsFlags contains flags for the components command
type ComponentsFlags struct {
	Platform string
	Format   string
}

// SetupComponentsFlags creates and configures a FlagSet for the components command.
// Returns the FlagSet and a ComponentsFlags struct with bound flag variables.
func SetupComponentsFlags() (*flag.FlagSet, *ComponentsFlags) {
	fs := flag.NewFlagSet("components", flag.ContinueOnError)
	flags := &ComponentsFlags{}

	fs.StringVar(&flags.Platform, "platform", "native", "path grammar: windows, unix, or native")
	fs.StringVar(&flags.Platform, "p", "native", "path grammar: windows, unix, or native")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: pathtools components [flags] <path>\n\n")
		cliutil.Writef(fs.Output(), "Decompose a path into its components: root and root kind, directory,\n")
		cliutil.Writef(fs.Output(), "file name, stem, extension, segments, and the rooted flags. Purely\n")
		cliutil.Writef(fs.Output(), "lexical; nothing is resolved.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  pathtools components -p windows 'C:\\work\\src\\main.go'\n")
		cliutil.Writef(fs.Output(), "  pathtools components -p windows '\\\\server\\share\\file.txt'\n")
		cliutil.Writef(fs.Output(), "  pathtools components --format json -p unix /home/rob/.profile\n")
	}

	return fs, flags
}

type componentsResult struct {
	Root           string   `json:"root" yaml:"root"`
	RootKind       string   `json:"root_kind" yaml:"root_kind"`
	Directory      string   `json:"directory" yaml:"directory"`
	FileName       string   `json:"file_name" yaml:"file_name"`
	Stem           string   `json:"stem" yaml:"stem"`
	Extension      string   `json:"extension" yaml:"extension"`
	Segments       []string `json:"segments,omitempty" yaml:"segments,omitempty"`
	Rooted         bool     `json:"rooted" yaml:"rooted"`
	FullyQualified bool     `json:"fully_qualified" yaml:"fully_qualified"`
	Platform       string   `json:"platform" yaml:"platform"`
}

func decompose(path string, platform pathops.Platform) componentsResult {
	return componentsResult{
		Root:           pathops.PathRoot(path, platform),
		RootKind:       pathops.ClassifyRoot(path, platform).String(),
		Directory:      pathops.DirectoryName(path, platform),
		FileName:       pathops.FileName(path, platform),
		Stem:           pathops.FileNameWithoutExtension(path, platform),
		Extension:      pathops.Extension(path, platform),
		Segments:       pathops.Segments(path, platform),
		Rooted:         pathops.IsPathRooted(path, platform),
		FullyQualified: pathops.IsPathFullyQualified(path, platform),
		Platform:       platform.String(),
	}
}

// HandleComponents executes the components command
func HandleComponents(args []string) error {
	fs, flags := SetupComponentsFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("components command requires exactly one path")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	platform, err := ParsePlatform(flags.Platform)
	if err != nil {
		return err
	}

	result := decompose(fs.Arg(0), platform)
	if flags.Format != FormatText {
		return OutputStructured(result, flags.Format)
	}

	w := os.Stdout
	cliutil.Writef(w, "Root:            %s\n", result.Root)
	cliutil.Writef(w, "Root Kind:       %s\n", result.RootKind)
	cliutil.Writef(w, "Directory:       %s\n", result.Directory)
	cliutil.Writef(w, "File Name:       %s\n", result.FileName)
	cliutil.Writef(w, "Stem:            %s\n", result.Stem)
	cliutil.Writef(w, "Extension:       %s\n", result.Extension)
	cliutil.Writef(w, "Segments:        %s\n", strings.Join(result.Segments, " | "))
	cliutil.Writef(w, "Rooted:          %t\n", result.Rooted)
	cliutil.Writef(w, "Fully Qualified: %t\n", result.FullyQualified)
	return nil
}
