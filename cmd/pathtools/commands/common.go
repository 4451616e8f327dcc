// Package commands provides CLI command handlers for pathtools.
package commands

import (
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/pathtools/pathops"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	fmt.Println(string(bytes))
	return nil
}

// ParsePlatform maps a -platform flag value to a path grammar.
func ParsePlatform(name string) (pathops.Platform, error) {
	switch name {
	case "windows":
		return pathops.Windows, nil
	case "unix":
		return pathops.Unix, nil
	case "native", "":
		return pathops.Native, nil
	default:
		return pathops.Unix, fmt.Errorf("invalid platform '%s'. Valid platforms: windows, unix, native", name)
	}
}
