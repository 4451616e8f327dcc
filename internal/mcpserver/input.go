package mcpserver

import (
	"fmt"

	"github.com/erraggy/pathtools/pathops"
)

// parsePlatform maps a tool-call platform name to a grammar. The empty
// string is not accepted here; callers use resolvePlatform so omitted
// fields pick up the configured default.
func parsePlatform(name string) (pathops.Platform, error) {
	switch name {
	case "windows":
		return pathops.Windows, nil
	case "unix":
		return pathops.Unix, nil
	case "native":
		return pathops.Native, nil
	default:
		return pathops.Unix, fmt.Errorf("unknown platform %q: must be windows, unix, or native", name)
	}
}

// resolvePlatform maps an optional platform field to a grammar, falling
// back to the configured default when the field is empty.
func resolvePlatform(name string) (pathops.Platform, error) {
	if name == "" {
		return cfg.DefaultPlatform, nil
	}
	return parsePlatform(name)
}

// validateOperand enforces the configured path length cap.
func validateOperand(field, path string) error {
	if len(path) > cfg.MaxPathLength {
		return fmt.Errorf("%s length %d exceeds maximum %d; set PATHTOOLS_MAX_PATH_LENGTH to increase", field, len(path), cfg.MaxPathLength)
	}
	return nil
}

// validateOperands enforces the operand count and length caps for the
// multi-path tools.
func validateOperands(paths []string) error {
	if len(paths) == 0 {
		return fmt.Errorf("paths must not be empty")
	}
	if len(paths) > cfg.MaxOperands {
		return fmt.Errorf("%d paths exceeds maximum %d; set PATHTOOLS_MAX_OPERANDS to increase", len(paths), cfg.MaxOperands)
	}
	for i, p := range paths {
		if err := validateOperand(fmt.Sprintf("paths[%d]", i), p); err != nil {
			return err
		}
	}
	return nil
}
