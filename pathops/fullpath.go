package pathops

import (
	"strings"

	"github.com/erraggy/pathtools/patherrors"
)

// FullPath returns the fully qualified, normalized form of path:
// relative segments are removed and, on Windows, separators past the
// root are flipped to the canonical '\'.
//
// Device paths (`\\?\...`, `\\.\...`, `\??\...`) are normalized by
// definition and returned unchanged.
//
// This package never consults a process current directory, so path must
// already be fully qualified; use [FullPathFrom] to resolve a relative
// path against an explicit base.
func FullPath(path string, platform Platform) (string, error) {
	if err := validatePathArg("path", path, platform); err != nil {
		return "", err
	}

	if platform == Windows && isDevicePath(path) {
		return path, nil
	}
	if !IsPathFullyQualified(path, platform) {
		return "", patherrors.NewInvalidArgument("path",
			"must be fully qualified when no base path is supplied")
	}

	result, _ := removeRelativeSegments(path, RootLength(path, platform), platform)
	return result, nil
}

// FullPathFrom resolves path against basePath and returns the fully
// qualified, normalized result. basePath must itself be fully qualified.
//
// On Windows the resolution has four branches:
//
//  1. `\foo` (current-drive rooted) joins the root of basePath with the
//     path minus its leading separator.
//  2. `C:foo` (drive relative) with a volume matching basePath joins
//     basePath with the path minus its 2-char drive prefix.
//  3. `C:foo` with a volume differing from basePath roots the given
//     drive letter onto a literal `\`, ignoring basePath entirely. This
//     asymmetry with branch 2 matches legacy Win32 semantics and is
//     intentional.
//  4. A plain relative path joins basePath and path directly.
//
// A device-prefixed combination bypasses full normalization and runs
// relative-segment removal directly. An effectively empty path resolves
// to basePath itself.
func FullPathFrom(basePath, path string, platform Platform) (string, error) {
	if err := validateNoNUL("basePath", basePath); err != nil {
		return "", err
	}
	if err := validateNoNUL("path", path); err != nil {
		return "", err
	}
	if !IsPathFullyQualified(basePath, platform) {
		return "", patherrors.NewInvalidArgument("basePath", "must be fully qualified")
	}

	if IsPathFullyQualified(path, platform) {
		return FullPath(path, platform)
	}
	if IsEffectivelyEmpty(path, platform) {
		return basePath, nil
	}

	if platform != Windows {
		return FullPath(joinTwo(basePath, path, platform), platform)
	}
	return windowsFullPathFrom(basePath, path)
}

func windowsFullPathFrom(basePath, path string) (string, error) {
	var combined string
	switch {
	case isWindowsSeparator(path[0]):
		// Current drive rooted:
		// `\Foo` against `C:\Bar` => `C:\Foo`
		// `\Foo` against `\\?\C:\Bar` => `\\?\C:\Foo`
		combined = Join(Windows, PathRoot(basePath, Windows), path[1:])
	case len(path) >= 2 && isValidDriveChar(path[0]) && path[1] == volumeSeparator:
		if strings.EqualFold(windowsVolumeName(path), windowsVolumeName(basePath)) {
			// Matching drive:
			// `C:Foo` against `C:\Bar` => `C:\Bar\Foo`
			combined = Join(Windows, basePath, path[2:])
		} else {
			// Differing drive: root the given drive letter, ignoring
			// basePath entirely. Legacy Win32 quirk, asymmetric with the
			// matching-drive branch.
			// `D:Foo` against `C:\Bar` => `D:\Foo`
			combined = path[:2] + string(windowsSeparator) + path[2:]
		}
	default:
		// Plain relative:
		// `Foo` against `C:\Bar` => `C:\Bar\Foo`
		combined = joinTwo(basePath, path, Windows)
	}

	// Device paths skip full normalization; relative segments are still
	// removed so `.`/`..` cannot smuggle past the device prefix.
	if isDevicePath(combined) {
		result, _ := removeRelativeSegments(combined, windowsRootLength(combined), Windows)
		return result, nil
	}
	return FullPath(combined, Windows)
}

func validatePathArg(arg, path string, platform Platform) error {
	if err := validateNoNUL(arg, path); err != nil {
		return err
	}
	if IsEffectivelyEmpty(path, platform) {
		return patherrors.NewInvalidArgument(arg, "must not be empty")
	}
	return nil
}

func validateNoNUL(arg, path string) error {
	if i := strings.IndexByte(path, 0); i >= 0 {
		return patherrors.NewInvalidArgumentf(arg, "embedded NUL at index %d", i)
	}
	return nil
}
