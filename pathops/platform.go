package pathops

import "runtime"

// Platform selects the path grammar used by every operation in this package.
type Platform int

const (
	// Unix is the single-rooted, case-sensitive grammar using '/' as its
	// only directory separator.
	Unix Platform = iota

	// Windows is the grammar with drive letters, UNC shares, and device
	// prefixes, using '\' as the canonical separator and accepting '/'.
	Windows
)

// Native is the Platform matching the running operating system.
var Native = nativePlatform()

func nativePlatform() Platform {
	if runtime.GOOS == "windows" {
		return Windows
	}
	return Unix
}

// String returns the platform name.
func (p Platform) String() string {
	switch p {
	case Windows:
		return "windows"
	default:
		return "unix"
	}
}

// Separator returns the canonical directory separator for the platform.
func (p Platform) Separator() byte {
	if p == Windows {
		return windowsSeparator
	}
	return unixSeparator
}

// IsSeparator reports whether c is a directory separator under the
// platform's grammar. Windows accepts both '\' and '/'.
func (p Platform) IsSeparator(c byte) bool {
	if p == Windows {
		return isWindowsSeparator(c)
	}
	return c == unixSeparator
}

// RootKind classifies the anchoring prefix of a path. The kinds are
// mutually exclusive and ordered by specificity.
type RootKind int

const (
	// RootNone indicates a fully relative path.
	RootNone RootKind = iota

	// RootRooted is a Unix rooted path ("/foo").
	RootRooted

	// RootCurrentDriveRooted is a Windows path rooted on the current
	// drive (`\foo`).
	RootCurrentDriveRooted

	// RootDriveRelative is a Windows path anchored to a drive letter but
	// not to a directory on it (`C:foo`).
	RootDriveRelative

	// RootDriveRooted is a fully anchored Windows drive path (`C:\foo`).
	RootDriveRooted

	// RootUNC is a Windows UNC share (`\\server\share`).
	RootUNC

	// RootDevice is a Windows device path (`\\?\...`, `\\.\...`, `\??\...`).
	RootDevice

	// RootDeviceUNC is a Windows device UNC share (`\\?\UNC\server\share`).
	RootDeviceUNC
)

// String returns the root kind name.
func (k RootKind) String() string {
	switch k {
	case RootRooted:
		return "rooted"
	case RootCurrentDriveRooted:
		return "current-drive-rooted"
	case RootDriveRelative:
		return "drive-relative"
	case RootDriveRooted:
		return "drive-rooted"
	case RootUNC:
		return "unc"
	case RootDevice:
		return "device"
	case RootDeviceUNC:
		return "device-unc"
	default:
		return "none"
	}
}

// ClassifyRoot classifies the anchoring prefix of path under the
// platform's grammar.
func ClassifyRoot(path string, platform Platform) RootKind {
	if platform == Windows {
		return windowsClassifyRoot(path)
	}
	return unixClassifyRoot(path)
}

// RootLength returns the length in bytes of the path's root. The root is
// always a prefix boundary: it never splits a segment, and for UNC and
// device-UNC forms it covers exactly the server and share segments past
// the prefix.
func RootLength(path string, platform Platform) int {
	if platform == Windows {
		return windowsRootLength(path)
	}
	return unixRootLength(path)
}

// PathRoot returns the root portion of path, or the empty string for a
// fully relative path.
func PathRoot(path string, platform Platform) string {
	return path[:RootLength(path, platform)]
}

// IsPathRooted reports whether path is anchored in any way, including
// partially anchored Windows forms such as `\foo` and `C:foo`.
func IsPathRooted(path string, platform Platform) bool {
	if platform == Windows {
		return len(path) >= 1 && isWindowsSeparator(path[0]) ||
			len(path) >= 2 && isValidDriveChar(path[0]) && path[1] == volumeSeparator
	}
	return len(path) >= 1 && path[0] == unixSeparator
}

// IsPathFullyQualified reports whether path resolves to an absolute
// location without consulting a current-directory or current-drive
// context. On Unix this is the same as being rooted; on Windows a single
// leading separator (`\foo`) and a bare drive prefix (`C:foo`) are rooted
// but not fully qualified.
func IsPathFullyQualified(path string, platform Platform) bool {
	if platform == Windows {
		return isWindowsFullyQualified(path)
	}
	return len(path) >= 1 && path[0] == unixSeparator
}

// IsEffectivelyEmpty reports whether path carries no usable content. On
// Windows a path consisting only of spaces is effectively empty; on Unix
// only the empty string is.
func IsEffectivelyEmpty(path string, platform Platform) bool {
	if len(path) == 0 {
		return true
	}
	if platform != Windows {
		return false
	}
	for i := 0; i < len(path); i++ {
		if path[i] != ' ' {
			return false
		}
	}
	return true
}
