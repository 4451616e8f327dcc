package pathops

// Windows grammar primitives. The scan order for root classification is
// device syntax first, then device-UNC, then UNC or current-drive-rooted,
// then drive prefixes. Separator checks accept both '\' and '/', but the
// device prefix forms (`\\?\`, `\??\`) are matched with literal
// backslashes, mirroring how Windows itself treats extended-length paths.

const (
	windowsSeparator    = '\\'
	windowsAltSeparator = '/'
	volumeSeparator     = ':'

	devicePrefixLength      = 4 // `\\?\` or `\\.\`
	uncPrefixLength         = 2 // `\\`
	uncExtendedPrefixLength = 8 // `\\?\UNC\`
)

func isWindowsSeparator(c byte) bool {
	return c == windowsSeparator || c == windowsAltSeparator
}

// isValidDriveChar reports whether c is an ASCII letter usable as a drive.
func isValidDriveChar(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}

// isExtendedPath reports whether the path uses the canonical extended
// syntax `\\?\` or the NT object-manager form `\??\`, with literal
// backslashes only.
func isExtendedPath(path string) bool {
	return len(path) >= devicePrefixLength &&
		path[0] == windowsSeparator &&
		(path[1] == windowsSeparator || path[1] == '?') &&
		path[2] == '?' &&
		path[3] == windowsSeparator
}

// isDevicePath reports whether the path uses any device syntax
// (`\\?\`, `\\.\`, `\??\`).
func isDevicePath(path string) bool {
	return isExtendedPath(path) ||
		len(path) >= devicePrefixLength &&
			isWindowsSeparator(path[0]) &&
			isWindowsSeparator(path[3]) &&
			(path[2] == '.' || path[2] == '?') &&
			isWindowsSeparator(path[1])
}

// isDeviceUNCPath reports whether the path is a device UNC
// (`\\?\UNC\`, `\\.\UNC\`).
func isDeviceUNCPath(path string) bool {
	return len(path) >= uncExtendedPrefixLength &&
		isDevicePath(path) &&
		isWindowsSeparator(path[7]) &&
		path[4] == 'U' &&
		path[5] == 'N' &&
		path[6] == 'C'
}

// windowsRootLength measures the root of a Windows path:
//
//	``            -> 0
//	`foo`         -> 0
//	`\foo`        -> 1
//	`C:foo`       -> 2
//	`C:\foo`      -> 3
//	`\\srv\share` -> 10 (server and share are part of the root)
//	`\\?\C:\foo`  -> 7
//	`\\?\UNC\srv\share\x` -> 17
func windowsRootLength(path string) int {
	length := len(path)
	i := 0

	deviceSyntax := isDevicePath(path)
	deviceUNC := deviceSyntax && isDeviceUNCPath(path)

	switch {
	case (!deviceSyntax || deviceUNC) && length > 0 && isWindowsSeparator(path[0]):
		// UNC or simple rooted path (`\foo`, not `\\?\C:\foo`).
		if deviceUNC || (length > 1 && isWindowsSeparator(path[1])) {
			// UNC (`\\?\UNC\` or `\\`): skip two more segments.
			if deviceUNC {
				i = uncExtendedPrefixLength
			} else {
				i = uncPrefixLength
			}
			n := 2
			for i < length {
				if isWindowsSeparator(path[i]) {
					n--
					if n <= 0 {
						break
					}
				}
				i++
			}
		} else {
			// Current drive rooted (`\foo`).
			i = 1
		}
	case deviceSyntax:
		// Device path (`\\?\`, `\\.\`): root covers everything up to and
		// including the separator after the device segment, if there was
		// at least one non-separator character after the prefix.
		i = devicePrefixLength
		for i < length && !isWindowsSeparator(path[i]) {
			i++
		}
		if i < length && i > devicePrefixLength && isWindowsSeparator(path[i]) {
			i++
		}
	case length >= 2 && path[1] == volumeSeparator && isValidDriveChar(path[0]):
		// Drive prefix (`C:`), extended to cover a following separator (`C:\`).
		i = 2
		if length > 2 && isWindowsSeparator(path[2]) {
			i++
		}
	}
	return i
}

func windowsClassifyRoot(path string) RootKind {
	switch {
	case isDeviceUNCPath(path):
		return RootDeviceUNC
	case isDevicePath(path):
		return RootDevice
	}
	if len(path) >= 1 && isWindowsSeparator(path[0]) {
		if len(path) >= 2 && isWindowsSeparator(path[1]) {
			return RootUNC
		}
		return RootCurrentDriveRooted
	}
	if len(path) >= 2 && path[1] == volumeSeparator && isValidDriveChar(path[0]) {
		if len(path) >= 3 && isWindowsSeparator(path[2]) {
			return RootDriveRooted
		}
		return RootDriveRelative
	}
	return RootNone
}

// isWindowsFullyQualified reports whether the path needs no
// current-directory or current-drive context. `\\server`, `\?` device
// forms, and `C:\` drive roots qualify; `\foo` and `C:foo` do not.
func isWindowsFullyQualified(path string) bool {
	if len(path) < 2 {
		// A single separator or drive letter still needs context.
		return false
	}
	if isWindowsSeparator(path[0]) {
		return path[1] == '?' || isWindowsSeparator(path[1])
	}
	return len(path) >= 3 &&
		path[1] == volumeSeparator &&
		isWindowsSeparator(path[2]) &&
		isValidDriveChar(path[0])
}

// windowsUNCRootLength returns the length of the UNC prefix (`\\` or
// `\\?\UNC\`) when path is a UNC form, or -1 otherwise.
func windowsUNCRootLength(path string) int {
	if len(path) < uncPrefixLength {
		return -1
	}
	if isDeviceUNCPath(path) {
		return uncExtendedPrefixLength
	}
	if isWindowsSeparator(path[0]) && isWindowsSeparator(path[1]) && !isDevicePath(path) {
		return uncPrefixLength
	}
	return -1
}

// windowsVolumeName extracts the volume portion of the root: the drive
// prefix without a trailing separator (`C:`), the server and share of a
// UNC (`server\share`), or the device segment of a device path.
func windowsVolumeName(path string) string {
	root := path[:windowsRootLength(path)]
	if len(root) == 0 {
		return root
	}

	start := windowsUNCRootLength(path)
	if start == -1 {
		if isDevicePath(path) {
			start = devicePrefixLength
		} else {
			start = 0
		}
	}
	name := root[start:]
	if len(name) > 0 && isWindowsSeparator(name[len(name)-1]) {
		name = name[:len(name)-1]
	}
	return name
}

// normalizeWindowsSeparators collapses runs of separators to a single
// canonical `\`, preserving a true leading double-separator (the UNC
// marker) only at position 0. The need to normalize is detected in one
// pass before any allocation happens.
func normalizeWindowsSeparators(path string) string {
	if len(path) == 0 {
		return path
	}

	normalized := true
	for i := 0; i < len(path); i++ {
		c := path[i]
		if isWindowsSeparator(c) &&
			(c != windowsSeparator ||
				(i > 0 && i+1 < len(path) && isWindowsSeparator(path[i+1]))) {
			normalized = false
			break
		}
	}
	if normalized {
		return path
	}

	sb := make([]byte, 0, len(path))
	start := 0
	if isWindowsSeparator(path[0]) {
		start = 1
		sb = append(sb, windowsSeparator)
	}
	for i := start; i < len(path); i++ {
		c := path[i]
		if isWindowsSeparator(c) {
			if i+1 < len(path) && isWindowsSeparator(path[i+1]) {
				continue
			}
			c = windowsSeparator
		}
		sb = append(sb, c)
	}
	return string(sb)
}
