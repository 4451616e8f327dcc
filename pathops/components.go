package pathops

// DirectoryName returns the directory portion of path: everything up to
// but not including the last separator, bounded below by the root. It
// returns the empty string when path has no directory information (an
// empty path, a bare file name, or a root).
func DirectoryName(path string, platform Platform) string {
	if IsEffectivelyEmpty(path, platform) {
		return ""
	}
	rootLength := RootLength(path, platform)
	end := len(path)
	if end <= rootLength {
		return ""
	}
	for end > rootLength {
		end--
		if platform.IsSeparator(path[end]) {
			break
		}
	}
	// Trim separator runs so "a//b" reports "a", not "a/".
	for end > rootLength && platform.IsSeparator(path[end-1]) {
		end--
	}
	return path[:end]
}

// FileName returns the final segment of path: everything after the last
// separator past the root. A drive-relative `C:foo` reports `foo`, while
// an alternate stream name like `C:\file.txt:stream` is kept whole.
func FileName(path string, platform Platform) string {
	root := RootLength(path, platform)
	for i := len(path) - 1; i >= 0; i-- {
		if i < root || platform.IsSeparator(path[i]) {
			return path[i+1:]
		}
	}
	return path
}

// Extension returns the extension of path including its dot, scanning
// backward from the end and stopping at the first separator. A trailing
// period is not an extension ("noext." reports ""), and neither is a dot
// that starts the file name (".profile" reports "").
func Extension(path string, platform Platform) string {
	root := RootLength(path, platform)
	for i := len(path) - 1; i >= root; i-- {
		c := path[i]
		if c == '.' {
			if i == len(path)-1 {
				return ""
			}
			if i == root || platform.IsSeparator(path[i-1]) {
				return ""
			}
			return path[i:]
		}
		if platform.IsSeparator(c) {
			break
		}
	}
	return ""
}

// HasExtension reports whether path ends in a file name with an
// extension under the rules of [Extension].
func HasExtension(path string, platform Platform) bool {
	return len(Extension(path, platform)) > 0
}

// FileNameWithoutExtension returns the final segment of path with its
// extension (if any) removed.
func FileNameWithoutExtension(path string, platform Platform) string {
	name := FileName(path, platform)
	ext := Extension(name, platform)
	return name[:len(name)-len(ext)]
}

// StartsWithDirectorySeparator reports whether path begins with a
// directory separator.
func StartsWithDirectorySeparator(path string, platform Platform) bool {
	return len(path) > 0 && platform.IsSeparator(path[0])
}

// EndsInDirectorySeparator reports whether path ends with a directory
// separator.
func EndsInDirectorySeparator(path string, platform Platform) bool {
	return len(path) > 0 && platform.IsSeparator(path[len(path)-1])
}

// TrimEndingDirectorySeparator removes a single trailing separator from
// path unless the path is exactly a root, which keeps its separator.
func TrimEndingDirectorySeparator(path string, platform Platform) string {
	if EndsInDirectorySeparator(path, platform) && RootLength(path, platform) != len(path) {
		return path[:len(path)-1]
	}
	return path
}
