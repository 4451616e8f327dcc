package pathops

// Unix grammar primitives: a single separator character, no drive or
// device concept, root length 0 or 1, fully qualified exactly when
// rooted, and case-sensitive comparisons.

const unixSeparator = '/'

func unixRootLength(path string) int {
	if len(path) > 0 && path[0] == unixSeparator {
		return 1
	}
	return 0
}

func unixClassifyRoot(path string) RootKind {
	if len(path) > 0 && path[0] == unixSeparator {
		return RootRooted
	}
	return RootNone
}

// normalizeUnixSeparators collapses runs of '/' to a single separator.
// The need to normalize is detected in one pass before any allocation.
func normalizeUnixSeparators(path string) string {
	if len(path) == 0 {
		return path
	}

	normalized := true
	for i := 0; i+1 < len(path); i++ {
		if path[i] == unixSeparator && path[i+1] == unixSeparator {
			normalized = false
			break
		}
	}
	if normalized {
		return path
	}

	sb := make([]byte, 0, len(path))
	for i := 0; i < len(path); i++ {
		if path[i] == unixSeparator && i+1 < len(path) && path[i+1] == unixSeparator {
			continue
		}
		sb = append(sb, path[i])
	}
	return string(sb)
}
