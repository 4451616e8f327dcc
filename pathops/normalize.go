package pathops

// NormalizeDirectorySeparators collapses duplicate separators and forces
// the canonical separator character for the platform. On Windows a true
// leading double-separator (the UNC marker) is preserved at position 0.
// The input is returned unchanged (no allocation) when it is already
// normalized.
func NormalizeDirectorySeparators(path string, platform Platform) string {
	if platform == Windows {
		return normalizeWindowsSeparators(path)
	}
	return normalizeUnixSeparators(path)
}

// RemoveRelativeSegments removes `.` and `..` segments and collapses
// duplicate separators in a single left-to-right scan, preserving the
// root verbatim. A `..` segment unwinds to the previous separator
// boundary but never past the root. On Windows, '/' separators past the
// root are flipped to '\' as a side effect.
//
// Leading relative segments of an unrooted path (`../x`) have nothing to
// unwind into and are preserved.
func RemoveRelativeSegments(path string, platform Platform) string {
	result, _ := removeRelativeSegments(path, RootLength(path, platform), platform)
	return result
}

// removeRelativeSegments reports precisely whether anything changed:
// false only when neither collapsing nor separator flipping occurred, in
// which case the original string is returned without allocation.
func removeRelativeSegments(path string, rootLength int, platform Platform) (string, bool) {
	if len(path) == 0 {
		return path, false
	}

	flippedSeparator := false
	sep := platform.Separator()

	// Collapse the first separator past the root so that segments like
	// `.\` directly after `C:\` are seen as relative segments.
	skip := rootLength
	if skip > 0 && platform.IsSeparator(path[skip-1]) {
		skip--
	}

	sb := make([]byte, 0, len(path))
	sb = append(sb, path[:skip]...)

	for i := skip; i < len(path); i++ {
		c := path[i]

		if platform.IsSeparator(c) && i+1 < len(path) {
			// Skip duplicate separators: "parent//child" => "parent/child".
			if platform.IsSeparator(path[i+1]) {
				continue
			}

			// Skip current-directory segments: "parent/./child" => "parent/child".
			if (i+2 == len(path) || platform.IsSeparator(path[i+2])) &&
				path[i+1] == '.' {
				i++
				continue
			}

			// Parent-directory segments unwind to the previous separator
			// boundary, clamped at the root:
			// "parent/child/../grandchild" => "parent/grandchild".
			if i+2 < len(path) &&
				(i+3 == len(path) || platform.IsSeparator(path[i+3])) &&
				path[i+1] == '.' && path[i+2] == '.' {
				s := len(sb) - 1
				for ; s >= skip; s-- {
					if platform.IsSeparator(sb[s]) {
						// Keep the separator when a trailing ".." lands on
						// the root boundary, so `C:\tmp\..` ends as `C:\`.
						if i+3 == len(path) && s == skip {
							sb = sb[:s+1]
						} else {
							sb = sb[:s]
						}
						break
					}
				}
				if s < skip {
					sb = sb[:skip]
				}
				i += 2
				continue
			}
		}

		if c != sep && platform.IsSeparator(c) {
			c = sep
			flippedSeparator = true
		}
		sb = append(sb, c)
	}

	if !flippedSeparator && len(sb) == len(path) {
		return path, false
	}

	// Unwinding may have eaten the root's own trailing separator.
	if skip != rootLength && len(sb) < rootLength {
		sb = append(sb, path[rootLength-1])
	}
	return string(sb), true
}
