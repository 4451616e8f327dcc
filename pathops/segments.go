package pathops

// Segments splits path into its segments. The root (if any) is segment
// 0; the remaining segments are the separator-delimited non-empty runs
// after it. Returns nil for an empty path.
func Segments(path string, platform Platform) []string {
	n := walkSegments(path, platform, nil)
	if n == 0 {
		return nil
	}
	segments := make([]string, 0, n)
	walkSegments(path, platform, func(segment string) {
		segments = append(segments, segment)
	})
	return segments
}

// SegmentCount counts path segments without collecting them, useful for
// pre-sizing.
func SegmentCount(path string, platform Platform) int {
	return walkSegments(path, platform, nil)
}

// walkSegments visits each segment in order; emit may be nil to obtain
// only the count.
func walkSegments(path string, platform Platform, emit func(string)) int {
	count := 0
	rootLength := RootLength(path, platform)
	if rootLength > 0 {
		count++
		if emit != nil {
			emit(path[:rootLength])
		}
	}
	start := rootLength
	for i := rootLength; i <= len(path); i++ {
		if i == len(path) || platform.IsSeparator(path[i]) {
			if i > start {
				count++
				if emit != nil {
					emit(path[start:i])
				}
			}
			start = i + 1
		}
	}
	return count
}
