package pathops

import (
	"strings"

	"golang.org/x/text/cases"
)

// PathEquals reports whether two paths are equal under the platform's
// grammar: trailing separators are trimmed from both sides (but never
// below the root), any separator compares equal to any separator, and
// Windows folds case while Unix compares exactly. No normalization of
// inner segments happens here; "a/./b" and "a/b" are not equal.
func PathEquals(path1, path2 string, platform Platform) bool {
	path1 = trimEndingSeparators(path1, platform)
	path2 = trimEndingSeparators(path2, platform)

	if platform != Windows {
		return path1 == path2
	}

	if isASCII(path1) && isASCII(path2) {
		if len(path1) != len(path2) {
			return false
		}
		for i := 0; i < len(path1); i++ {
			c1, c2 := path1[i], path2[i]
			if isWindowsSeparator(c1) && isWindowsSeparator(c2) {
				continue
			}
			if toUpperASCII(c1) != toUpperASCII(c2) {
				return false
			}
		}
		return true
	}

	// Outside ASCII, Windows comparison uses Unicode case folding over
	// separator-canonicalized forms.
	fold := cases.Fold()
	return fold.String(canonicalWindowsSeparators(path1)) ==
		fold.String(canonicalWindowsSeparators(path2))
}

// trimEndingSeparators removes all trailing separators without trimming
// past the root, so `C:\` and `/` survive intact.
func trimEndingSeparators(path string, platform Platform) string {
	root := RootLength(path, platform)
	for len(path) > root && platform.IsSeparator(path[len(path)-1]) {
		path = path[:len(path)-1]
	}
	return path
}

func canonicalWindowsSeparators(path string) string {
	return strings.Map(func(r rune) rune {
		if r == windowsAltSeparator {
			return windowsSeparator
		}
		return r
	}, path)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

func toUpperASCII(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
