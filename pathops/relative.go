package pathops

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/erraggy/pathtools/patherrors"
)

// RelativePath computes the relative traversal that leads from `from` to
// `to`. Both operands must be fully qualified (this package never
// consults a process current directory; see [RelativePathFrom] for
// resolving against an explicit base).
//
// When the two paths share no root (different drive letters, say), the
// resolved `to` is returned unchanged: no relative traversal can exist,
// and that is a normal outcome, not an error. When the paths are equal,
// "." is returned.
func RelativePath(from, to string, platform Platform) (string, error) {
	if IsEffectivelyEmpty(from, platform) {
		return "", patherrors.NewInvalidArgument("from", "must not be effectively empty")
	}
	if IsEffectivelyEmpty(to, platform) {
		return "", patherrors.NewInvalidArgument("to", "must not be effectively empty")
	}
	resolvedFrom, err := FullPath(from, platform)
	if err != nil {
		return "", err
	}
	resolvedTo, err := FullPath(to, platform)
	if err != nil {
		return "", err
	}
	return relativePathResolved(resolvedFrom, resolvedTo, platform), nil
}

// RelativePathFrom is [RelativePath] with relative operands resolved
// against basePath first. basePath must be fully qualified.
func RelativePathFrom(basePath, from, to string, platform Platform) (string, error) {
	if IsEffectivelyEmpty(from, platform) {
		return "", patherrors.NewInvalidArgument("from", "must not be effectively empty")
	}
	if IsEffectivelyEmpty(to, platform) {
		return "", patherrors.NewInvalidArgument("to", "must not be effectively empty")
	}
	resolvedFrom, err := FullPathFrom(basePath, from, platform)
	if err != nil {
		return "", err
	}
	resolvedTo, err := FullPathFrom(basePath, to, platform)
	if err != nil {
		return "", err
	}
	return relativePathResolved(resolvedFrom, resolvedTo, platform), nil
}

func relativePathResolved(from, to string, platform Platform) string {
	if !rootsEqual(from, to, platform) {
		return to
	}

	commonLength := commonPathLength(from, to, platform)
	if commonLength == 0 {
		return to
	}

	// Trailing separators don't count toward the traversal itself, but a
	// trailing separator on `to` is preserved in the result.
	fromLength := len(from)
	if EndsInDirectorySeparator(from, platform) {
		fromLength--
	}
	toEndsInSeparator := EndsInDirectorySeparator(to, platform)
	toLength := len(to)
	if toEndsInSeparator {
		toLength--
	}

	if fromLength == toLength && commonLength >= fromLength {
		return "."
	}

	var sb strings.Builder
	sb.Grow(len(to))

	if commonLength < fromLength {
		// One ".." per segment of `from` beyond the common prefix.
		sb.WriteString("..")
		for i := commonLength + 1; i < fromLength; i++ {
			if platform.IsSeparator(from[i]) {
				sb.WriteByte(platform.Separator())
				sb.WriteString("..")
			}
		}
	} else if platform.IsSeparator(to[commonLength]) {
		// `to` exactly extends `from`: consume the joining separator
		// instead of emitting any "..".
		commonLength++
	}

	differenceLength := toLength - commonLength
	if toEndsInSeparator {
		differenceLength++
	}
	if differenceLength > 0 {
		if sb.Len() > 0 {
			sb.WriteByte(platform.Separator())
		}
		sb.WriteString(to[commonLength : commonLength+differenceLength])
	}
	return sb.String()
}

func rootsEqual(a, b string, platform Platform) bool {
	aRoot := RootLength(a, platform)
	bRoot := RootLength(b, platform)
	if aRoot != bRoot {
		return false
	}
	if platform == Windows {
		return strings.EqualFold(a[:aRoot], b[:bRoot])
	}
	return a[:aRoot] == b[:bRoot]
}

// commonPathLength returns the length of the common prefix of a and b
// ending at a segment boundary, so a partial segment match like
// `C:\Foodie` vs `C:\Foobar` does not report `C:\Foo` as common.
func commonPathLength(a, b string, platform Platform) int {
	common := equalStartingCount(a, b, platform == Windows)
	if common == 0 {
		return common
	}

	// The whole of one path matching is only a segment boundary if the
	// other continues with a separator (or also ends).
	if common == len(a) && (common == len(b) || platform.IsSeparator(b[common])) {
		return common
	}
	if common == len(b) && platform.IsSeparator(a[common]) {
		return common
	}

	// Backtrack to the last separator boundary.
	for common > 0 && !platform.IsSeparator(a[common-1]) {
		common--
	}
	return common
}

// equalStartingCount counts the bytes of the common prefix of a and b,
// folding case when ignoreCase is set. Folded runes only match when
// their encodings are the same width, keeping the count a valid byte
// offset into both strings.
func equalStartingCount(a, b string, ignoreCase bool) int {
	n := 0
	for n < len(a) && n < len(b) {
		ra, sizeA := utf8.DecodeRuneInString(a[n:])
		rb, sizeB := utf8.DecodeRuneInString(b[n:])
		if ra != rb {
			if !ignoreCase || sizeA != sizeB || unicode.ToUpper(ra) != unicode.ToUpper(rb) {
				break
			}
		}
		n += sizeA
	}
	return n
}
