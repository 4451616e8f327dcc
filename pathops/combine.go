package pathops

import "strings"

// Combine combines path operands with classic shell "cd" semantics: a
// rooted operand discards everything combined so far, and exactly one
// separator is inserted between operands when neither side supplies one.
// Empty operands are skipped.
func Combine(platform Platform, paths ...string) string {
	firstComponent := 0
	maxSize := 0

	// Walk the operands once to find the last rooted one; everything
	// before it cannot contribute to the result.
	for i, path := range paths {
		if len(path) == 0 {
			continue
		}
		if IsPathRooted(path, platform) {
			firstComponent = i
			maxSize = len(path)
		} else {
			maxSize += len(path) + 1
		}
	}

	var sb strings.Builder
	sb.Grow(maxSize)
	for i := firstComponent; i < len(paths); i++ {
		path := paths[i]
		if len(path) == 0 {
			continue
		}
		if sb.Len() == 0 {
			sb.WriteString(path)
			continue
		}
		if !platform.IsSeparator(sb.String()[sb.Len()-1]) && !platform.IsSeparator(path[0]) {
			sb.WriteByte(platform.Separator())
		}
		sb.WriteString(path)
	}
	return sb.String()
}

// Join concatenates path operands with the same separator-insertion rule
// as [Combine], but never treats a rooted operand specially: rooting
// cannot discard what came before. Empty operands are skipped.
func Join(platform Platform, paths ...string) string {
	result := ""
	for _, path := range paths {
		if len(path) == 0 {
			continue
		}
		result = joinTwo(result, path, platform)
	}
	return result
}

func joinTwo(first, second string, platform Platform) string {
	if len(first) == 0 {
		return second
	}
	if len(second) == 0 {
		return first
	}
	if platform.IsSeparator(first[len(first)-1]) || platform.IsSeparator(second[0]) {
		return first + second
	}
	return first + string(platform.Separator()) + second
}
