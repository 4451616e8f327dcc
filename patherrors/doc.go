// Package patherrors provides structured error types for pathtools.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - InvalidArgumentError: invalid path operands (empty where a value is
//     required, embedded NUL characters, or a base path that is not fully
//     qualified where one is required)
//   - NotSupportedError: operations outside the supported path grammars or
//     buffer configurations (for example growing a borrowed buffer past a
//     hard capacity limit)
//
// # Usage with errors.Is
//
//	full, err := pathops.FullPath(p, pathops.Windows, base)
//	if err != nil {
//	    if errors.Is(err, patherrors.ErrInvalidArgument) {
//	        // Reject the input; the operands were malformed.
//	    }
//	}
//
// Algorithmic outcomes are never errors: a relative-path request across
// differing roots returns the target unchanged, and a self-relative request
// returns ".". Only boundary validation produces errors from this package.
package patherrors
