// Package pathops implements a pure, I/O-free path algebra over two
// mutually incompatible grammars: Windows (drive letters, UNC shares,
// device prefixes, case-insensitive) and Unix (single-rooted,
// case-sensitive).
//
// Every operation takes an explicit [Platform] flag and performs only
// string transformations; nothing in this package touches a filesystem,
// resolves symlinks, or consults a current directory. Both grammars can
// therefore be exercised on any operating system, which is how the tests
// are written. Use [Native] when the running OS's grammar is wanted.
//
// # Root Classification
//
// The anchoring prefix of a path is classified by [ClassifyRoot] into one
// of the [RootKind] values, and measured by [RootLength]:
//
//	RootLength(`C:\foo`, Windows)              // 3, RootDriveRooted
//	RootLength(`C:foo`, Windows)               // 2, RootDriveRelative
//	RootLength(`\\server\share\x`, Windows)    // 14, RootUNC
//	RootLength(`\\?\C:\foo`, Windows)          // 7, RootDevice
//	RootLength(`\\?\UNC\server\share`, Windows) // 20, RootDeviceUNC
//	RootLength("/etc/passwd", Unix)            // 1, RootRooted
//
// A root length is always a prefix boundary: for UNC and device-UNC forms
// it covers exactly the server and share segments past the prefix.
//
// # Algebra
//
// [Combine] implements shell-style combination where a rooted right
// operand replaces everything to its left; [Join] is pure concatenation
// with single-separator insertion. [RelativePath] computes the relative
// traversal between two paths using segment-boundary-aware common-prefix
// matching, so `C:\Foodie` and `C:\Foobar` share no common segment even
// though they share characters.
//
// Component queries ([DirectoryName], [FileName], [Extension],
// [FileNameWithoutExtension], [PathRoot], [Segments]) are single-pass
// scans bounded by the root length.
//
// # Errors
//
// Boundary validation failures (empty operands where a value is required,
// embedded NUL characters, a base path that is not fully qualified)
// return [patherrors.ErrInvalidArgument] wrapped errors. Algorithmic
// outcomes are not errors: [RelativePath] over differing roots returns
// the target path, and a self-relative request returns ".".
package pathops
