// Package pathbuf provides an incrementally growable character buffer
// for building paths without intermediate string allocations.
//
// The primary type is [Builder], which owns a resizable backing array
// (or borrows a caller-supplied one) and mutates a logical window into
// it in place. The full string is only materialized when String() is
// called; structural queries delegate the current window to
// [github.com/erraggy/pathtools/pathops] under the builder's platform.
//
// # Builder Usage
//
// Use [New] (or [NewFromPath]) to obtain a pool-backed Builder, and
// Dispose to return its storage:
//
//	b := pathbuf.NewFromPath(pathops.Windows, `C:\projects`)
//	defer b.Dispose()
//
//	b.Append("app")          // inserts a single separator
//	b.Append("main.txt")
//	b.ChangeExtension("go")  // `C:\projects\app\main.go`
//
//	s := b.String()
//
// [Builder.Add] appends literally with no separator handling, which is how
// extensions and suffixes are built; [Builder.Append] mirrors the
// separator-insertion rule of pathops.Join at the buffer level.
//
// # Storage
//
// A Builder either owns pool-rented storage, grown by doubling (clamped
// to a maximum, falling back to exact-fit growth when doubling is not
// enough), or borrows a caller-supplied slice via [NewBorrowed]. A
// borrowed builder that outgrows its slice switches to pool-owned
// storage; the borrowed slice is never reallocated or returned to the
// pool.
//
// Builders are not safe for concurrent use; the storage pool underneath
// is. Failing to Dispose a pool-backed builder leaks pooled capacity,
// never memory safety.
package pathbuf
