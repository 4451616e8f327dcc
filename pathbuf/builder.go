package pathbuf

import (
	"strings"

	"github.com/erraggy/pathtools/pathops"
)

// maxLength bounds doubled growth. Growth past this point happens
// exact-fit only.
const maxLength = 1 << 30

// Builder builds a path incrementally inside a backing array. The
// logical path is always storage[:length]; query methods never observe
// bytes beyond the logical length.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	buf      []byte
	length   int
	platform pathops.Platform
	pooled   bool // buf is rented from the package pool
	disposed bool
}

// New creates an empty pool-backed Builder for the platform.
func New(platform pathops.Platform) *Builder {
	return &Builder{buf: rent(defaultCapacity), pooled: true, platform: platform}
}

// NewCapacity creates an empty pool-backed Builder with at least the
// given capacity.
func NewCapacity(platform pathops.Platform, capacity int) *Builder {
	if capacity < defaultCapacity {
		capacity = defaultCapacity
	}
	return &Builder{buf: rent(capacity), pooled: true, platform: platform}
}

// NewFromPath creates a Builder pre-seeded with an initial path.
func NewFromPath(platform pathops.Platform, path string) *Builder {
	capacity := len(path)
	if capacity < defaultCapacity {
		capacity = defaultCapacity
	}
	b := &Builder{buf: rent(capacity), pooled: true, platform: platform}
	b.length = copy(b.buf, path)
	return b
}

// NewBorrowed creates a Builder over caller-supplied storage. The
// borrowed slice is used until an append outgrows it, at which point the
// Builder switches to pool-owned storage; the borrowed slice itself is
// never reallocated.
func NewBorrowed(platform pathops.Platform, storage []byte) *Builder {
	return &Builder{buf: storage, platform: platform}
}

// Len returns the logical length of the path being built.
func (b *Builder) Len() int { return b.length }

// Cap returns the current storage capacity.
func (b *Builder) Cap() int { return cap(b.buf) }

// Platform returns the grammar the Builder was created with.
func (b *Builder) Platform() pathops.Platform { return b.platform }

// String materializes the current logical window as a string.
func (b *Builder) String() string {
	return string(b.buf[:b.length])
}

// Bytes exposes the current logical window. The slice aliases the
// Builder's storage and is invalidated by any further mutation.
func (b *Builder) Bytes() []byte {
	return b.buf[:b.length]
}

// TerminatedBytes is Bytes with one sentinel NUL guaranteed past the
// logical length, for interop that needs a terminator. The logical
// length is unchanged.
func (b *Builder) TerminatedBytes() []byte {
	b.grow(1)
	b.buf[b.length] = 0
	return b.buf[:b.length+1]
}

// TryCopyTo copies the logical window into dst, reporting how many bytes
// were written and whether dst was large enough. On failure nothing is
// written.
func (b *Builder) TryCopyTo(dst []byte) (int, bool) {
	if len(dst) < b.length {
		return 0, false
	}
	return copy(dst, b.buf[:b.length]), true
}

// AddByte appends a single character with no separator handling.
func (b *Builder) AddByte(c byte) {
	b.grow(1)
	b.buf[b.length] = c
	b.length++
}

// Add appends text literally with no separator handling, for building
// suffixes such as extensions.
func (b *Builder) Add(s string) {
	if len(s) == 0 {
		return
	}
	b.grow(len(s))
	b.length += copy(b.buf[b.length:], s)
}

// AddBytes is Add for a byte slice.
func (b *Builder) AddBytes(s []byte) {
	if len(s) == 0 {
		return
	}
	b.grow(len(s))
	b.length += copy(b.buf[b.length:], s)
}

// Append appends text as a new path segment: a single separator is
// inserted first unless the buffer is empty, already ends in one, or the
// text begins with one. This mirrors pathops.Join at the buffer level.
func (b *Builder) Append(s string) {
	if len(s) == 0 {
		return
	}
	if b.length > 0 &&
		!b.platform.IsSeparator(b.buf[b.length-1]) &&
		!b.platform.IsSeparator(s[0]) {
		b.grow(len(s) + 1)
		b.buf[b.length] = b.platform.Separator()
		b.length++
	} else {
		b.grow(len(s))
	}
	b.length += copy(b.buf[b.length:], s)
}

// EnsureCapacity grows the storage so at least capacity bytes fit,
// using the same policy as implicit growth.
func (b *Builder) EnsureCapacity(capacity int) {
	if capacity > cap(b.buf) {
		b.grow(capacity - b.length)
	}
}

// ChangeExtension replaces the extension of the path being built, adding
// one if none is present. The new extension may be given with or without
// its leading dot. A bare trailing dot counts as an empty extension and
// is replaced too. Reports whether the buffer changed.
func (b *Builder) ChangeExtension(ext string) bool {
	changed := b.RemoveExtension()
	if !changed && b.length > 0 && b.buf[b.length-1] == '.' {
		b.length--
		changed = true
	}
	if len(ext) == 0 {
		return changed
	}
	ext = strings.TrimPrefix(ext, ".")
	b.AddByte('.')
	b.Add(ext)
	return true
}

// RemoveExtension truncates the extension (including its dot) off the
// path being built, under the same rules as pathops.Extension: a leading
// or trailing dot is not an extension. Reports whether one was removed.
func (b *Builder) RemoveExtension() bool {
	ext := pathops.Extension(b.String(), b.platform)
	if len(ext) == 0 {
		return false
	}
	b.length -= len(ext)
	return true
}

// ChangeFileName replaces the final segment of the path being built,
// appending one (separator included) if none is present. Reports whether
// the buffer changed.
func (b *Builder) ChangeFileName(name string) bool {
	removed := b.RemoveFileName()
	if len(name) == 0 {
		return removed
	}
	b.Append(name)
	return true
}

// RemoveFileName truncates the final segment off the path being built,
// leaving any separator before it. Reports whether one was removed.
func (b *Builder) RemoveFileName() bool {
	current := pathops.FileName(b.String(), b.platform)
	if len(current) == 0 {
		return false
	}
	b.length -= len(current)
	return true
}

// EnsureTrailingSeparator appends the canonical separator unless the
// buffer is empty or already ends in one. Idempotent.
func (b *Builder) EnsureTrailingSeparator() {
	if b.length == 0 || b.platform.IsSeparator(b.buf[b.length-1]) {
		return
	}
	b.AddByte(b.platform.Separator())
}

// TrimEndingDirectorySeparator removes a single trailing separator,
// refusing to trim a root's own separator. Idempotent for paths with a
// single trailing separator.
func (b *Builder) TrimEndingDirectorySeparator() {
	if b.length == 0 || !b.platform.IsSeparator(b.buf[b.length-1]) {
		return
	}
	if pathops.RootLength(b.String(), b.platform) == b.length {
		return
	}
	b.length--
}

// Dispose returns pool-rented storage and clears the logical length.
// Safe to call multiple times.
func (b *Builder) Dispose() {
	if b.disposed {
		return
	}
	if b.pooled {
		giveBack(b.buf)
	}
	b.buf = nil
	b.length = 0
	b.pooled = false
	b.disposed = true
}

// grow ensures room for additional bytes past the logical length,
// doubling the capacity (clamped at maxLength) or growing exact-fit when
// doubling is insufficient. A borrowed builder switches to pool-owned
// storage on its first growth.
func (b *Builder) grow(additional int) {
	required := b.length + additional
	if required <= cap(b.buf) {
		b.buf = b.buf[:cap(b.buf)]
		return
	}

	newCapacity := 2 * cap(b.buf)
	if newCapacity > maxLength {
		newCapacity = maxLength
	}
	if newCapacity < required {
		newCapacity = required
	}
	if newCapacity < defaultCapacity {
		newCapacity = defaultCapacity
	}

	newBuf := rent(newCapacity)
	copy(newBuf, b.buf[:b.length])
	if b.pooled {
		giveBack(b.buf)
	}
	b.buf = newBuf
	b.pooled = true
}
