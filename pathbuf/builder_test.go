package pathbuf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/pathtools/pathops"
)

func TestNew(t *testing.T) {
	b := New(pathops.Unix)
	defer b.Dispose()

	assert.Equal(t, 0, b.Len())
	assert.GreaterOrEqual(t, b.Cap(), defaultCapacity)
	assert.Equal(t, "", b.String())
	assert.Equal(t, pathops.Unix, b.Platform())
}

func TestNewCapacity(t *testing.T) {
	b := NewCapacity(pathops.Windows, 1024)
	defer b.Dispose()

	assert.GreaterOrEqual(t, b.Cap(), 1024)
	assert.Equal(t, 0, b.Len())

	small := NewCapacity(pathops.Windows, 1)
	defer small.Dispose()
	assert.GreaterOrEqual(t, small.Cap(), defaultCapacity)
}

func TestNewFromPath(t *testing.T) {
	b := NewFromPath(pathops.Windows, `C:\a\b.txt`)
	defer b.Dispose()

	assert.Equal(t, `C:\a\b.txt`, b.String())
	assert.Equal(t, 10, b.Len())
}

func TestAdd(t *testing.T) {
	b := New(pathops.Unix)
	defer b.Dispose()

	b.Add("/a")
	b.Add("")
	b.AddByte('/')
	b.AddBytes([]byte("b"))
	assert.Equal(t, "/a/b", b.String())
	assert.Equal(t, []byte("/a/b"), b.Bytes())
}

func TestAppend(t *testing.T) {
	tests := []struct {
		name     string
		platform pathops.Platform
		initial  string
		appends  []string
		want     string
	}{
		{name: "separator inserted", platform: pathops.Unix, initial: "/a", appends: []string{"b", "c"}, want: "/a/b/c"},
		{name: "empty buffer gets no separator", platform: pathops.Unix, initial: "", appends: []string{"a"}, want: "a"},
		{name: "buffer trailing separator respected", platform: pathops.Unix, initial: "/a/", appends: []string{"b"}, want: "/a/b"},
		{name: "text leading separator respected", platform: pathops.Unix, initial: "/a", appends: []string{"/b"}, want: "/a/b"},
		{name: "empty text ignored", platform: pathops.Unix, initial: "/a", appends: []string{""}, want: "/a"},
		{name: "windows uses backslash", platform: pathops.Windows, initial: `C:\a`, appends: []string{"b"}, want: `C:\a\b`},
		{name: "windows alt separator counts", platform: pathops.Windows, initial: `C:/a/`, appends: []string{"b"}, want: `C:/a/b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewFromPath(tt.platform, tt.initial)
			defer b.Dispose()
			for _, s := range tt.appends {
				b.Append(s)
			}
			assert.Equal(t, tt.want, b.String())
		})
	}
}

func TestChangeExtension(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		ext     string
		want    string
		changed bool
	}{
		{name: "replace", initial: `C:\a\file.txt`, ext: "md", want: `C:\a\file.md`, changed: true},
		{name: "leading dot optional", initial: `C:\a\file.txt`, ext: ".md", want: `C:\a\file.md`, changed: true},
		{name: "add when absent", initial: `C:\a\file`, ext: "md", want: `C:\a\file.md`, changed: true},
		{name: "bare trailing dot replaced", initial: `C:\a\noext.`, ext: "md", want: `C:\a\noext.md`, changed: true},
		{name: "last extension only", initial: `archive.tar.gz`, ext: "zip", want: `archive.tar.zip`, changed: true},
		{name: "dotfile keeps its name", initial: `.profile`, ext: "bak", want: `.profile.bak`, changed: true},
		{name: "empty ext removes", initial: `C:\a\file.txt`, ext: "", want: `C:\a\file`, changed: true},
		{name: "empty ext on no extension", initial: `C:\a\file`, ext: "", want: `C:\a\file`, changed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewFromPath(pathops.Windows, tt.initial)
			defer b.Dispose()
			assert.Equal(t, tt.changed, b.ChangeExtension(tt.ext))
			assert.Equal(t, tt.want, b.String())
		})
	}
}

func TestRemoveExtension(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		want    string
		removed bool
	}{
		{name: "simple", initial: `C:\a\file.txt`, want: `C:\a\file`, removed: true},
		{name: "last extension only", initial: `archive.tar.gz`, want: `archive.tar`, removed: true},
		{name: "no extension", initial: `C:\a\file`, want: `C:\a\file`, removed: false},
		{name: "trailing dot is no extension", initial: `noext.`, want: `noext.`, removed: false},
		{name: "leading dot is no extension", initial: `.profile`, want: `.profile`, removed: false},
		{name: "dot in directory only", initial: `C:\a.b\c`, want: `C:\a.b\c`, removed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewFromPath(pathops.Windows, tt.initial)
			defer b.Dispose()
			assert.Equal(t, tt.removed, b.RemoveExtension())
			assert.Equal(t, tt.want, b.String())
		})
	}
}

func TestChangeFileName(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		newName string
		want    string
		changed bool
	}{
		{name: "replace", initial: `C:\a\b.txt`, newName: "c.md", want: `C:\a\c.md`, changed: true},
		{name: "append to directory path", initial: `C:\a\`, newName: "b.txt", want: `C:\a\b.txt`, changed: true},
		{name: "empty name removes", initial: `C:\a\b.txt`, newName: "", want: `C:\a\`, changed: true},
		{name: "empty name on directory path", initial: `C:\a\`, newName: "", want: `C:\a\`, changed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewFromPath(pathops.Windows, tt.initial)
			defer b.Dispose()
			assert.Equal(t, tt.changed, b.ChangeFileName(tt.newName))
			assert.Equal(t, tt.want, b.String())
		})
	}
}

func TestRemoveFileName(t *testing.T) {
	b := NewFromPath(pathops.Unix, "/a/b.txt")
	defer b.Dispose()

	assert.True(t, b.RemoveFileName())
	assert.Equal(t, "/a/", b.String())
	assert.False(t, b.RemoveFileName(), "nothing left to remove after the separator")
}

func TestEnsureTrailingSeparator(t *testing.T) {
	b := NewFromPath(pathops.Windows, `C:\a`)
	defer b.Dispose()

	b.EnsureTrailingSeparator()
	assert.Equal(t, `C:\a\`, b.String())
	b.EnsureTrailingSeparator()
	assert.Equal(t, `C:\a\`, b.String(), "must be idempotent")

	empty := New(pathops.Windows)
	defer empty.Dispose()
	empty.EnsureTrailingSeparator()
	assert.Equal(t, "", empty.String(), "no separator on an empty buffer")
}

func TestTrimEndingDirectorySeparator(t *testing.T) {
	tests := []struct {
		name     string
		platform pathops.Platform
		initial  string
		want     string
	}{
		{name: "trailing trimmed", platform: pathops.Windows, initial: `C:\a\`, want: `C:\a`},
		{name: "drive root kept", platform: pathops.Windows, initial: `C:\`, want: `C:\`},
		{name: "unix root kept", platform: pathops.Unix, initial: "/", want: "/"},
		{name: "no separator", platform: pathops.Unix, initial: "/a", want: "/a"},
		{name: "empty", platform: pathops.Unix, initial: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewFromPath(tt.platform, tt.initial)
			defer b.Dispose()
			b.TrimEndingDirectorySeparator()
			assert.Equal(t, tt.want, b.String())
		})
	}
}

func TestTerminatedBytes(t *testing.T) {
	b := NewFromPath(pathops.Unix, "/a")
	defer b.Dispose()

	got := b.TerminatedBytes()
	assert.Equal(t, []byte("/a\x00"), got)
	assert.Equal(t, 2, b.Len(), "sentinel must not count toward the logical length")
	assert.Equal(t, "/a", b.String())
}

func TestTryCopyTo(t *testing.T) {
	b := NewFromPath(pathops.Unix, "/a/b")
	defer b.Dispose()

	small := make([]byte, 3)
	n, ok := b.TryCopyTo(small)
	assert.False(t, ok)
	assert.Equal(t, 0, n)

	exact := make([]byte, 4)
	n, ok = b.TryCopyTo(exact)
	assert.True(t, ok)
	assert.Equal(t, 4, n)
	assert.Equal(t, []byte("/a/b"), exact)
}

func TestGrowth(t *testing.T) {
	// Borrowed storage pins the starting capacity, making the growth
	// sequence deterministic regardless of what the pool holds.
	b := NewBorrowed(pathops.Unix, make([]byte, defaultCapacity))
	defer b.Dispose()

	long := strings.Repeat("x", defaultCapacity+1)
	b.Add(long)
	assert.Equal(t, long, b.String())
	assert.Equal(t, 2*defaultCapacity, b.Cap(), "growth doubles")

	b.Add(strings.Repeat("y", 3*defaultCapacity))
	assert.Equal(t, 4*defaultCapacity+1, b.Len())
	assert.Equal(t, b.Len(), b.Cap(), "exact fit when doubling is insufficient")
}

func TestEnsureCapacity(t *testing.T) {
	b := NewFromPath(pathops.Unix, "/keep/me")
	defer b.Dispose()

	b.EnsureCapacity(4 * defaultCapacity)
	assert.GreaterOrEqual(t, b.Cap(), 4*defaultCapacity)
	assert.Equal(t, "/keep/me", b.String(), "content survives growth")

	capBefore := b.Cap()
	b.EnsureCapacity(1)
	assert.Equal(t, capBefore, b.Cap(), "no shrink")
}

func TestNewBorrowed(t *testing.T) {
	t.Run("writes into borrowed storage", func(t *testing.T) {
		storage := make([]byte, 8)
		b := NewBorrowed(pathops.Unix, storage)
		defer b.Dispose()

		b.Add("/ab")
		assert.Equal(t, "/ab", b.String())
		assert.Equal(t, []byte("/ab"), storage[:3])
	})

	t.Run("switches to pool on overflow", func(t *testing.T) {
		storage := make([]byte, 4)
		b := NewBorrowed(pathops.Unix, storage)
		defer b.Dispose()

		b.Add("/ab")
		b.Add(strings.Repeat("x", 16))
		assert.Equal(t, "/ab"+strings.Repeat("x", 16), b.String())
		assert.GreaterOrEqual(t, b.Cap(), 19)
		assert.Equal(t, []byte("/ab"), storage[:3], "borrowed storage keeps its prefix")
	})
}

func TestDispose(t *testing.T) {
	b := NewFromPath(pathops.Unix, "/a")
	b.Dispose()
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, "", b.String())

	b.Dispose() // second call is a no-op
	assert.Equal(t, 0, b.Len())
}

// Building with Append then reading back through pathops keeps the two
// packages agreeing on the grammar.
func TestBuilderPathopsRoundTrip(t *testing.T) {
	b := New(pathops.Windows)
	defer b.Dispose()

	b.Append(`C:\projects`)
	b.Append("app")
	b.Append("main.go")

	path := b.String()
	require.Equal(t, `C:\projects\app\main.go`, path)
	assert.Equal(t, "main.go", pathops.FileName(path, pathops.Windows))
	assert.Equal(t, `C:\projects\app`, pathops.DirectoryName(path, pathops.Windows))
	assert.Equal(t, ".go", pathops.Extension(path, pathops.Windows))
}
