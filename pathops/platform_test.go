package pathops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootLength_Windows(t *testing.T) {
	tests := []struct {
		name string
		path string
		want int
	}{
		{name: "empty", path: ``, want: 0},
		{name: "relative", path: `foo\bar`, want: 0},
		{name: "current drive rooted", path: `\foo`, want: 1},
		{name: "lone separator", path: `\`, want: 1},
		{name: "drive relative", path: `C:foo`, want: 2},
		{name: "bare drive", path: `C:`, want: 2},
		{name: "drive rooted", path: `C:\foo`, want: 3},
		{name: "bare drive root", path: `C:\`, want: 3},
		{name: "drive rooted with forward slash", path: `C:/foo`, want: 3},
		{name: "lowercase drive", path: `c:\foo`, want: 3},
		{name: "invalid drive char", path: `1:\foo`, want: 0},
		{name: "UNC server and share", path: `\\server\share\file`, want: 14},
		{name: "UNC without trailing content", path: `\\server\share`, want: 14},
		{name: "UNC server only", path: `\\server`, want: 8},
		{name: "UNC bare prefix", path: `\\`, want: 2},
		{name: "UNC forward slashes", path: `//server/share/x`, want: 14},
		{name: "device drive", path: `\\?\C:\foo`, want: 7},
		{name: "device dot", path: `\\.\pipe\name`, want: 9},
		{name: "device NT object", path: `\??\C:\foo`, want: 7},
		{name: "device bare prefix", path: `\\?\`, want: 4},
		{name: "device no trailing separator", path: `\\?\C:`, want: 6},
		{name: "device UNC", path: `\\?\UNC\server\share\x`, want: 20},
		{name: "device UNC without trailing content", path: `\\?\UNC\server\share`, want: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RootLength(tt.path, Windows))
			assert.Equal(t, tt.path[:tt.want], PathRoot(tt.path, Windows))
		})
	}
}

func TestRootLength_Unix(t *testing.T) {
	tests := []struct {
		name string
		path string
		want int
	}{
		{name: "empty", path: "", want: 0},
		{name: "relative", path: "foo/bar", want: 0},
		{name: "rooted", path: "/foo", want: 1},
		{name: "lone separator", path: "/", want: 1},
		{name: "double slash", path: "//foo", want: 1},
		{name: "backslash is not a separator", path: `\foo`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RootLength(tt.path, Unix))
		})
	}
}

func TestClassifyRoot_Windows(t *testing.T) {
	tests := []struct {
		name string
		path string
		want RootKind
	}{
		{name: "relative", path: `foo`, want: RootNone},
		{name: "empty", path: ``, want: RootNone},
		{name: "current drive rooted", path: `\foo`, want: RootCurrentDriveRooted},
		{name: "drive relative", path: `C:foo`, want: RootDriveRelative},
		{name: "bare drive", path: `C:`, want: RootDriveRelative},
		{name: "drive rooted", path: `C:\foo`, want: RootDriveRooted},
		{name: "drive rooted forward slash", path: `C:/foo`, want: RootDriveRooted},
		{name: "UNC", path: `\\server\share`, want: RootUNC},
		{name: "device extended", path: `\\?\C:\foo`, want: RootDevice},
		{name: "device dot", path: `\\.\pipe\name`, want: RootDevice},
		{name: "device NT object", path: `\??\C:\foo`, want: RootDevice},
		{name: "device UNC", path: `\\?\UNC\server\share`, want: RootDeviceUNC},
		{name: "device dot UNC", path: `\\.\UNC\server\share`, want: RootDeviceUNC},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyRoot(tt.path, Windows))
		})
	}
}

func TestClassifyRoot_Unix(t *testing.T) {
	assert.Equal(t, RootRooted, ClassifyRoot("/etc", Unix))
	assert.Equal(t, RootNone, ClassifyRoot("etc", Unix))
	assert.Equal(t, RootNone, ClassifyRoot("", Unix))
}

func TestRootKindString(t *testing.T) {
	kinds := map[RootKind]string{
		RootNone:               "none",
		RootRooted:             "rooted",
		RootCurrentDriveRooted: "current-drive-rooted",
		RootDriveRelative:      "drive-relative",
		RootDriveRooted:        "drive-rooted",
		RootUNC:                "unc",
		RootDevice:             "device",
		RootDeviceUNC:          "device-unc",
	}
	for kind, want := range kinds {
		assert.Equal(t, want, kind.String())
	}
}

func TestIsPathRooted(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		platform Platform
		want     bool
	}{
		{name: "windows drive rooted", path: `C:\foo`, platform: Windows, want: true},
		{name: "windows drive relative is rooted", path: `C:foo`, platform: Windows, want: true},
		{name: "windows current drive rooted", path: `\foo`, platform: Windows, want: true},
		{name: "windows UNC", path: `\\server\share`, platform: Windows, want: true},
		{name: "windows relative", path: `foo`, platform: Windows, want: false},
		{name: "windows empty", path: ``, platform: Windows, want: false},
		{name: "unix rooted", path: "/foo", platform: Unix, want: true},
		{name: "unix relative", path: "foo", platform: Unix, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPathRooted(tt.path, tt.platform))
		})
	}
}

func TestIsPathFullyQualified(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		platform Platform
		want     bool
	}{
		{name: "windows drive rooted", path: `C:\foo`, platform: Windows, want: true},
		{name: "windows drive forward slash", path: `C:/foo`, platform: Windows, want: true},
		{name: "windows UNC", path: `\\server\share`, platform: Windows, want: true},
		{name: "windows device", path: `\\?\C:\foo`, platform: Windows, want: true},
		{name: "windows NT object prefix", path: `\?`, platform: Windows, want: true},
		{name: "windows drive relative", path: `C:foo`, platform: Windows, want: false},
		{name: "windows bare drive", path: `C:`, platform: Windows, want: false},
		{name: "windows current drive rooted", path: `\foo`, platform: Windows, want: false},
		{name: "windows single separator", path: `\`, platform: Windows, want: false},
		{name: "windows single char", path: `C`, platform: Windows, want: false},
		{name: "windows relative", path: `foo\bar`, platform: Windows, want: false},
		{name: "unix rooted", path: "/foo", platform: Unix, want: true},
		{name: "unix lone separator", path: "/", platform: Unix, want: true},
		{name: "unix relative", path: "foo", platform: Unix, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPathFullyQualified(tt.path, tt.platform))
		})
	}
}

func TestIsEffectivelyEmpty(t *testing.T) {
	assert.True(t, IsEffectivelyEmpty("", Windows))
	assert.True(t, IsEffectivelyEmpty("", Unix))
	assert.True(t, IsEffectivelyEmpty("   ", Windows), "spaces are effectively empty on Windows")
	assert.False(t, IsEffectivelyEmpty("   ", Unix), "spaces are a valid Unix name")
	assert.False(t, IsEffectivelyEmpty("a", Windows))
	assert.False(t, IsEffectivelyEmpty(" a ", Windows))
}

func TestPlatformSeparator(t *testing.T) {
	assert.Equal(t, byte('\\'), Windows.Separator())
	assert.Equal(t, byte('/'), Unix.Separator())
	assert.True(t, Windows.IsSeparator('/'))
	assert.True(t, Windows.IsSeparator('\\'))
	assert.False(t, Unix.IsSeparator('\\'))
	assert.True(t, Unix.IsSeparator('/'))
}

func TestPlatformString(t *testing.T) {
	assert.Equal(t, "windows", Windows.String())
	assert.Equal(t, "unix", Unix.String())
	assert.Contains(t, []Platform{Windows, Unix}, Native)
}
