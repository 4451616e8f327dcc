package pathops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegments(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		platform Platform
		want     []string
	}{
		{name: "windows drive rooted", path: `C:\a\b`, platform: Windows, want: []string{`C:\`, `a`, `b`}},
		{name: "windows drive relative", path: `C:a\b`, platform: Windows, want: []string{`C:`, `a`, `b`}},
		{name: "windows current drive rooted", path: `\a\b`, platform: Windows, want: []string{`\`, `a`, `b`}},
		{name: "windows UNC", path: `\\server\share\x\y`, platform: Windows, want: []string{`\\server\share`, `x`, `y`}},
		{name: "windows device", path: `\\?\C:\a`, platform: Windows, want: []string{`\\?\C:\`, `a`}},
		{name: "windows bare root", path: `C:\`, platform: Windows, want: []string{`C:\`}},
		{name: "windows mixed separators", path: `C:\a/b`, platform: Windows, want: []string{`C:\`, `a`, `b`}},
		{name: "windows relative", path: `a\b`, platform: Windows, want: []string{`a`, `b`}},
		{name: "unix rooted", path: "/a/b", platform: Unix, want: []string{"/", "a", "b"}},
		{name: "unix bare root", path: "/", platform: Unix, want: []string{"/"}},
		{name: "unix relative", path: "a/b/c", platform: Unix, want: []string{"a", "b", "c"}},
		{name: "unix duplicate separators skipped", path: "/a//b/", platform: Unix, want: []string{"/", "a", "b"}},
		{name: "unix dot segments are segments", path: "/a/./..", platform: Unix, want: []string{"/", "a", ".", ".."}},
		{name: "empty", path: "", platform: Unix, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Segments(tt.path, tt.platform)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want), SegmentCount(tt.path, tt.platform))
		})
	}
}
