package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupNormalizeFlags(t *testing.T) {
	fs, flags := SetupNormalizeFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Equal(t, "native", flags.Platform)
		assert.Equal(t, FormatText, flags.Format)
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"-p", "windows", "--format", "json", `C:\a\..\b`}
		require.NoError(t, fs.Parse(args))

		assert.Equal(t, "windows", flags.Platform)
		assert.Equal(t, FormatJSON, flags.Format)
		assert.Equal(t, `C:\a\..\b`, fs.Arg(0))
	})
}

func TestHandleNormalize_NoArgs(t *testing.T) {
	err := HandleNormalize([]string{})
	assert.Error(t, err)
}

func TestHandleNormalize_TooManyArgs(t *testing.T) {
	err := HandleNormalize([]string{"-p", "unix", "/a", "/b"})
	assert.Error(t, err)
}

func TestHandleNormalize_InvalidFormat(t *testing.T) {
	err := HandleNormalize([]string{"--format", "xml", "/a"})
	assert.Error(t, err)
}

func TestHandleNormalize_InvalidPlatform(t *testing.T) {
	err := HandleNormalize([]string{"-p", "beos", "/a"})
	assert.Error(t, err)
}

func TestHandleNormalize_Help(t *testing.T) {
	err := HandleNormalize([]string{"--help"})
	assert.NoError(t, err)
}

func TestHandleNormalize_Text(t *testing.T) {
	err := HandleNormalize([]string{"-p", "unix", "/a/./b/../c"})
	assert.NoError(t, err)
}

func TestHandleNormalize_JSON(t *testing.T) {
	err := HandleNormalize([]string{"-p", "windows", "--format", "json", `C:/a/./b`})
	assert.NoError(t, err)
}
