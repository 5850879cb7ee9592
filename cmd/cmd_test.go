package cmd

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePoint(t *testing.T) {
	x, y, err := parsePoint("12.5, 40")
	require.NoError(t, err)
	assert.Equal(t, 12.5, x)
	assert.Equal(t, 40.0, y)

	for _, bad := range []string{"", "12", "a,1", "1,b"} {
		_, _, err := parsePoint(bad)
		assert.Error(t, err, bad)
	}
}

func TestRenderCommand(t *testing.T) {
	t.Setenv("TRIGBOT_SEED", "")
	t.Setenv("TRIGBOT_LOG", "")
	out := filepath.Join(t.TempDir(), "round.png")

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{"render", "--seed", "42", "--out", out, "--width", "640", "--height", "400", "--hover", "600,300"})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil) })
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, stdout.String(), "Given:")
	assert.Contains(t, stdout.String(), "answer:")

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 640, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())
}

func TestRenderCommand_RejectsSizeBelowLayoutMinimum(t *testing.T) {
	out := filepath.Join(t.TempDir(), "small.png")

	var stderr bytes.Buffer
	rootCmd.SetErr(&stderr)
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetErr(nil) })

	rootCmd.SetArgs([]string{"render", "--out", out, "--width", "300", "--height", "600"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--width must be at least 480")

	rootCmd.SetArgs([]string{"render", "--out", out, "--width", "640", "--height", "100"})
	err = rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--height must be at least 400")

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestVersionCommand(t *testing.T) {
	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil) })
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "trigbot (devel)\n", stdout.String())
}
