package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestResolveOptionsDefaults(t *testing.T) {
	resetViper(t)
	opts := resolveOptions()
	assert.False(t, opts.NoComments)
	assert.False(t, opts.NoCodeMinify)
	assert.False(t, opts.CodeAsHTML)
	assert.Equal(t, "", opts.Output)
}

func TestResolveOptionsReadsViperValues(t *testing.T) {
	resetViper(t)
	viper.Set("noComments", true)
	viper.Set("codeAsHTML", true)
	viper.Set("output", "out.html")

	opts := resolveOptions()
	assert.True(t, opts.NoComments)
	assert.True(t, opts.CodeAsHTML)
	assert.Equal(t, "out.html", opts.Output)
}

func TestRunHTMLMinMinifiesFileToOutput(t *testing.T) {
	resetViper(t)

	in := filepath.Join(t.TempDir(), "in.html")
	out := filepath.Join(t.TempDir(), "out.html")
	require.NoError(t, os.WriteFile(in, []byte("<p>a   b</p>"), 0o644))

	viper.Set("output", out)
	require.NoError(t, runHTMLMin(rootCmd, []string{in}))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "<p>a b</p>", string(got))
}

func TestRunHTMLMinRespectsNoComments(t *testing.T) {
	resetViper(t)

	in := filepath.Join(t.TempDir(), "in.html")
	out := filepath.Join(t.TempDir(), "out.html")
	require.NoError(t, os.WriteFile(in, []byte("a<!-- x -->b"), 0o644))

	viper.Set("output", out)
	viper.Set("noComments", true)
	require.NoError(t, runHTMLMin(rootCmd, []string{in}))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "a<!-- x -->b", string(got))
}

func TestRunHTMLMinRejectsMissingInput(t *testing.T) {
	resetViper(t)
	err := runHTMLMin(rootCmd, []string{filepath.Join(t.TempDir(), "missing.html")})
	assert.Error(t, err)
}
