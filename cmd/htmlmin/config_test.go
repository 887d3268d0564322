package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureConfigFileCreatesDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")

	orig := configFile
	configFile = path
	defer func() { configFile = orig }()

	require.NoError(t, ensureConfigFile())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, defaultConfigYAML, string(data))
}

func TestEnsureConfigFileLeavesExistingContentAlone(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("noComments: true\n"), 0o644))

	orig := configFile
	configFile = path
	defer func() { configFile = orig }()

	require.NoError(t, ensureConfigFile())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "noComments: true\n", string(data))
}

func TestEnsureConfigFileRejectsUnsupportedExtension(t *testing.T) {
	orig := configFile
	configFile = filepath.Join(t.TempDir(), "config.json")
	defer func() { configFile = orig }()

	err := ensureConfigFile()
	assert.Error(t, err)
}
