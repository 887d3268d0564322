package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

func getLogFilePath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "htmlmin", "htmlmin.log"), nil
}

// setupLog routes charmbracelet/log output to a cache-dir file instead of
// stderr, keeping stdout (the minified HTML) and stderr (user-facing
// errors) clean. Logging is best-effort: if the cache dir can't be created
// or opened, logging is simply discarded rather than failing the run.
func setupLog() (func() error, error) {
	log.SetOutput(io.Discard)
	logFile, err := getLogFilePath()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil { //nolint:gosec
		return func() error { return nil }, nil //nolint:nilerr
	}
	f, err := os.OpenFile(logFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644) //nolint:gosec
	if err != nil {
		return func() error { return nil }, nil //nolint:nilerr
	}
	log.SetOutput(f)
	log.SetLevel(log.InfoLevel)
	return f.Close, nil
}
