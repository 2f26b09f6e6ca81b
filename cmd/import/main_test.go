package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_Usage(t *testing.T) {
	var stderr bytes.Buffer

	require.Equal(t, exitUsage, run(nil, &stderr))
	require.Contains(t, stderr.String(), "CSV file path is required")

	stderr.Reset()
	require.Equal(t, exitUsage, run([]string{"-batch", "lots"}, &stderr))
}

func TestRun_MissingDatabaseURI(t *testing.T) {
	t.Setenv("DB_URI", "")
	t.Setenv("MONGODB_URI", "")

	var stderr bytes.Buffer
	require.Equal(t, exitError, run([]string{"interactions.csv"}, &stderr))
	require.Contains(t, stderr.String(), "Failed to load configuration")
}

func TestRun_MissingFileDoesNotConnect(t *testing.T) {
	t.Setenv("DB_URI", "mongodb://127.0.0.1:1")

	var stderr bytes.Buffer
	missing := filepath.Join(t.TempDir(), "nope.csv")
	require.Equal(t, exitError, run([]string{missing}, &stderr))
	require.Contains(t, stderr.String(), "Failed to open CSV file")
	require.NotContains(t, stderr.String(), "MongoDB")
}
