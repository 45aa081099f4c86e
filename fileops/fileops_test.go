package fileops

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c3nk/cli-standard-kit/directories"
	"github.com/c3nk/cli-standard-kit/logging"
)

func setupBatch(t *testing.T, names []string) (directories.Layout, []string) {
	t.Helper()

	layout, err := directories.Setup(t.TempDir())
	require.NoError(t, err)

	files := make([]string, len(names))

	for i, name := range names {
		files[i] = filepath.Join(layout.Inputs, name)

		require.NoError(t, os.WriteFile(files[i], []byte(name), 0600))
	}

	return layout, files
}

func TestProcessBatch(t *testing.T) {
	layout, files := setupBatch(t, []string{"a.txt", "b.txt", "c.txt"})

	var console, progress bytes.Buffer

	logger, closer, err := logging.Setup(logging.Options{
		Console: &console,
		LogFile: filepath.Join(layout.Logs, "batch.log"),
	})
	require.NoError(t, err)

	defer func() { _ = closer() }()

	fn := func(path string) (string, error) {
		if filepath.Base(path) == "b.txt" {
			return "", errors.New("bad input")
		}

		return "done", nil
	}

	stats := ProcessBatch(files, fn, layout, logger, BatchOptions{Progress: &progress})

	assert.Equal(t, BatchStats{Processed: 2, Failed: 1, Total: 3}, stats)

	// Files moved according to their outcome.
	_, err = os.Stat(filepath.Join(layout.Processed, "a.txt"))
	assert.NoError(t, err)

	_, err = os.Stat(filepath.Join(layout.Failed, "b.txt"))
	assert.NoError(t, err)

	_, err = os.Stat(filepath.Join(layout.Inputs, "a.txt"))
	assert.True(t, os.IsNotExist(err))

	assert.Contains(t, progress.String(), "3/3 (100.0%)")
	assert.Contains(t, console.String(), "bad input")
}

func TestProcessBatchDryRun(t *testing.T) {
	layout, files := setupBatch(t, []string{"a.txt"})

	var console, progress bytes.Buffer

	logger, closer, err := logging.Setup(logging.Options{
		Console: &console,
		LogFile: filepath.Join(layout.Logs, "batch.log"),
	})
	require.NoError(t, err)

	defer func() { _ = closer() }()

	called := false

	stats := ProcessBatch(files, func(string) (string, error) {
		called = true

		return "", nil
	}, layout, logger, BatchOptions{Progress: &progress, DryRun: true})

	assert.False(t, called)
	assert.Equal(t, BatchStats{Processed: 1, Total: 1}, stats)

	// Dry run leaves files in place.
	_, err = os.Stat(files[0])
	assert.NoError(t, err)
}

func TestProcessBatchStopOnError(t *testing.T) {
	layout, files := setupBatch(t, []string{"a.txt", "b.txt", "c.txt"})

	var console, progress bytes.Buffer

	logger, closer, err := logging.Setup(logging.Options{
		Console: &console,
		LogFile: filepath.Join(layout.Logs, "batch.log"),
	})
	require.NoError(t, err)

	defer func() { _ = closer() }()

	calls := 0

	stats := ProcessBatch(files, func(string) (string, error) {
		calls += 1

		return "", errors.New("boom")
	}, layout, logger, BatchOptions{Progress: &progress, StopOnError: true})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, stats.Failed)
	assert.Equal(t, 0, stats.Processed)
}

func TestProcessBatchEmpty(t *testing.T) {
	var progress bytes.Buffer

	stats := ProcessBatch(nil, nil, directories.Layout{}, nil, BatchOptions{Progress: &progress})

	assert.Equal(t, BatchStats{}, stats)
	assert.Empty(t, progress.String())
}

func TestListRecursive(t *testing.T) {
	tempDir := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(tempDir, "sub"), 0750))

	for _, name := range []string{"b.WAV", "a.txt", filepath.Join("sub", "c.wav")} {
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, name), nil, 0600))
	}

	files, err := ListRecursive(tempDir, nil)
	require.NoError(t, err)

	assert.Len(t, files, 3)
	assert.True(t, sortedStrings(files))

	files, err = ListRecursive(tempDir, []string{".wav"})
	require.NoError(t, err)

	// Extension match is case-insensitive.
	assert.Len(t, files, 2)

	files, err = ListRecursive(filepath.Join(tempDir, "missing"), nil)
	require.NoError(t, err)

	assert.Empty(t, files)
}

func sortedStrings(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}

	return true
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, filepath.Join("dir", "a_norm.wav"), OutputName(filepath.Join("dir", "a.wav"), "norm"))
	assert.Equal(t, filepath.Join("dir", "a.wav"), OutputName(filepath.Join("dir", "a.wav"), ""))
}

func TestSafeRename(t *testing.T) {
	tempDir := t.TempDir()

	source := filepath.Join(tempDir, "a.txt")

	require.NoError(t, os.WriteFile(source, []byte("x"), 0600))

	dest := filepath.Join(tempDir, "deep", "nested", "a.txt")

	require.NoError(t, SafeRename(source, dest))

	contents, err := os.ReadFile(filepath.Clean(dest))
	require.NoError(t, err)

	assert.Equal(t, "x", string(contents))

	assert.Error(t, SafeRename(source, dest))
}
