// Package fileops implements batch file processing on top of the standard
// directory layout: each input file is handed to a callback and then moved
// to the processed/ or failed/ directory depending on the outcome.
package fileops

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/c3nk/cli-standard-kit/directories"
	"github.com/c3nk/cli-standard-kit/terminal"
)

type (
	// ProcessFunc handles one file and returns a human-readable message.
	// A non-nil error marks the file as failed.
	ProcessFunc func(path string) (message string, err error)

	BatchStats struct {
		Processed int
		Failed    int
		Total     int
	}

	BatchOptions struct {
		// Progress defaults to os.Stdout.
		Progress    io.Writer
		DryRun      bool
		StopOnError bool
	}
)

// ProcessBatch runs fn over files with a progress line, moving each file
// into layout.Processed or layout.Failed afterwards. It never returns an
// error: per-file failures are counted and logged.
func ProcessBatch(files []string, fn ProcessFunc, layout directories.Layout, logger *slog.Logger, opts BatchOptions) BatchStats {
	stats := BatchStats{Total: len(files)}

	if len(files) == 0 {
		return stats
	}

	if opts.Progress == nil {
		opts.Progress = os.Stdout
	}

	for idx, path := range files {
		percentage := float64(idx+1) / float64(stats.Total) * 100

		fmt.Fprintf(opts.Progress, "\r📊 Processing: %d/%d (%.1f%%)", idx+1, stats.Total, percentage)

		if opts.DryRun {
			logger.Info(terminal.DryRun("would process " + filepath.Base(path)))

			stats.Processed += 1

			continue
		}

		message, err := fn(path)
		if err != nil {
			stats.Failed += 1

			if err1 := SafeRename(path, filepath.Join(layout.Failed, filepath.Base(path))); err1 != nil {
				logger.Error("failed to move file to failed directory", "path", path, "error", err1)
			}

			logger.Error(fmt.Sprintf("❌ %s: %s", filepath.Base(path), err))

			if opts.StopOnError {
				break
			}

			continue
		}

		stats.Processed += 1

		if err = SafeRename(path, filepath.Join(layout.Processed, filepath.Base(path))); err != nil {
			logger.Error("failed to move file to processed directory", "path", path, "error", err)
		}

		logger.Info(fmt.Sprintf("✅ %s: %s", filepath.Base(path), message))
	}

	fmt.Fprintln(opts.Progress)

	return stats
}

// ListRecursive returns all files under root, sorted. When exts is not
// empty, only files whose extension matches (case-insensitively) are kept.
func ListRecursive(root string, exts []string) ([]string, error) {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	lowered := make([]string, len(exts))

	for i := range exts {
		lowered[i] = strings.ToLower(exts[i])
	}

	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to access path at %q: %w", path, err)
		}

		if d.IsDir() {
			return nil
		}

		if len(lowered) > 0 {
			ext := strings.ToLower(filepath.Ext(path))

			for _, want := range lowered {
				if ext == want {
					files = append(files, path)

					break
				}
			}

			return nil
		}

		files = append(files, path)

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)

	return files, nil
}

// OutputName derives an output file name from input, inserting suffix
// before the extension: "a.wav" + "norm" -> "a_norm.wav".
func OutputName(input, suffix string) string {
	ext := filepath.Ext(input)
	stem := strings.TrimSuffix(filepath.Base(input), ext)

	if suffix != "" {
		stem += "_" + suffix
	}

	return filepath.Join(filepath.Dir(input), stem+ext)
}

// SafeRename moves source to dest, creating dest's parent directories first.
func SafeRename(source, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0750); err != nil {
		return fmt.Errorf("failed to create parent directory of %q: %w", dest, err)
	}

	if err := os.Rename(source, dest); err != nil {
		return fmt.Errorf("failed to move %q to %q: %w", source, dest, err)
	}

	return nil
}
