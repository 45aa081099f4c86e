// Package options defines the standard CLI option set shared by kit tools.
// Embed Standard in a kong grammar to get the common flags plus validation.
package options

import (
	"errors"
	"fmt"
	"os"
)

type (
	Standard struct {
		Paths   []string `arg:"" name:"paths" help:"Input paths (files or directories)."`
		Output  string   `name:"output" short:"o" default:"outputs" help:"Output directory (default: outputs)."`
		LogFile string   `name:"log-file" help:"Save detailed logs to file."`
		Verbose bool     `name:"verbose" short:"v" help:"Enable verbose output (DEBUG log level)."`
		Quiet   bool     `name:"quiet" short:"q" help:"Suppress output except errors."`
		DryRun  bool     `name:"dry-run" short:"n" help:"Show what would be done without making changes."`
		JSON    bool     `name:"json" help:"Output in JSON format."`
	}
)

var ErrInvalidInput = errors.New("invalid CLI input")

// Validate checks the option set. Non-nil returned error wraps
// [ErrInvalidInput] unless the failure comes from the filesystem.
func (s *Standard) Validate() error {
	if s.Verbose && s.Quiet {
		return fmt.Errorf("%w: cannot use both --verbose and --quiet", ErrInvalidInput)
	}

	for _, path := range s.Paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("%w: path does not exist: %s", ErrInvalidInput, path)
		} else if err != nil {
			return fmt.Errorf("failed to stat input path %q: %w", path, err)
		}
	}

	if info, err := os.Stat(s.Output); err == nil && !info.IsDir() {
		return fmt.Errorf("%w: output path is not a directory: %s", ErrInvalidInput, s.Output)
	}

	return nil
}

// AfterApply lets kong run the validation right after parsing.
func (s *Standard) AfterApply() error {
	return s.Validate()
}
