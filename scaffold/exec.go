package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

type runnerFunc func(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error

// Replaced in tests.
var runCommand runnerFunc = execRun

func execRun(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)

	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("command %q failed: %w", name, err)
	}

	return nil
}

// ExitCode maps an error from a failed run to a process exit code,
// propagating the exit status of the failing external command when there is
// one.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError

	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}

	return 1
}
