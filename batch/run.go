package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// Run executes the training command directly, bypassing the scheduler.  The
// child gets the merged environment (CUDA_VISIBLE_DEVICES pinned) and its
// stdout/stderr are wired straight through.
func Run(ctx context.Context, spec JobSpec, stdout, stderr io.Writer) error {
	if err := spec.Validate(); err != nil {
		return fmt.Errorf("batch: refusing to run invalid job: %w", err)
	}

	argv := spec.Argv()
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = spec.Env()
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// the child's own failure; its exit status must surface unmodified.
			return fmt.Errorf("batch: %s exited with status %d: %w", spec.Script, exitErr.ExitCode(), err)
		}
		return fmt.Errorf("batch: couldn't start %s: %w", argv[0], err)
	}

	return nil
}

// ExitCode digs the child's exit status out of an error returned by Run.
// Returns -1 when the error wasn't a child failure.
func ExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
