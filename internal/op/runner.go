package op

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// ExecRunner is the production CommandRunner backed by os/exec. Each call
// launches the command, blocks until it finishes, and captures both output
// streams in full.
type ExecRunner struct{}

// Run executes name with args. Non-zero exits are folded into the Result;
// only launch failures (executable missing, permission denied) surface as
// errors.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return Result{}, fmt.Errorf("launch %s: %w", name, err)
		}

		return Result{
			Stdout:   stdout.Bytes(),
			Stderr:   stderr.Bytes(),
			ExitCode: exitErr.ExitCode(),
		}, nil
	}

	return Result{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}, nil
}
