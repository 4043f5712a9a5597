package op

import "context"

// Result holds the outcome of one finished external command.
type Result struct {
	// Stdout is the captured standard output of the command.
	Stdout []byte

	// Stderr is the captured standard error of the command.
	Stderr []byte

	// ExitCode is the command's exit status. Zero means success.
	ExitCode int
}

// CommandRunner launches a single external command and waits for it to
// finish. A command that started but exited non-zero is not an error:
// implementations return a Result with the exit code set. The returned
// error is reserved for failures to launch the command at all.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}
