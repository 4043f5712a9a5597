package op

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotSignedIn indicates that `op account list` reported no authenticated
// session.
var ErrNotSignedIn = errors.New("op cli is not signed in")

// CLIError describes a non-zero exit from the op binary, carrying whatever
// the CLI printed to stderr so it can be relayed to the user verbatim.
type CLIError struct {
	// Args is the full op argument list of the failed invocation.
	Args []string

	// ExitCode is the non-zero exit status.
	ExitCode int

	// Stderr is the trimmed standard-error text of the invocation.
	Stderr string
}

func (e *CLIError) Error() string {
	return fmt.Sprintf("op %s exited with code %d: %s",
		strings.Join(e.Args, " "), e.ExitCode, e.Stderr)
}
