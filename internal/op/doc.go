// Package op adapts the external 1Password CLI ("op") behind a typed
// client. All six invocations the note-share pipeline performs live here;
// callers never build op argument lists themselves.
//
// Command execution goes through the [CommandRunner] interface so tests can
// substitute a fake. A non-zero exit is reported as a [*CLIError] carrying
// whatever the CLI printed to stderr; a failure to launch the executable at
// all is returned as a plain wrapped error, which callers treat as an
// unrecoverable environment problem.
package op
