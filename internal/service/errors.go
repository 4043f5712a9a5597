package service

import "errors"

// errEarlyExit marks an expected failure branch that has already been
// reported to the user on the diagnostic stream. Run swallows it so the
// process exits cleanly; every other error is an unrecoverable environment
// or contract violation and propagates.
var errEarlyExit = errors.New("early exit")
