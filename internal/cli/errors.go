package cli

import "errors"

// ErrNoSolution is returned when a board has no valid solution; the
// caller maps it to a non-zero process exit code rather than treating
// it as an internal failure.
var ErrNoSolution = errors.New("cli: board has no solution")
