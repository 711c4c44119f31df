package minizinc

import (
	"errors"
	"fmt"
)

// ErrNoExecutable reports that no minizinc executable path was configured
// before evaluation was requested.
var ErrNoExecutable = errors.New("minizinc executable path is not configured")

// ErrInconclusive reports an output artifact that is neither a solution
// document nor an unsatisfiability line, so no verdict can be derived.
var ErrInconclusive = errors.New("solver output is neither a solution document nor an UNSAT report")

// SolverError reports a minizinc process that terminated abnormally. It is
// distinct from an unsatisfiable verdict.
type SolverError struct {
	ExitCode int
	Stderr   string
}

func (err *SolverError) Error() string {
	return fmt.Sprintf("minizinc exited with code %v: %v", err.ExitCode, err.Stderr)
}
