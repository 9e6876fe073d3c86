package main

import (
	"errors"
	"fmt"
)

// ExitCoder is implemented by errors that carry their own exit status.
type ExitCoder interface {
	ExitCode() int
}

// PortsFailedError is returned by validate when at least one port failed.
type PortsFailedError struct {
	Failed int
	Total  int
}

func (e *PortsFailedError) Error() string {
	return fmt.Sprintf("%d of %d ports failed", e.Failed, e.Total)
}

// ExitCode returns 1: the bundles loaded but did not pass.
func (e *PortsFailedError) ExitCode() int { return 1 }

// exitCodeFromError maps an error to the process exit status. Errors that
// do not carry their own status are usage or load problems.
func exitCodeFromError(err error) int {
	if err == nil {
		return 0
	}
	var coder ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 2
}
