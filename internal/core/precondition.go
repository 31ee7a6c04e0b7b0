package core

import "fmt"

// PreconditionError is the panic value used when a caller violates the
// contract of a kernel operation. It is never returned as an error: a
// precondition failure is a bug in the caller, not a data-dependent outcome.
type PreconditionError struct {
	Op     string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("precondition failed in %s: %s", e.Op, e.Reason)
}

// Require panics with a *PreconditionError when ok is false.
func Require(ok bool, op, reason string) {
	if !ok {
		panic(&PreconditionError{Op: op, Reason: reason})
	}
}
