package builder

import "fmt"

// CompileError reports an internal invariant violation during a compile:
// a negative or inverted range, an invalid heading level or list depth, or
// a table with no rows or columns. A compile that signals a CompileError
// produced no batch; partial batches are never returned.
type CompileError struct {
	// Msg describes the violated invariant.
	Msg string
}

func (e *CompileError) Error() string {
	return "compile: " + e.Msg
}

func compileErrorf(format string, args ...any) error {
	return &CompileError{Msg: fmt.Sprintf(format, args...)}
}
