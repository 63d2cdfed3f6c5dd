package cli

import (
	"errors"

	"github.com/yaklabco/docforge/pkg/builder"
	"github.com/yaklabco/docforge/pkg/markdown"
)

// Exit codes for docforge.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitParseError indicates the input markdown could not be parsed.
	ExitParseError = 1

	// ExitCompileError indicates the compiler hit an internal invariant violation.
	ExitCompileError = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates style configuration errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromError maps a command error to its exit code.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var parseErr *markdown.ParseError
	if errors.As(err, &parseErr) {
		return ExitParseError
	}

	var compileErr *builder.CompileError
	if errors.As(err, &compileErr) {
		return ExitCompileError
	}

	if errors.Is(err, errStyleConfig) {
		return ExitConfigError
	}
	if errors.Is(err, errIO) {
		return ExitIOError
	}

	return ExitInternalError
}

// Sentinel wrappers used by commands to classify failures for exit codes.
var (
	errStyleConfig = errors.New("style config error")
	errIO          = errors.New("io error")
)
