package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/refdeck/pkg/catalog"
)

// Exit codes for refdeck.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitFailure indicates check issues were found, or a general failure.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

var (
	// ErrIssuesFound is returned when check finds diagnostics that fail the run.
	ErrIssuesFound = errors.New("check issues found")

	// ErrConfig marks configuration loading failures.
	ErrConfig = errors.New("failed to load configuration")

	// ErrUsage marks invalid flag values or arguments.
	ErrUsage = errors.New("invalid usage")

	// ErrInternal marks failures that indicate a bug rather than bad input.
	ErrInternal = errors.New("internal error")
)

// ExitCode maps a command error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrIssuesFound):
		return ExitFailure
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, ErrUsage), errors.Is(err, catalog.ErrNotFound):
		return ExitInvalidUsage
	case errors.Is(err, ErrInternal):
		return ExitInternalError
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return ExitIOError
	default:
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return ExitIOError
		}
		return ExitFailure
	}
}
