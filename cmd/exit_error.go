package cmd

import (
	"errors"
	"fmt"
	"io"
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
// A nil Err means the failure has already been reported to the operator.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}

	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// reportedFailure turns err into a silent exit 1 when it matches one of the
// batch failures the UI has already printed.
func reportedFailure(err error, reported ...error) error {
	for _, target := range reported {
		if errors.Is(err, target) {
			return &ExitError{Code: 1}
		}
	}

	return err
}

// exitCode prints err unless it was already reported and returns the process exit code.
func exitCode(w io.Writer, err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			_, _ = fmt.Fprintln(w, "Error:", exitErr.Err)
		}

		return exitErr.Code
	}

	_, _ = fmt.Fprintln(w, "Error:", err)

	return 1
}
