package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInputNotFound   = errors.New("input not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidEncoding = errors.New("invalid encoding")
	ErrLineTooLong     = errors.New("line too long")
	ErrInternal        = errors.New("internal error")
)

// Process exit codes returned by the wordindex command.
const (
	ExitOK    = 0
	ExitInput = 1
	ExitUsage = 2
)

type AppError struct {
	Err      error
	Message  string
	ExitCode int
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(sentinel error, exitCode int, message string) *AppError {
	return &AppError{
		Err:      sentinel,
		Message:  message,
		ExitCode: exitCode,
	}
}

func Newf(sentinel error, exitCode int, format string, args ...any) *AppError {
	return &AppError{
		Err:      sentinel,
		Message:  fmt.Sprintf(format, args...),
		ExitCode: exitCode,
	}
}

// InputNotFound wraps a failed open or read of path.
func InputNotFound(path string, cause error) *AppError {
	return Newf(ErrInputNotFound, ExitInput, "%s: %v", path, cause)
}

// InvalidArgument reports a malformed invocation or configuration value.
func InvalidArgument(format string, args ...any) *AppError {
	return Newf(ErrInvalidArgument, ExitUsage, format, args...)
}

func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.ExitCode
	}

	if errors.Is(err, ErrInvalidArgument) {
		return ExitUsage
	}
	return ExitInput
}
