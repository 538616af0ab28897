package clierr

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

func Execution(msg string) *Error {
	return &Error{Kind: KindExecution, Message: msg}
}

func PermissionDenied(msg string) *Error {
	return &Error{Kind: KindPermissionDenied, Message: msg}
}

func FileNotFound(msg string) *Error {
	return &Error{Kind: KindFileNotFound, Message: msg}
}

func InvalidFileFormat(msg string) *Error {
	return &Error{Kind: KindInvalidFileFormat, Message: msg}
}

func Interrupted() *Error {
	return &Error{Kind: KindInterrupted}
}

func Terminal(err error) *Error {
	return &Error{Kind: KindTerminal, Message: err.Error(), Err: err}
}

// Internal marks a failure that indicates a bug rather than bad input.
func Internal(format string, args ...any) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...)}
}

func Other(msg string) *Error {
	return &Error{Kind: KindOther, Message: msg}
}

// FromIO maps a filesystem or I/O error onto the taxonomy:
//
//	not exist    -> FileNotFound
//	permission   -> PermissionDenied
//	EINTR        -> Interrupted
//	anything else -> IO wrapping the cause
func FromIO(err error) *Error {
	if err == nil {
		return nil
	}
	if cliErr, ok := As(err); ok {
		return cliErr
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &Error{Kind: KindFileNotFound, Message: err.Error(), Err: err}
	case errors.Is(err, fs.ErrPermission):
		return &Error{Kind: KindPermissionDenied, Message: err.Error(), Err: err}
	case errors.Is(err, syscall.EINTR):
		return &Error{Kind: KindInterrupted, Err: err}
	default:
		return &Error{Kind: KindIO, Message: err.Error(), Err: err}
	}
}
