package clierr

import (
	"errors"
	"fmt"
)

// Kind represents the type of a CLI error.
type Kind int

const (
	KindOther Kind = iota
	KindInvalidCommand
	KindInvalidInput
	KindIO
	KindEmptyInput
	KindTooManyArguments
	KindTooFewArguments
	KindExecution
	KindPermissionDenied
	KindFileNotFound
	KindInvalidFileFormat
	KindInterrupted
	KindTerminal
	KindInternal
)

// Severity classifies how loudly an error is presented. It never changes
// control flow: every severity returns the user to the prompt.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
	SeverityCritical
)

// Severity classes:
//
//	Warning: mistakes the user can fix by retyping
//	  - Invalid command, invalid input, empty input
//	  - Too many / too few arguments
//
//	Error: an operation was attempted and failed
//	  - Execution, file, permission, terminal and I/O failures
//	  - Interruption
//
//	Critical: a bug in the program
//	  - Internal errors
var severities = map[Kind]Severity{
	KindInvalidCommand:    SeverityWarning,
	KindInvalidInput:      SeverityWarning,
	KindEmptyInput:        SeverityWarning,
	KindTooManyArguments:  SeverityWarning,
	KindTooFewArguments:   SeverityWarning,
	KindExecution:         SeverityError,
	KindFileNotFound:      SeverityError,
	KindPermissionDenied:  SeverityError,
	KindInvalidFileFormat: SeverityError,
	KindInterrupted:       SeverityError,
	KindIO:                SeverityError,
	KindTerminal:          SeverityError,
	KindOther:             SeverityError,
	KindInternal:          SeverityCritical,
}

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "error"
	}
}

// Icon returns the glyph shown in front of an error message. When unicode is
// false an ASCII fallback is returned.
func (s Severity) Icon(unicode bool) string {
	switch s {
	case SeverityWarning:
		if unicode {
			return "⚠️"
		}
		return "!"
	case SeverityCritical:
		if unicode {
			return "💥"
		}
		return "!!"
	default:
		if unicode {
			return "❌"
		}
		return "X"
	}
}

// Error is the single error type returned by commands and validators.
type Error struct {
	Kind        Kind
	Message     string
	Expected    int
	Found       int
	Suggestions []string
	Err         error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidCommand:
		return fmt.Sprintf("Invalid command: '%s'", e.Message)
	case KindInvalidInput:
		return "Invalid input: " + e.Message
	case KindIO:
		return "IO error: " + e.Message
	case KindEmptyInput:
		return "Empty input provided"
	case KindTooManyArguments:
		return fmt.Sprintf("Too many arguments: expected %d, found %d", e.Expected, e.Found)
	case KindTooFewArguments:
		return fmt.Sprintf("Too few arguments: expected %d, found %d", e.Expected, e.Found)
	case KindExecution:
		return "Command execution failed: " + e.Message
	case KindPermissionDenied:
		return "Permission denied: " + e.Message
	case KindFileNotFound:
		return "File not found: " + e.Message
	case KindInvalidFileFormat:
		return "Invalid file format: " + e.Message
	case KindInterrupted:
		return "Operation interrupted by user"
	case KindTerminal:
		return "Terminal error: " + e.Message
	case KindInternal:
		return fmt.Sprintf("Internal error: %s (please report this bug)", e.Message)
	default:
		return "Error: " + e.Message
	}
}

// Unwrap exposes the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Severity returns the display severity derived from Kind.
func (e *Error) Severity() Severity {
	if s, ok := severities[e.Kind]; ok {
		return s
	}
	return SeverityError
}

// As extracts a *Error from err's chain.
func As(err error) (*Error, bool) {
	var cliErr *Error
	if errors.As(err, &cliErr) {
		return cliErr, true
	}
	return nil, false
}

// IsKind reports whether err carries a *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	cliErr, ok := As(err)
	return ok && cliErr.Kind == kind
}

// Wrap returns err as a *Error. Foreign errors become KindOther with the
// original kept as cause.
func Wrap(err error) *Error {
	if err == nil {
		return nil
	}
	if cliErr, ok := As(err); ok {
		return cliErr
	}
	return &Error{Kind: KindOther, Message: err.Error(), Err: err}
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
