package domain

import (
	"io"
)

// ConfigProvider defines read access to configuration.
type ConfigProvider interface {
	// Get returns the value for a key, falling back to its default.
	Get(key string) (string, bool)

	// GetAll returns all configuration values merged with defaults.
	GetAll() map[string]string
}

// Logger defines logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// Close closes the logger.
	Close() error
}

// OutputWriter defines output operations.
type OutputWriter interface {
	io.Writer

	// Printf formats and prints to the output.
	Printf(format string, args ...any) (int, error)

	// Println prints a line to the output.
	Println(args ...any) (int, error)
}

// Styler defines text styling operations.
type Styler interface {
	// Enabled returns true if styling is enabled.
	Enabled() bool

	// Success styles text as success.
	Success(text string) string

	// Warning styles text as warning.
	Warning(text string) string

	// Error styles text as error.
	Error(text string) string

	// Critical styles text for failures that indicate a bug.
	Critical(text string) string

	// Info styles text as info.
	Info(text string) string

	// Muted styles text as muted.
	Muted(text string) string

	// Header styles text as header.
	Header(text string) string

	// Command styles a command name.
	Command(text string) string

	// Emphasis styles text in bold.
	Emphasis(text string) string
}

// LineReader reads one line of interactive input at a time.
type LineReader interface {
	// ReadLine shows prompt and blocks until a line is entered.
	// It returns io.EOF at end of input and an interrupted clierr.Error
	// when the user aborts the line.
	ReadLine(prompt string) (string, error)

	// AppendHistory makes line reachable with the arrow keys.
	AppendHistory(line string)

	// Close restores the terminal.
	Close() error
}
