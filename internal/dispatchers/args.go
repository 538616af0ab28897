package dispatchers

import (
	"strings"

	"github.com/sm-menu/cli/internal/clierr"
)

// ExactArgs requires exactly k arguments.
func ExactArgs(args []string, k int) error {
	switch n := len(args); {
	case n < k:
		return clierr.TooFewArguments(k, n)
	case n > k:
		return clierr.TooManyArguments(k, n)
	}
	return nil
}

// NoArgs is ExactArgs(args, 0).
func NoArgs(args []string) error {
	return ExactArgs(args, 0)
}

// OptionalArg accepts zero or one argument and returns it. ok is false when
// none was given.
func OptionalArg(args []string) (arg string, ok bool, err error) {
	switch len(args) {
	case 0:
		return "", false, nil
	case 1:
		return args[0], true, nil
	default:
		return "", false, clierr.TooManyArguments(1, len(args))
	}
}

// ArgRange requires between lo and hi arguments, inclusive.
func ArgRange(args []string, lo, hi int) error {
	switch n := len(args); {
	case n < lo:
		return clierr.TooFewArguments(lo, n)
	case n > hi:
		return clierr.TooManyArguments(hi, n)
	}
	return nil
}

// NotBlank rejects values made only of whitespace.
func NotBlank(value, what string) error {
	if strings.TrimSpace(value) == "" {
		return clierr.InvalidInput(what + " cannot be empty")
	}
	return nil
}
