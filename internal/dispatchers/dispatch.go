package dispatchers

import (
	"strings"

	"github.com/sm-menu/cli/internal/clierr"
)

const defaultSuggestionsCount = 3

// Resolution is a matched command together with its arguments.
type Resolution struct {
	Command Command
	Input   string
	Args    []string
}

// Tokenize splits a line on runs of whitespace. There is no quoting.
func Tokenize(line string) []string {
	return strings.Fields(line)
}

// Resolve finds the child of current named by the first token. Matching is
// case-insensitive; arguments are passed through untouched.
func Resolve(current Command, tokens []string) (Resolution, error) {
	if len(tokens) == 0 {
		return Resolution{}, clierr.EmptyInput()
	}

	name := tokens[0]
	children := current.Subcommands()
	if cmd, ok := Find(children, name); ok {
		return Resolution{Command: cmd, Input: name, Args: tokens[1:]}, nil
	}

	return Resolution{}, clierr.InvalidCommand(name, FindSimilarCommands(name, children, defaultSuggestionsCount)...)
}

// Transition describes what Apply did to the stack.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionEntered
	TransitionLeft
	// TransitionAtRoot is a GoUp that had nowhere to go.
	TransitionAtRoot
	TransitionQuit
)

func (t Transition) String() string {
	switch t {
	case TransitionEntered:
		return "entered"
	case TransitionLeft:
		return "left"
	case TransitionAtRoot:
		return "at-root"
	case TransitionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Apply carries out result, returned by cmd, against stack.
//
//	Success  -> no movement
//	Continue -> push cmd if it is a menu
//	GoUp     -> pop unless only the root is left
//	Quit     -> no movement; the caller stops its loop
func Apply(stack *Stack, cmd Command, result Result) Transition {
	switch result.Kind {
	case ResultContinue:
		if HasSubcommands(cmd) {
			stack.Push(cmd)
			return TransitionEntered
		}
		return TransitionNone
	case ResultGoUp:
		if _, ok := stack.Pop(); ok {
			return TransitionLeft
		}
		return TransitionAtRoot
	case ResultQuit:
		return TransitionQuit
	default:
		return TransitionNone
	}
}
