// Package completions offers tab completion for the interactive prompt.
package completions

import (
	"strings"
	"unicode/utf8"

	"github.com/sm-menu/cli/internal/dispatchers"
	"github.com/sm-menu/cli/internal/session"
)

// Completer returns candidate replacements for the whole input line.
type Completer func(line string) []string

// Do adapts c to readline.AutoCompleter: it completes the text left of the
// cursor and returns the missing suffix of each candidate, plus the rune
// length of the word being completed.
func (c Completer) Do(line []rune, pos int) ([][]rune, int) {
	head := string(line[:pos])
	word := strings.TrimLeft(head, " \t")

	var suffixes [][]rune
	for _, candidate := range c(head) {
		if strings.HasPrefix(candidate, head) {
			suffixes = append(suffixes, []rune(candidate[len(head):]))
		}
	}
	return suffixes, utf8.RuneCountInString(word)
}

// NewLineCompleter completes the first word of a line against the visible
// commands of the active menu and the session history. Lines that already
// carry arguments are left alone.
func NewLineCompleter(ctx *session.Context, stack *dispatchers.Stack) Completer {
	return func(line string) []string {
		trimmed := strings.TrimLeft(line, " \t")
		if strings.ContainsAny(trimmed, " \t") {
			return nil
		}

		candidates := dispatchers.Visible(stack.Top().Subcommands())
		lead := line[:len(line)-len(trimmed)]

		matches := ctx.Completions(trimmed, candidates)
		if lead == "" {
			return matches
		}
		for i, m := range matches {
			matches[i] = lead + m
		}
		return matches
	}
}
