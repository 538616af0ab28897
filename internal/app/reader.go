package app

import (
	"errors"
	"io"

	"github.com/chzyer/readline"
	"github.com/sm-menu/cli/internal/clierr"
	"github.com/sm-menu/cli/internal/completions"
	"github.com/sm-menu/cli/internal/domain"
	"github.com/sm-menu/cli/internal/session"
)

// TerminalReader reads lines with editing, arrow-key history and tab
// completion. Prompts may carry ANSI colour sequences.
type TerminalReader struct {
	rl *readline.Instance
}

// NewTerminalReader reads from the process terminal.
func NewTerminalReader(complete completions.Completer) (*TerminalReader, error) {
	return newTerminalReader(&readline.Config{}, complete)
}

func newTerminalReader(cfg *readline.Config, complete completions.Completer) (*TerminalReader, error) {
	cfg.InterruptPrompt = "^C"
	cfg.HistoryLimit = session.MaxHistorySize
	cfg.DisableAutoSaveHistory = true
	if complete != nil {
		cfg.AutoComplete = complete
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, clierr.Terminal(err)
	}
	return &TerminalReader{rl: rl}, nil
}

// ReadLine returns io.EOF on Ctrl-D or end of input and an interrupted
// error on Ctrl-C. Anything else is a terminal error.
func (r *TerminalReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	switch {
	case err == nil:
		return line, nil
	case errors.Is(err, readline.ErrInterrupt):
		return "", clierr.Interrupted()
	case errors.Is(err, io.EOF):
		return "", io.EOF
	default:
		return "", clierr.Terminal(err)
	}
}

func (r *TerminalReader) AppendHistory(line string) {
	_ = r.rl.SaveHistory(line)
}

// Close restores the terminal mode.
func (r *TerminalReader) Close() error {
	return r.rl.Close()
}

var _ domain.LineReader = (*TerminalReader)(nil)
