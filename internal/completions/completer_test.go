package completions

import (
	"testing"

	"github.com/sm-menu/cli/internal/dispatchers"
	"github.com/sm-menu/cli/internal/session"
	"github.com/stretchr/testify/require"
)

type stubCommand struct {
	dispatchers.Base
	children []dispatchers.Command
}

func (stubCommand) Execute([]string) (dispatchers.Result, error) {
	return dispatchers.Continue(), nil
}

func (c stubCommand) Subcommands() []dispatchers.Command {
	return c.children
}

func stub(name string, hidden bool, aliases ...string) stubCommand {
	return stubCommand{Base: dispatchers.NewBase(dispatchers.Spec{Name: name, Aliases: aliases, Hidden: hidden})}
}

func testStack() *dispatchers.Stack {
	file := stub("file", false, "f")
	file.children = []dispatchers.Command{stub("load", false, "l"), stub("exit", false, "e")}

	root := stub("root", false)
	root.children = []dispatchers.Command{file, stub("quit", false, "q"), stub("info", true, "i")}
	return dispatchers.NewStack(root)
}

func TestNewLineCompleter(t *testing.T) {
	tests := []struct {
		name    string
		history []string
		line    string
		want    []string
	}{
		{name: "empty line lists visible names and aliases", line: "", want: []string{"f", "file", "q", "quit"}},
		{name: "prefix", line: "fi", want: []string{"file"}},
		{name: "hidden commands are not offered", line: "i", want: []string{}},
		{name: "history lines", history: []string{"file", "quit now"}, line: "qu", want: []string{"quit", "quit now"}},
		{name: "leading whitespace kept", line: "  q", want: []string{"  q", "  quit"}},
		{name: "arguments present", line: "file x", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := session.New("sm-menu")
			for _, h := range tt.history {
				ctx.AddToHistory(h)
			}
			complete := NewLineCompleter(ctx, testStack())
			require.Equal(t, tt.want, complete(tt.line))
		})
	}
}

func TestNewLineCompleter_FollowsActiveMenu(t *testing.T) {
	stack := testStack()
	complete := NewLineCompleter(session.New("sm-menu"), stack)

	file, ok := dispatchers.Find(stack.Top().Subcommands(), "file")
	require.True(t, ok)
	stack.Push(file)

	require.Equal(t, []string{"l", "load"}, complete("l"))
}

func TestCompleter_Do(t *testing.T) {
	complete := NewLineCompleter(session.New("sm-menu"), testStack())

	tests := []struct {
		name   string
		line   string
		pos    int
		want   []string
		length int
	}{
		{name: "suffix after prefix", line: "fi", pos: 2, want: []string{"le"}, length: 2},
		{name: "leading whitespace", line: "  q", pos: 3, want: []string{"", "uit"}, length: 1},
		{name: "cursor inside word", line: "fxyz", pos: 1, want: []string{"", "ile"}, length: 1},
		{name: "arguments present", line: "file x", pos: 6, want: nil, length: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suffixes, length := complete.Do([]rune(tt.line), tt.pos)

			var got []string
			for _, s := range suffixes {
				got = append(got, string(s))
			}
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.length, length)
		})
	}
}
