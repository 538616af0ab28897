package session

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sm-menu/cli/internal/dispatchers"
	"github.com/stretchr/testify/require"
)

type stubCommand struct {
	dispatchers.Base
}

func (stubCommand) Execute([]string) (dispatchers.Result, error) {
	return dispatchers.Continue(), nil
}

func stub(name string, aliases ...string) dispatchers.Command {
	return stubCommand{Base: dispatchers.NewBase(dispatchers.Spec{Name: name, Aliases: aliases})}
}

func plainContext() *Context {
	prefs := DefaultPreferences()
	prefs.ColoredPrompt = false
	return NewWithPreferences("sm-menu", prefs)
}

func TestContext_PathMirrorsPushPop(t *testing.T) {
	c := plainContext()
	require.True(t, c.IsRoot())
	require.True(t, c.Running())

	c.PushContext("file")
	c.PushContext("file")
	require.Equal(t, 2, c.Depth())
	require.Equal(t, []string{"file", "file"}, c.CurrentPath())

	name, ok := c.PopContext()
	require.True(t, ok)
	require.Equal(t, "file", name)

	_, ok = c.PopContext()
	require.True(t, ok)
	_, ok = c.PopContext()
	require.False(t, ok)
	require.True(t, c.IsRoot())
}

func TestContext_CurrentPathIsACopy(t *testing.T) {
	c := plainContext()
	c.PushContext("edit")
	p := c.CurrentPath()
	p[0] = "mutated"
	require.Equal(t, []string{"edit"}, c.CurrentPath())
}

func TestContext_Prompt(t *testing.T) {
	c := plainContext()
	require.Equal(t, "sm-menu > ", c.Prompt())

	c.PushContext("file")
	require.Equal(t, "sm-menu ~ file > ", c.Prompt())

	c.PushContext("load")
	require.Equal(t, "sm-menu ~ file > load > ", c.Prompt())
}

func TestContext_ColoredPrompt(t *testing.T) {
	c := New("sm-menu")
	require.Equal(t, "\x1b[38;2;0;215;135msm-menu\x1b[0m > ", c.Prompt())

	c.PushContext("edit")
	require.Equal(t, "\x1b[38;2;0;215;135msm-menu\x1b[0m ~ edit > ", c.Prompt())
}

func TestContext_Quit(t *testing.T) {
	c := plainContext()
	c.Quit()
	require.False(t, c.Running())
}

func TestContext_Reset(t *testing.T) {
	c := plainContext()
	c.PushContext("file")
	c.AddToHistory("file")
	c.AddToHistory("load a.txt")
	c.Quit()
	_, _ = c.PreviousCommand()
	_, _ = c.PreviousCommand()

	c.Reset()
	require.True(t, c.IsRoot())
	require.True(t, c.Running())
	require.Equal(t, []string{"file", "load a.txt"}, c.History())

	prev, ok := c.PreviousCommand()
	require.True(t, ok)
	require.Equal(t, "load a.txt", prev)
}

func TestContext_Completions(t *testing.T) {
	c := plainContext()
	c.AddToHistory("file")
	c.AddToHistory("load readme.txt")
	c.AddToHistory("help")

	cmds := []dispatchers.Command{
		stub("load", "l"),
		stub("save", "s"),
		stub("vers", "v"),
		stub("file", "f"),
		stub("info", "i"),
		stub("exit", "e"),
	}

	tests := []struct {
		prefix string
		want   []string
	}{
		{"l", []string{"l", "load", "load readme.txt"}},
		{"f", []string{"f", "file"}},
		{"h", []string{"help"}},
		{"zz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, c.Completions(tt.prefix, cmds)); diff != "" {
				t.Errorf("Completions(%q) mismatch (-want +got):\n%s", tt.prefix, diff)
			}
		})
	}

	all := c.Completions("", cmds)
	require.IsNonDecreasing(t, all)
	require.Len(t, all, 14)
}

func TestContext_PreferencesMut(t *testing.T) {
	c := New("sm-menu")
	require.NoError(t, c.PreferencesMut().Set("colored_prompt", "false"))
	require.Equal(t, "sm-menu > ", c.Prompt())

	c.SetPreferences(DefaultPreferences())
	require.True(t, c.Preferences().ColoredPrompt)
}

func ExampleContext_Prompt() {
	prefs := DefaultPreferences()
	prefs.ColoredPrompt = false
	c := NewWithPreferences("sm-menu", prefs)
	c.PushContext("file")
	fmt.Println(c.Prompt())
	// Output: sm-menu ~ file >
}
