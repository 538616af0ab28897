package actions

import (
	"strings"
	"testing"

	"github.com/sm-menu/cli/internal/clierr"
	"github.com/sm-menu/cli/internal/dispatchers"
	"github.com/stretchr/testify/require"
)

func names(cmds []dispatchers.Command) []string {
	out := make([]string, len(cmds))
	for i, cmd := range cmds {
		out[i] = cmd.Name()
	}
	return out
}

func TestNewRoot_Layout(t *testing.T) {
	env := newTestEnv(t)
	root := NewRoot(env.deps)

	require.Equal(t, "root", root.Name())
	require.Equal(t, []string{"file", "edit", "view", "prefs", "help", "quit", "info"}, names(root.Subcommands()))

	menus := map[string][]string{
		"file":  {"load", "save", "vers", "file", "info", "exit"},
		"edit":  {"axis", "show", "info", "exit"},
		"view":  {"axis", "show", "info", "exit"},
		"prefs": {"list", "set", "reset", "info", "exit"},
	}
	for name, want := range menus {
		cmd, ok := dispatchers.Find(root.Subcommands(), name)
		require.True(t, ok, name)
		require.Equal(t, want, names(cmd.Subcommands()), name)
	}
}

func TestNewRoot_InfoHiddenOnlyAtRoot(t *testing.T) {
	env := newTestEnv(t)
	root := NewRoot(env.deps)

	rootInfo, ok := dispatchers.Find(root.Subcommands(), "i")
	require.True(t, ok)
	require.True(t, rootInfo.Hidden())

	file, _ := dispatchers.Find(root.Subcommands(), "file")
	fileInfo, ok := dispatchers.Find(file.Subcommands(), "info")
	require.True(t, ok)
	require.False(t, fileInfo.Hidden())
}

// Names and aliases must be unambiguous within each menu, down to a few
// levels of the recursive file menu.
func TestNewRoot_UniqueNamesPerMenu(t *testing.T) {
	env := newTestEnv(t)

	var walk func(cmd dispatchers.Command, path string, depth int)
	walk = func(cmd dispatchers.Command, path string, depth int) {
		if depth > 3 {
			return
		}
		seen := map[string]string{}
		for _, child := range cmd.Subcommands() {
			for _, key := range append([]string{child.Name()}, child.Aliases()...) {
				key = strings.ToLower(key)
				if prev, dup := seen[key]; dup {
					t.Errorf("%s: %q used by both %s and %s", path, key, prev, child.Name())
				}
				seen[key] = child.Name()
			}
			walk(child, path+" > "+child.Name(), depth+1)
		}
	}
	walk(NewRoot(env.deps), "root", 0)
}

func TestNewRoot_MenusRejectArguments(t *testing.T) {
	env := newTestEnv(t)
	for _, cmd := range NewRoot(env.deps).Subcommands() {
		if !dispatchers.HasSubcommands(cmd) {
			continue
		}
		result, err := cmd.Execute(nil)
		require.NoError(t, err, cmd.Name())
		require.Equal(t, dispatchers.ResultContinue, result.Kind, cmd.Name())

		_, err = cmd.Execute([]string{"extra"})
		require.True(t, clierr.IsKind(err, clierr.KindTooManyArguments), cmd.Name())
	}
}

func TestNewRoot_NavigateNestedFileMenu(t *testing.T) {
	env := newTestEnv(t)
	stack := dispatchers.NewStack(NewRoot(env.deps))

	step := func(line string) dispatchers.Transition {
		t.Helper()
		res, err := dispatchers.Resolve(stack.Top(), dispatchers.Tokenize(line))
		require.NoError(t, err)
		result, err := res.Command.Execute(res.Args)
		require.NoError(t, err)
		return dispatchers.Apply(stack, res.Command, result)
	}

	require.Equal(t, dispatchers.TransitionEntered, step("f"))
	require.Equal(t, dispatchers.TransitionEntered, step("file"))
	require.Equal(t, []string{"file", "file"}, stack.Names())
	require.Equal(t, dispatchers.TransitionNone, step("vers"))
	require.Equal(t, dispatchers.TransitionLeft, step("e"))
	require.Equal(t, dispatchers.TransitionLeft, step("exit"))
	require.True(t, stack.Len() == 1)
	require.Equal(t, dispatchers.TransitionQuit, step("q"))
}
