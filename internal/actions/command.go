package actions

import "github.com/sm-menu/cli/internal/dispatchers"

// menu is a command whose only job is to be entered.
type menu struct {
	dispatchers.Base
	children func() []dispatchers.Command
}

func (m menu) Execute(args []string) (dispatchers.Result, error) {
	if err := dispatchers.NoArgs(args); err != nil {
		return dispatchers.Result{}, err
	}
	return dispatchers.Continue(), nil
}

func (m menu) Subcommands() []dispatchers.Command {
	return m.children()
}

// action is a leaf command backed by a function.
type action struct {
	dispatchers.Base
	run func(args []string) (dispatchers.Result, error)
}

func (a action) Execute(args []string) (dispatchers.Result, error) {
	return a.run(args)
}

func newAction(spec dispatchers.Spec, run func(args []string) (dispatchers.Result, error)) dispatchers.Command {
	return action{Base: dispatchers.NewBase(spec), run: run}
}

func newMenu(spec dispatchers.Spec, children func() []dispatchers.Command) dispatchers.Command {
	return menu{Base: dispatchers.NewBase(spec), children: children}
}

var (
	_ dispatchers.Command = menu{}
	_ dispatchers.Command = action{}
)
