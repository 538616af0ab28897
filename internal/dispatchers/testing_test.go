package dispatchers

// fakeCommand is a configurable Command for tests.
type fakeCommand struct {
	Base
	result   Result
	err      error
	children func() []Command
	calls    [][]string
}

func newFake(name string, aliases ...string) *fakeCommand {
	return &fakeCommand{
		Base:   NewBase(Spec{Name: name, Aliases: aliases, Description: name + " command"}),
		result: Continue(),
	}
}

func (f *fakeCommand) Execute(args []string) (Result, error) {
	f.calls = append(f.calls, args)
	return f.result, f.err
}

func (f *fakeCommand) Subcommands() []Command {
	if f.children == nil {
		return nil
	}
	return f.children()
}

func (f *fakeCommand) withChildren(children ...Command) *fakeCommand {
	f.children = func() []Command { return children }
	return f
}

func (f *fakeCommand) hidden() *fakeCommand {
	f.spec.Hidden = true
	return f
}

// testTree builds root -> {file -> {load, exit}, quit, info(hidden)}.
func testTree() *fakeCommand {
	load := newFake("load", "l")
	exit := newFake("exit", "e")
	exit.result = GoUp()
	file := newFake("file", "f").withChildren(load, exit)
	quit := newFake("quit", "q")
	quit.result = Quit()
	info := newFake("info", "i").hidden()
	info.result = Success("")
	return newFake("root").withChildren(file, quit, info)
}
