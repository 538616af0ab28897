package app

import (
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"strings"

	"github.com/sm-menu/cli/internal/clierr"
	"github.com/sm-menu/cli/internal/dispatchers"
	"github.com/sm-menu/cli/internal/session"
)

// maxReadFailures is how many consecutive failed reads the loop tolerates.
const maxReadFailures = 10

// Run drives the session until the user quits or input ends, and returns
// the process exit code. A panic anywhere in the loop is reported and
// turned into exit code 1.
func (a *App) Run() (code int) {
	defer func() {
		if r := recover(); r != nil {
			a.Logger.Error("panic: %v\n%s", r, debug.Stack())
			a.Display.ShowError(clierr.Internal("%v", r), nil)
			code = 1
		}
	}()

	a.start()
	if err := a.loop(); err != nil {
		a.Logger.Error("session aborted: %v", err)
		a.Display.ShowError(err, nil)
		return 1
	}

	a.Logger.Info("session ended")
	a.Display.Println(fmt.Sprintf("Thank you for using %s!", Name))
	return 0
}

func (a *App) start() {
	if a.clearScreen {
		a.Display.ClearScreen()
	}
	a.Display.Println(a.Styler.Header(fmt.Sprintf("Welcome to %s!", Name)))
	a.Display.Println("Type a command name to run it, 'help' for help, or 'quit' to exit.")
	a.Display.Println("Press Enter on an empty line to list the commands of the current menu.")
	for _, w := range a.warnings {
		a.Display.Warning(w)
	}
	a.Display.Println("")
	a.Display.ShowAvailableCommands(a.Stack)
}

func (a *App) loop() error {
	failures := 0
	for a.Session.Running() {
		line, err := a.Reader.ReadLine(a.Session.Prompt() + "? ")
		switch {
		case err == nil:
			failures = 0
			a.handle(line)
		case errors.Is(err, io.EOF):
			a.Logger.Info("end of input")
			a.Display.Println("")
			a.Session.Quit()
		case clierr.IsKind(err, clierr.KindInterrupted):
			failures = 0
			a.Display.Warning("Operation interrupted. Type 'quit' to exit.")
		default:
			failures++
			a.Logger.Error("read input (%d in a row): %v", failures, err)
			a.Display.ShowError(err, nil)
			if failures > maxReadFailures {
				return clierr.Internal("giving up after %d consecutive input failures", failures)
			}
		}
	}
	return nil
}

// handle runs one input line against the active menu.
func (a *App) handle(line string) {
	if strings.TrimSpace(line) == "" {
		a.Display.ShowAvailableCommands(a.Stack)
		return
	}

	a.Session.AddToHistory(line)
	a.Reader.AppendHistory(strings.TrimSpace(line))

	res, err := dispatchers.Resolve(a.Stack.Top(), dispatchers.Tokenize(line))
	if err != nil {
		a.Logger.Debug("resolve %q: %v", line, err)
		a.Display.ShowError(err, a.Stack)
		return
	}

	result, err := res.Command.Execute(res.Args)
	if err != nil {
		a.Logger.Warn("%s failed: %v", res.Command.Name(), err)
		a.Display.ShowError(err, a.Stack)
		return
	}

	a.apply(res.Command, result)
}

// apply moves the stack as result asks and mirrors the move onto the
// session path.
func (a *App) apply(cmd dispatchers.Command, result dispatchers.Result) {
	before := a.Session.CurrentPath()

	switch dispatchers.Apply(a.Stack, cmd, result) {
	case dispatchers.TransitionEntered:
		a.Session.PushContext(cmd.Name())
	case dispatchers.TransitionLeft:
		a.Session.PopContext()
	case dispatchers.TransitionAtRoot:
		a.Display.Info("Already at root level.")
	case dispatchers.TransitionQuit:
		a.Session.Quit()
	default:
		if result.Kind == dispatchers.ResultSuccess {
			a.Display.Success(result.Message)
		}
	}

	after := a.Session.CurrentPath()
	if !session.ValidateTransition(len(before), len(after)) || len(after) != a.Stack.Depth() {
		a.Logger.Error("navigation out of sync: path=%v stack=%v", after, a.Stack.Names())
		a.Display.ShowError(clierr.Internal("navigation state out of sync, returning to the main menu"), nil)
		a.Stack.Reset()
		for !a.Session.IsRoot() {
			a.Session.PopContext()
		}
		return
	}
	if len(before) != len(after) {
		a.Logger.Debug("navigate %s", strings.Join(session.RelativePath(before, after), "/"))
	}
}
