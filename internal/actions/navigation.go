package actions

import (
	"github.com/sm-menu/cli/internal/dispatchers"
)

func quitCommand(deps Deps) dispatchers.Command {
	return newAction(dispatchers.Spec{
		Name:        "quit",
		Aliases:     []string{"q"},
		Description: "Quit the program and return to the shell",
		Category:    dispatchers.CategorySystem,
	}, func(args []string) (dispatchers.Result, error) {
		return quit(args, deps)
	})
}

func quit(args []string, deps Deps) (dispatchers.Result, error) {
	if err := dispatchers.NoArgs(args); err != nil {
		return dispatchers.Result{}, err
	}
	_, _ = deps.Printf("Goodbye!\n")
	return dispatchers.Quit(), nil
}

func exitCommand() dispatchers.Command {
	return newAction(dispatchers.Spec{
		Name:        "exit",
		Aliases:     []string{"e"},
		Description: "Exit to the parent menu",
		Category:    dispatchers.CategorySystem,
	}, exit)
}

func exit(args []string) (dispatchers.Result, error) {
	if err := dispatchers.NoArgs(args); err != nil {
		return dispatchers.Result{}, err
	}
	return dispatchers.GoUp(), nil
}

func infoCommand(deps Deps, menuName string, hidden bool) dispatchers.Command {
	return newAction(dispatchers.Spec{
		Name:        "info",
		Aliases:     []string{"i"},
		Description: "Display information about the current menu",
		Category:    dispatchers.CategorySystem,
		Hidden:      hidden,
	}, func(args []string) (dispatchers.Result, error) {
		return info(args, menuName, deps)
	})
}

func info(args []string, menuName string, deps Deps) (dispatchers.Result, error) {
	if err := dispatchers.NoArgs(args); err != nil {
		return dispatchers.Result{}, err
	}
	_, _ = deps.Printf("%s menu information:\n", menuName)
	_, _ = deps.Printf("Available commands in this menu:\n")
	_, _ = deps.Printf("  Type any command name to execute it\n")
	_, _ = deps.Printf("  Use 'exit' (or 'e') to return to parent menu\n")
	return dispatchers.Success(""), nil
}
