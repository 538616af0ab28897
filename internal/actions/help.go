package actions

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/sm-menu/cli/internal/clierr"
	"github.com/sm-menu/cli/internal/dispatchers"
	"github.com/sm-menu/cli/internal/security"
)

// helpCommand documents the root menu. topics is resolved lazily because
// help is itself one of the root's children.
func helpCommand(deps Deps, topics func() []dispatchers.Command) dispatchers.Command {
	return newAction(dispatchers.Spec{
		Name:        "help",
		Aliases:     []string{"h"},
		Description: "Help information for the available commands",
		Usage:       "help [command]",
		Category:    dispatchers.CategoryGeneral,
	}, func(args []string) (dispatchers.Result, error) {
		return help(args, topics(), deps)
	})
}

func help(args []string, topics []dispatchers.Command, deps Deps) (dispatchers.Result, error) {
	name, given, err := dispatchers.OptionalArg(args)
	if err != nil {
		return dispatchers.Result{}, err
	}

	visible := dispatchers.Visible(topics)
	if !given {
		title := deps.AppName + " Help"
		_, _ = deps.Printf("%s\n%s\n", title, strings.Repeat("=", runewidth.StringWidth(title)))
		deps.Display.ShowCategories(dispatchers.NewRegistry(visible...).ByCategory())
		_, _ = deps.Printf("\nType a command name to enter its submenu or see its options.\n")
		_, _ = deps.Printf("Use 'help <command>' for specific command help.\n")
		return dispatchers.Continue(), nil
	}

	cmd, ok := dispatchers.Find(visible, name)
	if !ok {
		return dispatchers.Result{}, clierr.InvalidInput(fmt.Sprintf("No help available for command: %s", security.SanitizeForDisplay(name)))
	}
	deps.Display.ShowHelp(cmd)
	return dispatchers.Continue(), nil
}
