package actions

import (
	"fmt"

	"github.com/sm-menu/cli/internal/dispatchers"
)

// NewRoot builds the top of the menu tree. Children are created on demand
// each time a menu is listed or searched.
func NewRoot(deps Deps) dispatchers.Command {
	var root dispatchers.Command
	root = newMenu(dispatchers.Spec{
		Name:        "root",
		Description: fmt.Sprintf("%s main menu with File, Edit, View, Prefs, Help, and Quit commands", deps.AppName),
		Category:    dispatchers.CategoryGeneral,
	}, func() []dispatchers.Command {
		return []dispatchers.Command{
			fileMenu(deps),
			editMenu(deps),
			viewMenu(deps),
			prefsMenu(deps),
			helpCommand(deps, func() []dispatchers.Command { return root.Subcommands() }),
			quitCommand(deps),
			infoCommand(deps, "main", true),
		}
	})
	return root
}

func fileMenu(deps Deps) dispatchers.Command {
	return newMenu(dispatchers.Spec{
		Name:        "file",
		Aliases:     []string{"f"},
		Description: "File operations: Load, Save, Version, Info, Exit",
		Category:    dispatchers.CategoryFile,
	}, func() []dispatchers.Command {
		return []dispatchers.Command{
			loadCommand(deps),
			saveCommand(deps),
			versCommand(deps),
			fileMenu(deps),
			infoCommand(deps, "file", false),
			exitCommand(),
		}
	})
}

func editMenu(deps Deps) dispatchers.Command {
	return newMenu(dispatchers.Spec{
		Name:        "edit",
		Aliases:     []string{"e"},
		Description: "Edit operations: Axis, Show, Info, Exit",
		Category:    dispatchers.CategoryEdit,
	}, func() []dispatchers.Command {
		return []dispatchers.Command{
			axisCommand(deps, editContext),
			showCommand(deps, editContext),
			infoCommand(deps, "edit", false),
			exitCommand(),
		}
	})
}

func viewMenu(deps Deps) dispatchers.Command {
	return newMenu(dispatchers.Spec{
		Name:        "view",
		Aliases:     []string{"v"},
		Description: "View operations: Axis, Show, Info, Exit",
		Category:    dispatchers.CategoryView,
	}, func() []dispatchers.Command {
		return []dispatchers.Command{
			axisCommand(deps, viewContext),
			showCommand(deps, viewContext),
			infoCommand(deps, "view", false),
			exitCommand(),
		}
	})
}

func prefsMenu(deps Deps) dispatchers.Command {
	return newMenu(dispatchers.Spec{
		Name:        "prefs",
		Aliases:     []string{"p"},
		Description: "Session preferences: List, Set, Reset, Info, Exit",
		Category:    dispatchers.CategoryPreferences,
	}, func() []dispatchers.Command {
		return []dispatchers.Command{
			listPrefsCommand(deps),
			setPrefCommand(deps),
			resetPrefsCommand(deps),
			infoCommand(deps, "prefs", false),
			exitCommand(),
		}
	})
}
