package actions

import (
	"regexp"

	"github.com/sm-menu/cli/internal/clierr"
	"github.com/sm-menu/cli/internal/dispatchers"
)

// workspace selects the wording of axis and show, which exist under both
// edit and view.
type workspace int

const (
	editContext workspace = iota
	viewContext
)

const defaultAxisName = "default"

var axisNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func (w workspace) category() dispatchers.CommandCategory {
	if w == viewContext {
		return dispatchers.CategoryView
	}
	return dispatchers.CategoryEdit
}

func axisCommand(deps Deps, ws workspace) dispatchers.Command {
	desc := "Configure axis properties for the editing environment"
	if ws == viewContext {
		desc = "Configure axis properties for the viewing environment"
	}
	return newAction(dispatchers.Spec{
		Name:        "axis",
		Aliases:     []string{"a"},
		Description: desc,
		Usage:       "axis [name]",
		Category:    ws.category(),
	}, func(args []string) (dispatchers.Result, error) {
		return axis(args, ws, deps)
	})
}

func axis(args []string, ws workspace, deps Deps) (dispatchers.Result, error) {
	name, given, err := dispatchers.OptionalArg(args)
	if err != nil {
		return dispatchers.Result{}, err
	}
	if !given {
		name = defaultAxisName
	}
	if err := dispatchers.NotBlank(name, "Axis name"); err != nil {
		return dispatchers.Result{}, err
	}
	if !axisNamePattern.MatchString(name) {
		return dispatchers.Result{}, clierr.InvalidInput("Axis name can only contain alphanumeric characters, underscores, and hyphens")
	}

	switch ws {
	case viewContext:
		_, _ = deps.Printf("Configuring axis properties for viewing: %s\n", name)
	default:
		_, _ = deps.Printf("Configuring axis properties for editing: %s\n", name)
	}
	return dispatchers.Continue(), nil
}

func showCommand(deps Deps, ws workspace) dispatchers.Command {
	desc := "Display current edit state and configuration"
	if ws == viewContext {
		desc = "Display current view state and configuration"
	}
	return newAction(dispatchers.Spec{
		Name:        "show",
		Aliases:     []string{"sh"},
		Description: desc,
		Category:    ws.category(),
	}, func(args []string) (dispatchers.Result, error) {
		return show(args, ws, deps)
	})
}

func show(args []string, ws workspace, deps Deps) (dispatchers.Result, error) {
	if err := dispatchers.NoArgs(args); err != nil {
		return dispatchers.Result{}, err
	}

	switch ws {
	case viewContext:
		_, _ = deps.Printf("Displaying current view state...\n")
		_, _ = deps.Printf("View mode: Active\n")
		_, _ = deps.Printf("Current perspective: Default\n")
	default:
		_, _ = deps.Printf("Displaying current edit state...\n")
		_, _ = deps.Printf("Edit mode: Active\n")
		_, _ = deps.Printf("Current selection: None\n")
	}
	return dispatchers.Continue(), nil
}
