package actions

import (
	"fmt"

	"github.com/sm-menu/cli/internal/clierr"
	"github.com/sm-menu/cli/internal/dispatchers"
	"github.com/sm-menu/cli/internal/domain"
)

func listPrefsCommand(deps Deps) dispatchers.Command {
	return newAction(dispatchers.Spec{
		Name:        "list",
		Aliases:     []string{"ls"},
		Description: "List the session preferences",
		Category:    dispatchers.CategoryPreferences,
	}, func(args []string) (dispatchers.Result, error) {
		return listPrefs(args, deps)
	})
}

func listPrefs(args []string, deps Deps) (dispatchers.Result, error) {
	if err := dispatchers.NoArgs(args); err != nil {
		return dispatchers.Result{}, err
	}

	keys := domain.SessionConfigKeys()
	limit := deps.Preferences.MaxListItems
	if limit <= 0 || limit > len(keys) {
		limit = len(keys)
	}

	for _, key := range keys[:limit] {
		value, _ := deps.Preferences.Get(key.Name)
		_, _ = deps.Printf("%s=%s\n", key.Name, value)
	}
	if rest := len(keys) - limit; rest > 0 {
		_, _ = deps.Printf("... and %d more\n", rest)
	}
	return dispatchers.Continue(), nil
}

func setPrefCommand(deps Deps) dispatchers.Command {
	return newAction(dispatchers.Spec{
		Name:        "set",
		Aliases:     []string{"s"},
		Description: "Change a session preference",
		Usage:       "set <key> <value>",
		Category:    dispatchers.CategoryPreferences,
	}, func(args []string) (dispatchers.Result, error) {
		return setPref(args, deps)
	})
}

func setPref(args []string, deps Deps) (dispatchers.Result, error) {
	if err := dispatchers.ExactArgs(args, 2); err != nil {
		return dispatchers.Result{}, err
	}

	key := args[0]
	next := *deps.Preferences
	if err := next.Set(key, args[1]); err != nil {
		return dispatchers.Result{}, err
	}
	if next.ColoredPrompt && !deps.ColorAllowed {
		return dispatchers.Result{}, clierr.InvalidInput("Cannot enable colored_prompt: colour output is disabled")
	}
	*deps.Preferences = next

	value, _ := next.Get(key)
	return dispatchers.Success(fmt.Sprintf("%s = %s", key, value)), nil
}

func resetPrefsCommand(deps Deps) dispatchers.Command {
	return newAction(dispatchers.Spec{
		Name:        "reset",
		Aliases:     []string{"r"},
		Description: "Restore the default preferences",
		Category:    dispatchers.CategoryPreferences,
	}, func(args []string) (dispatchers.Result, error) {
		return resetPrefs(args, deps)
	})
}

func resetPrefs(args []string, deps Deps) (dispatchers.Result, error) {
	if err := dispatchers.NoArgs(args); err != nil {
		return dispatchers.Result{}, err
	}
	*deps.Preferences = deps.defaultPreferences()
	return dispatchers.Success("Preferences reset to defaults"), nil
}
