package dispatchers

import (
	"strings"

	"golang.org/x/text/cases"
)

// Command is a node of the menu tree. A command with subcommands acts as a
// menu; one without is a leaf action.
type Command interface {
	Name() string
	Aliases() []string
	Description() string
	Usage() string
	Category() CommandCategory
	// Hidden commands are executable but left out of listings.
	Hidden() bool
	// Execute validates args before doing anything observable.
	Execute(args []string) (Result, error)
	// Subcommands builds the children anew on every call.
	Subcommands() []Command
}

// Spec holds the metadata every command carries.
type Spec struct {
	Name        string
	Aliases     []string
	Description string
	Usage       string
	Category    CommandCategory
	Hidden      bool
}

// Base implements the metadata half of Command. Embed it and provide
// Execute (and Subcommands for menus).
type Base struct {
	spec Spec
}

func NewBase(spec Spec) Base {
	return Base{spec: spec}
}

func (b Base) Name() string              { return b.spec.Name }
func (b Base) Aliases() []string         { return b.spec.Aliases }
func (b Base) Description() string       { return b.spec.Description }
func (b Base) Category() CommandCategory { return b.spec.Category }
func (b Base) Hidden() bool              { return b.spec.Hidden }
func (b Base) Subcommands() []Command    { return nil }

func (b Base) Usage() string {
	if b.spec.Usage != "" {
		return b.spec.Usage
	}
	return b.spec.Name
}

var folder = cases.Fold()

// Matches reports whether input names cmd, ignoring case, by its name or any
// of its aliases.
func Matches(cmd Command, input string) bool {
	folded := folder.String(input)
	if folder.String(cmd.Name()) == folded {
		return true
	}
	for _, alias := range cmd.Aliases() {
		if folder.String(alias) == folded {
			return true
		}
	}
	return false
}

// HasSubcommands reports whether cmd is a menu.
func HasSubcommands(cmd Command) bool {
	return len(cmd.Subcommands()) > 0
}

// Help returns the one-line summary "name (a, b) - description".
func Help(cmd Command) string {
	aliases := cmd.Aliases()
	if len(aliases) == 0 {
		return cmd.Name() + " - " + cmd.Description()
	}
	return cmd.Name() + " (" + strings.Join(aliases, ", ") + ") - " + cmd.Description()
}

// Find returns the first command in cmds matching input.
func Find(cmds []Command, input string) (Command, bool) {
	for _, cmd := range cmds {
		if Matches(cmd, input) {
			return cmd, true
		}
	}
	return nil, false
}

// Visible filters out hidden commands.
func Visible(cmds []Command) []Command {
	visible := make([]Command, 0, len(cmds))
	for _, cmd := range cmds {
		if !cmd.Hidden() {
			visible = append(visible, cmd)
		}
	}
	return visible
}
