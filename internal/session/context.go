// Package session holds the state of one interactive run: where the user is
// in the menu tree, what they typed, and how they want things shown.
package session

import (
	"sort"
	"strings"

	"github.com/muesli/termenv"
	"github.com/sm-menu/cli/internal/dispatchers"
)

// promptColor is the 24-bit green used for the application name.
const promptColor = "#00D787"

// Context is the mutable session state driven by the dispatch loop. The
// path mirrors the command stack: one name per entered menu, root excluded.
type Context struct {
	appName string
	path    []string
	running bool
	history History
	prefs   Preferences
}

func New(appName string) *Context {
	return NewWithPreferences(appName, DefaultPreferences())
}

func NewWithPreferences(appName string, prefs Preferences) *Context {
	return &Context{
		appName: appName,
		running: true,
		prefs:   prefs,
	}
}

func (c *Context) AppName() string {
	return c.appName
}

// PushContext records entering the menu called name.
func (c *Context) PushContext(name string) {
	c.path = append(c.path, name)
}

// PopContext forgets the innermost menu. It reports false at the root.
func (c *Context) PopContext() (string, bool) {
	if len(c.path) == 0 {
		return "", false
	}
	last := c.path[len(c.path)-1]
	c.path = c.path[:len(c.path)-1]
	return last, true
}

// CurrentPath returns a copy of the navigation path.
func (c *Context) CurrentPath() []string {
	out := make([]string, len(c.path))
	copy(out, c.path)
	return out
}

func (c *Context) Depth() int {
	return len(c.path)
}

func (c *Context) IsRoot() bool {
	return len(c.path) == 0
}

// Prompt renders "app > " at the root and "app ~ a > b > " below it.
func (c *Context) Prompt() string {
	name := c.appName
	if c.prefs.ColoredPrompt {
		p := termenv.TrueColor
		name = p.String(name).Foreground(p.Color(promptColor)).String()
	}
	if len(c.path) == 0 {
		return name + " > "
	}
	return name + " ~ " + strings.Join(c.path, " > ") + " > "
}

func (c *Context) Running() bool {
	return c.running
}

// Quit stops the loop after the current iteration.
func (c *Context) Quit() {
	c.running = false
}

func (c *Context) AddToHistory(line string) {
	c.history.Add(line)
}

func (c *Context) History() []string {
	return c.history.Entries()
}

func (c *Context) PreviousCommand() (string, bool) {
	return c.history.Previous()
}

func (c *Context) NextCommand() (string, bool) {
	return c.history.Next()
}

// Completions returns, sorted and without duplicates, every name or alias in
// candidates and every history line that starts with prefix.
func (c *Context) Completions(prefix string, candidates []dispatchers.Command) []string {
	seen := make(map[string]struct{})
	add := func(s string) {
		if strings.HasPrefix(s, prefix) {
			seen[s] = struct{}{}
		}
	}

	for _, cmd := range candidates {
		add(cmd.Name())
		for _, alias := range cmd.Aliases() {
			add(alias)
		}
	}
	for _, line := range c.history.entries {
		add(line)
	}

	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func (c *Context) Preferences() Preferences {
	return c.prefs
}

// PreferencesMut exposes the live preferences for in-place changes.
func (c *Context) PreferencesMut() *Preferences {
	return &c.prefs
}

func (c *Context) SetPreferences(p Preferences) {
	c.prefs = p
}

// Reset returns to the root and resumes running. History is kept.
func (c *Context) Reset() {
	c.path = nil
	c.running = true
	c.history.resetCursor()
}
