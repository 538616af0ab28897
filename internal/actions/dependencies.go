package actions

import (
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/sm-menu/cli/internal/dispatchers"
	"github.com/sm-menu/cli/internal/security"
	"github.com/sm-menu/cli/internal/session"
)

// Presenter is the part of the display layer the commands draw on.
type Presenter interface {
	ShowHelp(cmd dispatchers.Command)
	ShowCategories(groups []dispatchers.CategoryGroup)
	Progress(label string, current, total int64)
	FinishProgress()
}

// Deps are the services the menu commands run against. Preferences points
// at the live session state; the prefs commands edit it in place.
// ColorAllowed is false when the terminal cannot show a coloured prompt.
type Deps struct {
	AppName      string
	Version      func() string
	Printf       func(format string, a ...any) (int, error)
	ValidatePath func(path string) (string, error)
	Stat         func(path string) (fs.FileInfo, error)
	Open         func(path string) (io.ReadCloser, error)
	Display      Presenter
	Preferences  *session.Preferences
	ColorAllowed bool
}

func DefaultDeps(appName string, display Presenter, prefs *session.Preferences) Deps {
	return Deps{
		AppName:      appName,
		Version:      func() string { return "dev" },
		Printf:       fmt.Printf,
		ValidatePath: security.ValidateFilePath,
		Stat:         os.Stat,
		Open: func(path string) (io.ReadCloser, error) {
			return os.Open(path)
		},
		Display:      display,
		Preferences:  prefs,
		ColorAllowed: true,
	}
}

// defaultPreferences are the defaults this terminal can honour.
func (d Deps) defaultPreferences() session.Preferences {
	prefs := session.DefaultPreferences()
	if !d.ColorAllowed {
		prefs.ColoredPrompt = false
	}
	return prefs
}
