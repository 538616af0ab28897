package style

import "os"

// ColorConfig holds all configurable colors for the UI.
// Values can be ANSI color numbers (0-255), "bold", or "bold:<number>".
type ColorConfig struct {
	Success  string
	Warning  string
	Error    string
	Critical string
	Info     string
	Muted    string
	Header   string
	Command  string
}

// ThemeNames lists the built-in themes.
var ThemeNames = []string{"default", "mono"}

// Themes contains the built-in color themes.
var Themes = map[string]ColorConfig{
	// Classic terminal colors from the 16-color palette.
	"default": {
		Success:  "2",
		Warning:  "bold:3",
		Error:    "bold:1",
		Critical: "bold:5",
		Info:     "4",
		Muted:    "245",
		Header:   "bold",
		Command:  "bold:6",
	},

	// Mono keeps emphasis but drops hue.
	"mono": {
		Success:  "",
		Warning:  "bold",
		Error:    "bold",
		Critical: "bold",
		Info:     "",
		Muted:    "245",
		Header:   "bold",
		Command:  "bold",
	},
}

// LoadColorConfig returns the named theme. SM_MENU_COLOR_THEME takes
// priority over name; unknown names fall back to "default".
func LoadColorConfig(name string) ColorConfig {
	if env := os.Getenv("SM_MENU_COLOR_THEME"); env != "" {
		name = env
	}
	if theme, ok := Themes[name]; ok {
		return theme
	}
	return Themes["default"]
}
