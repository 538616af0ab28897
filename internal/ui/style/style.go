// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place where lipgloss is imported. All styling
// is semantic (Success, Warning, Error, etc.) rather than visual (RedBold, etc.).
//
// When disabled, all helpers return the input string unchanged with no ANSI codes.
package style

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	enabled bool
	colors  ColorConfig

	successStyle  lipgloss.Style
	warningStyle  lipgloss.Style
	errorStyle    lipgloss.Style
	criticalStyle lipgloss.Style
	infoStyle     lipgloss.Style
	headerStyle   lipgloss.Style
	mutedStyle    lipgloss.Style
	commandStyle  lipgloss.Style
	emphasisStyle lipgloss.Style
)

// Init initializes the style package with the given enabled state and theme.
// It also respects NO_COLOR and SM_MENU_NO_COLOR environment variables;
// if either is set (to any non-empty value), styling is disabled
// regardless of the enabled parameter.
//
// This function should be called once from main before any output.
func Init(enable bool, theme string) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("SM_MENU_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable

	if enabled {
		colors = LoadColorConfig(theme)
		initStyles(colors)
	}
}

// GetColors returns the current color configuration.
// Returns empty config if styling is not enabled.
func GetColors() ColorConfig {
	return colors
}

// initStyles creates the lipgloss styles from the given color configuration.
func initStyles(colors ColorConfig) {
	// Force lipgloss to use ANSI256 colors regardless of TTY detection.
	lipgloss.SetColorProfile(termenv.ANSI256)

	successStyle = makeStyle(colors.Success)
	warningStyle = makeStyle(colors.Warning)
	errorStyle = makeStyle(colors.Error)
	criticalStyle = makeStyle(colors.Critical)
	infoStyle = makeStyle(colors.Info)
	mutedStyle = makeStyle(colors.Muted)
	headerStyle = makeStyle(colors.Header)
	commandStyle = makeStyle(colors.Command)
	emphasisStyle = lipgloss.NewStyle().Bold(true)
}

// makeStyle creates a lipgloss style from a color value.
// The value is "bold", an ANSI color number (0-255), or "bold:<number>".
func makeStyle(value string) lipgloss.Style {
	s := lipgloss.NewStyle()
	if value == "bold" {
		return s.Bold(true)
	}
	if c, ok := strings.CutPrefix(value, "bold:"); ok {
		s = s.Bold(true)
		value = c
	}
	if value == "" {
		return s
	}
	return s.Foreground(lipgloss.Color(value))
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	return enabled
}

func render(s lipgloss.Style, text string) string {
	if !enabled {
		return text
	}
	return s.Render(text)
}

// Success styles text for successful operations.
func Success(text string) string { return render(successStyle, text) }

// Warning styles text for warning messages.
func Warning(text string) string { return render(warningStyle, text) }

// Error styles text for error messages.
func Error(text string) string { return render(errorStyle, text) }

// Critical styles text for failures that point at a bug.
func Critical(text string) string { return render(criticalStyle, text) }

// Info styles text for informational messages.
func Info(text string) string { return render(infoStyle, text) }

// Header styles text for section headers or titles.
func Header(text string) string { return render(headerStyle, text) }

// Muted styles text for less important or secondary information.
func Muted(text string) string { return render(mutedStyle, text) }

// Command styles a command name in listings and help.
func Command(text string) string { return render(commandStyle, text) }

// Emphasis renders text in bold.
func Emphasis(text string) string { return render(emphasisStyle, text) }
