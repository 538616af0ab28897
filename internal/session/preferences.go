package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sm-menu/cli/internal/clierr"
	"github.com/sm-menu/cli/internal/domain"
)

// Preferences are the user settings that shape a running session.
type Preferences struct {
	ColoredPrompt      bool
	ShowSuggestions    bool
	ConfirmDestructive bool
	MaxListItems       int
}

func DefaultPreferences() Preferences {
	return Preferences{
		ColoredPrompt:      true,
		ShowSuggestions:    true,
		ConfirmDestructive: true,
		MaxListItems:       50,
	}
}

// PreferencesFromConfig reads session keys through get. Keys that are
// missing keep their default; keys with unparsable values keep their default
// and are reported in the returned error.
func PreferencesFromConfig(get func(key string) (string, bool)) (Preferences, error) {
	prefs := DefaultPreferences()
	var errs []error
	for _, key := range domain.SessionConfigKeys() {
		value, ok := get(key.Name)
		if !ok {
			continue
		}
		if err := prefs.Set(key.Name, value); err != nil {
			errs = append(errs, err)
		}
	}
	return prefs, errors.Join(errs...)
}

// Set assigns a preference from its textual form.
func (p *Preferences) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case domain.KeyColoredPrompt:
		return setBool(&p.ColoredPrompt, key, value)
	case domain.KeyShowSuggestions:
		return setBool(&p.ShowSuggestions, key, value)
	case domain.KeyConfirmDestructive:
		return setBool(&p.ConfirmDestructive, key, value)
	case domain.KeyMaxListItems:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return clierr.InvalidInput(fmt.Sprintf("%s expects a positive number, got '%s'", key, value))
		}
		p.MaxListItems = n
		return nil
	default:
		return clierr.InvalidInput("Unknown preference: " + key)
	}
}

// Get returns the textual form of a preference.
func (p Preferences) Get(key string) (string, bool) {
	switch key {
	case domain.KeyColoredPrompt:
		return strconv.FormatBool(p.ColoredPrompt), true
	case domain.KeyShowSuggestions:
		return strconv.FormatBool(p.ShowSuggestions), true
	case domain.KeyConfirmDestructive:
		return strconv.FormatBool(p.ConfirmDestructive), true
	case domain.KeyMaxListItems:
		return strconv.Itoa(p.MaxListItems), true
	default:
		return "", false
	}
}

func setBool(dst *bool, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return clierr.InvalidInput(fmt.Sprintf("%s expects true or false, got '%s'", key, value))
	}
	*dst = b
	return nil
}
