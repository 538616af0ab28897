package config

import "github.com/sm-menu/cli/internal/domain"

// Defaults holds the in-code value of every known key. They are never
// written to disk.
var Defaults = defaultsFromKeys()

func defaultsFromKeys() map[string]func() string {
	defaults := make(map[string]func() string, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		value := key.Default
		defaults[key.Name] = func() string { return value }
	}
	return defaults
}

// EnvPrefix is prepended to the upper-cased key name to form its
// environment override, e.g. SM_MENU_COLORED_PROMPT.
const EnvPrefix = "SM_MENU_"
