package domain

// ValueType is the kind of value a configuration key holds.
type ValueType int

const (
	TypeString ValueType = iota
	TypeBool
	TypeInt
)

func (t ValueType) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	default:
		return "string"
	}
}

// ConfigKey defines a configuration key with its metadata.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     string // Section for grouping in listings (Session, Display, Logging)
	Type        ValueType
	// Session keys can be changed at runtime with "prefs set".
	Session bool
}

// Configuration keys.
const (
	KeyColoredPrompt      = "colored_prompt"
	KeyShowSuggestions    = "show_suggestions"
	KeyConfirmDestructive = "confirm_destructive"
	KeyMaxListItems       = "max_list_items"
	KeyUnicode            = "unicode"
	KeyTheme              = "theme"
	KeyEnableLog          = "enable_log"
	KeyLogLevel           = "log_level"
)

// ConfigKeys defines all available configuration keys.
// Order determines display order in "prefs list".
var ConfigKeys = []ConfigKey{
	// Session
	{
		Name:        KeyColoredPrompt,
		Default:     "true",
		Description: "Color the application name in the prompt",
		Section:     "Session",
		Type:        TypeBool,
		Session:     true,
	},
	{
		Name:        KeyShowSuggestions,
		Default:     "true",
		Description: "Suggest similar commands after a typo",
		Section:     "Session",
		Type:        TypeBool,
		Session:     true,
	},
	{
		Name:        KeyConfirmDestructive,
		Default:     "true",
		Description: "Ask before destructive operations (reserved)",
		Section:     "Session",
		Type:        TypeBool,
		Session:     true,
	},
	{
		Name:        KeyMaxListItems,
		Default:     "50",
		Description: "Maximum number of items shown in listings",
		Section:     "Session",
		Type:        TypeInt,
		Session:     true,
	},
	// Display
	{
		Name:        KeyUnicode,
		Default:     "true",
		Description: "Use unicode icons in messages (true/false)",
		Section:     "Display",
		Type:        TypeBool,
	},
	{
		Name:        KeyTheme,
		Default:     "default",
		Description: "Color theme: default, mono",
		Section:     "Display",
	},
	// Logging
	{
		Name:        KeyEnableLog,
		Default:     "false",
		Description: "Enable logging to file (true/false)",
		Section:     "Logging",
		Type:        TypeBool,
	},
	{
		Name:        KeyLogLevel,
		Default:     "warn",
		Description: "Log level: debug, info, warn, error",
		Section:     "Logging",
	},
}

// configKeyMap is a lookup map for configuration keys.
var configKeyMap map[string]ConfigKey

func init() {
	configKeyMap = make(map[string]ConfigKey, len(ConfigKeys))
	for _, key := range ConfigKeys {
		configKeyMap[key.Name] = key
	}
}

// GetConfigKey returns the ConfigKey for a given name.
func GetConfigKey(name string) (ConfigKey, bool) {
	key, ok := configKeyMap[name]
	return key, ok
}

// IsValidConfigKey checks if a key name is valid.
func IsValidConfigKey(name string) bool {
	_, ok := configKeyMap[name]
	return ok
}

// GetDefaultValue returns the default value for a config key.
func GetDefaultValue(name string) (string, bool) {
	if key, ok := configKeyMap[name]; ok {
		return key.Default, true
	}
	return "", false
}

// SessionConfigKeys returns the keys that can change during a session.
func SessionConfigKeys() []ConfigKey {
	var keys []ConfigKey
	for _, key := range ConfigKeys {
		if key.Session {
			keys = append(keys, key)
		}
	}
	return keys
}
