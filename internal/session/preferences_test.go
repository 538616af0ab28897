package session

import (
	"testing"

	"github.com/sm-menu/cli/internal/clierr"
	"github.com/stretchr/testify/require"
)

func TestDefaultPreferences(t *testing.T) {
	p := DefaultPreferences()
	require.True(t, p.ColoredPrompt)
	require.True(t, p.ShowSuggestions)
	require.True(t, p.ConfirmDestructive)
	require.Equal(t, 50, p.MaxListItems)
}

func TestPreferences_Set(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		check   func(t *testing.T, p Preferences)
		wantErr string
	}{
		{
			name: "bool", key: "colored_prompt", value: "false",
			check: func(t *testing.T, p Preferences) { require.False(t, p.ColoredPrompt) },
		},
		{
			name: "bool with spaces", key: "show_suggestions", value: " 0 ",
			check: func(t *testing.T, p Preferences) { require.False(t, p.ShowSuggestions) },
		},
		{
			name: "int", key: "max_list_items", value: "10",
			check: func(t *testing.T, p Preferences) { require.Equal(t, 10, p.MaxListItems) },
		},
		{name: "bad bool", key: "confirm_destructive", value: "maybe", wantErr: "Invalid input: confirm_destructive expects true or false, got 'maybe'"},
		{name: "zero int", key: "max_list_items", value: "0", wantErr: "Invalid input: max_list_items expects a positive number, got '0'"},
		{name: "unknown key", key: "theme", value: "mono", wantErr: "Invalid input: Unknown preference: theme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultPreferences()
			err := p.Set(tt.key, tt.value)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				require.True(t, clierr.IsKind(err, clierr.KindInvalidInput))
				require.Equal(t, DefaultPreferences(), p)
				return
			}
			require.NoError(t, err)
			tt.check(t, p)
		})
	}
}

func TestPreferences_Get(t *testing.T) {
	p := DefaultPreferences()
	v, ok := p.Get("max_list_items")
	require.True(t, ok)
	require.Equal(t, "50", v)

	v, ok = p.Get("colored_prompt")
	require.True(t, ok)
	require.Equal(t, "true", v)

	_, ok = p.Get("nope")
	require.False(t, ok)
}

func TestPreferencesFromConfig(t *testing.T) {
	values := map[string]string{
		"colored_prompt": "false",
		"max_list_items": "not-a-number",
		"theme":          "mono",
	}
	get := func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}

	p, err := PreferencesFromConfig(get)
	require.Error(t, err)
	require.Contains(t, err.Error(), "max_list_items")
	require.False(t, p.ColoredPrompt)
	require.Equal(t, 50, p.MaxListItems)
	require.True(t, p.ShowSuggestions)
}
