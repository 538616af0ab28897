package paths

import (
	"os"
	"path/filepath"
)

const appDirName = "sm-menu"

// ConfigEnvVar overrides the preferences file location.
const ConfigEnvVar = "SM_MENU_CONFIG"

// AppDataDir returns the application directory for preferences and logs.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, appDirName)
}

// ConfigFilePath returns the preferences file, honouring SM_MENU_CONFIG.
//   - macOS: ~/Library/Application Support/sm-menu/config.toml
//   - Linux: $XDG_CONFIG_HOME/sm-menu/config.toml or ~/.config/sm-menu/config.toml
//   - Windows: %AppData%\sm-menu\config.toml
func ConfigFilePath() string {
	if p := os.Getenv(ConfigEnvVar); p != "" {
		return p
	}
	return filepath.Join(AppDataDir(), "config.toml")
}

// LogFilePath returns the path to the application log file, next to the
// preferences file.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "sm-menu.log")
}
