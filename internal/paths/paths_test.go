package paths

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppDataDir_ReturnsNonEmpty(t *testing.T) {
	dir := AppDataDir()
	require.NotEmpty(t, dir)
	require.NotEqual(t, ".", dir)
}

func TestAppDataDir_EndsWithAppName(t *testing.T) {
	require.Equal(t, "sm-menu", filepath.Base(AppDataDir()))
}

func TestAppDataDir_Platform(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux layout only")
	}
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	require.Equal(t, "/tmp/xdg/sm-menu", AppDataDir())
}

func TestConfigFilePath(t *testing.T) {
	t.Setenv(ConfigEnvVar, "")
	path := ConfigFilePath()
	require.True(t, strings.HasSuffix(path, filepath.Join("sm-menu", "config.toml")), path)
	require.Equal(t, AppDataDir(), filepath.Dir(path))
}

func TestConfigFilePath_EnvOverride(t *testing.T) {
	t.Setenv(ConfigEnvVar, "/somewhere/else.toml")
	require.Equal(t, "/somewhere/else.toml", ConfigFilePath())
}

func TestLogFilePath(t *testing.T) {
	path := LogFilePath()
	require.Equal(t, "sm-menu.log", filepath.Base(path))
	require.Equal(t, AppDataDir(), filepath.Dir(path))
}
