package actions

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sm-menu/cli/internal/dispatchers"
	"github.com/sm-menu/cli/internal/security"
	"github.com/sm-menu/cli/internal/session"
)

type progressCall struct {
	current, total int64
}

type fakePresenter struct {
	helpShown  []string
	categories []dispatchers.CategoryGroup
	progress   []progressCall
	finished   int
}

func (p *fakePresenter) ShowHelp(cmd dispatchers.Command) {
	p.helpShown = append(p.helpShown, cmd.Name())
}

func (p *fakePresenter) ShowCategories(groups []dispatchers.CategoryGroup) {
	p.categories = groups
}

func (p *fakePresenter) Progress(_ string, current, total int64) {
	p.progress = append(p.progress, progressCall{current, total})
}

func (p *fakePresenter) FinishProgress() {
	p.finished++
}

type testEnv struct {
	deps      Deps
	dir       string
	out       *strings.Builder
	presenter *fakePresenter
	prefs     *session.Preferences
}

// newTestEnv confines file commands to a temporary directory.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	out := &strings.Builder{}
	presenter := &fakePresenter{}
	prefs := session.DefaultPreferences()

	env := &testEnv{dir: dir, out: out, presenter: presenter, prefs: &prefs}
	env.deps = Deps{
		AppName: "sm-menu",
		Version: func() string { return "1.2.3" },
		Printf: func(format string, a ...any) (int, error) {
			return fmt.Fprintf(out, format, a...)
		},
		ValidatePath: func(path string) (string, error) {
			return security.ValidateFilePathIn(dir, path)
		},
		Stat: os.Stat,
		Open: func(path string) (io.ReadCloser, error) {
			return os.Open(path)
		},
		Display:      presenter,
		Preferences:  &prefs,
		ColorAllowed: true,
	}
	return env
}

func (e *testEnv) writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(e.dir, name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatal(err)
	}
	return path
}
