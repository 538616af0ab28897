package app

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/sm-menu/cli/internal/actions"
	"github.com/sm-menu/cli/internal/completions"
	"github.com/sm-menu/cli/internal/config"
	"github.com/sm-menu/cli/internal/dispatchers"
	"github.com/sm-menu/cli/internal/domain"
	"github.com/sm-menu/cli/internal/log"
	"github.com/sm-menu/cli/internal/paths"
	"github.com/sm-menu/cli/internal/session"
	"github.com/sm-menu/cli/internal/ui"
	"github.com/sm-menu/cli/internal/ui/style"
)

// Name is shown in the prompt, the banner and the version line.
const Name = "sm-menu"

// Options configures the application factory. Zero values fall back to the
// preferences file.
type Options struct {
	ConfigPath string
	NoColor    bool
	LogLevel   string
	LogFile    string
	NoLog      bool
	Version    string
}

// App is one interactive session with all of its collaborators.
type App struct {
	Config    domain.ConfigProvider
	Logger    domain.Logger
	Output    *ui.Writer
	Styler    domain.Styler
	Display   *ui.Display
	Session   *session.Context
	Stack     *dispatchers.Stack
	Reader    domain.LineReader
	SessionID string
	Version   string

	clearScreen bool
	warnings    []string
}

// New creates a new App reading from the terminal and writing to stdout.
func New(opts Options) (*App, error) {
	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = paths.ConfigFilePath()
	}
	provider, err := config.NewProvider(configPath)
	if err != nil {
		return nil, err
	}

	sessionID := uuid.NewString()
	logger := newLogger(opts, provider, sessionID)

	out := ui.NewWriter()
	tty := out.IsTerminal()

	theme, _ := provider.Get(domain.KeyTheme)
	styled := tty && !opts.NoColor
	style.Init(styled, theme)

	prefs, prefsErr := session.PreferencesFromConfig(provider.Get)
	if !style.Enabled() {
		prefs.ColoredPrompt = false
	}

	a := assemble(assembly{
		config:       provider,
		logger:       logger,
		output:       out,
		errOut:       os.Stderr,
		styler:       style.NewStyler(),
		unicode:      boolSetting(provider, domain.KeyUnicode, true),
		prefs:        prefs,
		colorAllowed: style.Enabled(),
		version:      opts.Version,
		sessionID:    sessionID,
	})
	reader, err := NewTerminalReader(completions.NewLineCompleter(a.Session, a.Stack))
	if err != nil {
		_ = logger.Close()
		return nil, err
	}
	a.Reader = reader
	a.clearScreen = tty
	for _, key := range provider.UnknownKeys() {
		logger.Warn("config: ignoring unknown key %q", key)
		a.warnings = append(a.warnings, fmt.Sprintf("Unknown setting %q in %s was ignored", key, configPath))
	}
	if prefsErr != nil {
		logger.Warn("preferences: %v", prefsErr)
		a.warnings = append(a.warnings, fmt.Sprintf("Some preferences in %s were ignored: %v", configPath, prefsErr))
	}

	logger.Info("session started version=%s config=%s", opts.Version, configPath)
	return a, nil
}

// NewForTesting creates an App that reads from reader and writes everything,
// errors included, to out. Logging and styling are off.
func NewForTesting(reader domain.LineReader, out io.Writer) *App {
	prefs := session.DefaultPreferences()
	prefs.ColoredPrompt = false

	a := assemble(assembly{
		config:    config.NewProviderFrom(nil, nil),
		logger:    log.NopLogger{},
		output:    ui.NewWriterTo(out),
		errOut:    out,
		styler:    style.NopStyler{},
		unicode:   false,
		prefs:     prefs,
		version:   "test",
		sessionID: "test",
	})
	a.Reader = reader
	return a
}

type assembly struct {
	config       domain.ConfigProvider
	logger       domain.Logger
	output       *ui.Writer
	errOut       io.Writer
	styler       domain.Styler
	unicode      bool
	prefs        session.Preferences
	colorAllowed bool
	version      string
	sessionID    string
}

func assemble(as assembly) *App {
	ctx := session.NewWithPreferences(Name, as.prefs)
	display := ui.NewDisplay(as.output,
		ui.WithErrorOutput(as.errOut),
		ui.WithStyler(as.styler),
		ui.WithUnicode(as.unicode),
		ui.WithPreferences(ctx.Preferences),
	)

	deps := actions.DefaultDeps(Name, display, ctx.PreferencesMut())
	deps.Printf = as.output.Printf
	deps.Version = func() string { return as.version }
	deps.ColorAllowed = as.colorAllowed

	return &App{
		Config:    as.config,
		Logger:    as.logger,
		Output:    as.output,
		Styler:    as.styler,
		Display:   display,
		Session:   ctx,
		Stack:     dispatchers.NewStack(actions.NewRoot(deps)),
		SessionID: as.sessionID,
		Version:   as.version,
	}
}

// newLogger returns a file logger when logging is wanted, NopLogger
// otherwise. An unwritable log file silently disables logging.
func newLogger(opts Options, cfg domain.ConfigProvider, sessionID string) domain.Logger {
	if opts.NoLog {
		return log.NopLogger{}
	}
	if opts.LogFile == "" && !boolSetting(cfg, domain.KeyEnableLog, false) {
		return log.NopLogger{}
	}

	path := opts.LogFile
	if path == "" {
		path = paths.LogFilePath()
	}
	level := opts.LogLevel
	if level == "" {
		level, _ = cfg.Get(domain.KeyLogLevel)
	}

	l, err := log.New(path, log.ParseLevel(level))
	if err != nil {
		return log.NopLogger{}
	}
	l.SetSession(sessionID)
	return l
}

func boolSetting(cfg domain.ConfigProvider, key string, fallback bool) bool {
	v, ok := cfg.Get(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// Close cleans up application resources.
func Close(a *App) error {
	if a == nil {
		return nil
	}
	if a.Reader != nil {
		_ = a.Reader.Close()
	}
	if a.Logger != nil {
		_ = a.Logger.Close()
	}
	return nil
}
