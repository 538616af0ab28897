package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"github.com/sm-menu/cli/internal/clierr"
	"github.com/sm-menu/cli/internal/dispatchers"
	"github.com/sm-menu/cli/internal/domain"
	"github.com/sm-menu/cli/internal/security"
	"github.com/sm-menu/cli/internal/session"
	"github.com/sm-menu/cli/internal/ui/style"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const progressWidth = 30

// Display renders everything the user sees besides the prompt: errors,
// command listings, help pages, notices and progress.
type Display struct {
	out     io.Writer
	errOut  io.Writer
	styler  domain.Styler
	unicode bool
	prefs   func() session.Preferences
}

// DisplayOption configures a Display.
type DisplayOption func(*Display)

// WithStyler sets the styler. The default is style.NopStyler.
func WithStyler(s domain.Styler) DisplayOption {
	return func(d *Display) {
		d.styler = s
	}
}

// WithErrorOutput sends error messages to w instead of stderr.
func WithErrorOutput(w io.Writer) DisplayOption {
	return func(d *Display) {
		d.errOut = w
	}
}

// WithUnicode chooses between unicode icons and ASCII fallbacks.
func WithUnicode(enabled bool) DisplayOption {
	return func(d *Display) {
		d.unicode = enabled
	}
}

// WithPreferences makes listings follow the live session preferences.
func WithPreferences(fn func() session.Preferences) DisplayOption {
	return func(d *Display) {
		d.prefs = fn
	}
}

func NewDisplay(out io.Writer, opts ...DisplayOption) *Display {
	d := &Display{
		out:     out,
		errOut:  os.Stderr,
		styler:  style.NopStyler{},
		unicode: true,
		prefs:   session.DefaultPreferences,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ShowError prints err with the icon and colour of its severity. An invalid
// command is followed by suggestions and the commands of the active menu.
func (d *Display) ShowError(err error, stack *dispatchers.Stack) {
	cliErr := clierr.Wrap(err)
	if cliErr == nil {
		return
	}

	sev := cliErr.Severity()
	line := sev.Icon(d.unicode) + " " + security.SanitizeForDisplay(cliErr.Error())
	switch sev {
	case clierr.SeverityWarning:
		line = d.styler.Warning(line)
	case clierr.SeverityCritical:
		line = d.styler.Critical(line)
	default:
		line = d.styler.Error(line)
	}
	fmt.Fprintln(d.errOut, line)

	if cliErr.Kind != clierr.KindInvalidCommand {
		return
	}
	if d.prefs().ShowSuggestions && len(cliErr.Suggestions) > 0 {
		fmt.Fprintln(d.errOut, d.styler.Muted("Did you mean: "+strings.Join(cliErr.Suggestions, ", ")+"?"))
	}
	if stack != nil {
		d.ShowAvailableCommands(stack)
	}
}

// ShowAvailableCommands lists the visible children of the active menu.
func (d *Display) ShowAvailableCommands(stack *dispatchers.Stack) {
	d.listCommands(stack.Top().Subcommands())
}

// ShowHelp prints the help page of cmd: title, description, aliases, usage
// and visible subcommands.
func (d *Display) ShowHelp(cmd dispatchers.Command) {
	name := cmd.Name()
	fmt.Fprintln(d.out, d.styler.Header(cases.Upper(language.Und).String(name)))
	fmt.Fprintln(d.out, strings.Repeat("=", runewidth.StringWidth(name)))
	fmt.Fprintln(d.out, cmd.Description())

	if aliases := cmd.Aliases(); len(aliases) > 0 {
		fmt.Fprintf(d.out, "\nAliases: %s\n", strings.Join(aliases, ", "))
	}
	fmt.Fprintf(d.out, "\nUsage: %s\n", cmd.Usage())

	if subs := dispatchers.Visible(cmd.Subcommands()); len(subs) > 0 {
		fmt.Fprintln(d.out, "\nSubcommands:")
		d.listCommands(subs)
	}
}

// ShowCategories prints commands grouped under their category headings.
func (d *Display) ShowCategories(groups []dispatchers.CategoryGroup) {
	for i, group := range groups {
		if i > 0 {
			fmt.Fprintln(d.out)
		}
		fmt.Fprintln(d.out, d.styler.Header(cases.Title(language.English).String(group.Category.String())+":"))
		d.listCommands(group.Commands)
	}
}

func (d *Display) listCommands(cmds []dispatchers.Command) {
	visible := dispatchers.Visible(cmds)
	if len(visible) == 0 {
		return
	}

	limit := d.prefs().MaxListItems
	if limit <= 0 || limit > len(visible) {
		limit = len(visible)
	}
	shown := visible[:limit]

	width := 0
	for _, cmd := range shown {
		width = max(width, runewidth.StringWidth(d.commandColumn(cmd)))
	}

	for _, cmd := range shown {
		plain := d.commandColumn(cmd)
		pad := strings.Repeat(" ", width-runewidth.StringWidth(plain))
		fmt.Fprintf(d.out, "  %s%s%s - %s\n", d.FormatCommandName(cmd), aliasSuffix(cmd), pad, cmd.Description())
	}
	if hidden := len(visible) - limit; hidden > 0 {
		fmt.Fprintln(d.out, d.styler.Muted(fmt.Sprintf("  ... and %d more", hidden)))
	}
}

// commandColumn is the name column as printed, without escape codes.
func (d *Display) commandColumn(cmd dispatchers.Command) string {
	if !d.styler.Enabled() {
		return cmd.Name() + aliasSuffix(cmd)
	}
	return displayName(cmd) + aliasSuffix(cmd)
}

func aliasSuffix(cmd dispatchers.Command) string {
	aliases := cmd.Aliases()
	if len(aliases) == 0 {
		return ""
	}
	upper := make([]string, len(aliases))
	for i, a := range aliases {
		upper[i] = strings.ToUpper(a)
	}
	return " (" + strings.Join(upper, ", ") + ")"
}

// displayName capitalises the first letter when an alias starts with it.
func displayName(cmd dispatchers.Command) string {
	name := cmd.Name()
	first, size := utf8.DecodeRuneInString(name)
	if first == utf8.RuneError || !firstLetterIsAlias(cmd, first) {
		return name
	}
	return string(unicode.ToUpper(first)) + name[size:]
}

func firstLetterIsAlias(cmd dispatchers.Command, first rune) bool {
	for _, alias := range cmd.Aliases() {
		r, _ := utf8.DecodeRuneInString(alias)
		if unicode.ToLower(r) == unicode.ToLower(first) {
			return true
		}
	}
	return false
}

// FormatCommandName renders a command name for listings. When styling is on
// the shortcut letter is emphasised and the name takes the command colour;
// otherwise the name is returned unchanged.
func (d *Display) FormatCommandName(cmd dispatchers.Command) string {
	if !d.styler.Enabled() {
		return cmd.Name()
	}
	name := displayName(cmd)
	if name == cmd.Name() {
		return d.styler.Command(name)
	}
	_, size := utf8.DecodeRuneInString(name)
	return d.styler.Emphasis(name[:size]) + d.styler.Command(name[size:])
}

// Success prints message with a check mark. Empty messages print nothing.
func (d *Display) Success(message string) {
	if message == "" {
		return
	}
	icon := "✓"
	if !d.unicode {
		icon = "OK"
	}
	fmt.Fprintln(d.out, d.styler.Success(icon+" "+message))
}

func (d *Display) Warning(message string) {
	icon := "⚠"
	if !d.unicode {
		icon = "WARNING"
	}
	fmt.Fprintln(d.out, d.styler.Warning(icon+" "+message))
}

func (d *Display) Info(message string) {
	icon := "ℹ"
	if !d.unicode {
		icon = "INFO"
	}
	fmt.Fprintln(d.out, d.styler.Info(icon+" "+message))
}

// Println writes a plain line.
func (d *Display) Println(message string) {
	fmt.Fprintln(d.out, message)
}

// Progress redraws a single-line progress bar: "label: [████░░] 40% (2/5)".
// Call FinishProgress once done.
func (d *Display) Progress(label string, current, total int64) {
	percent := 0.0
	if total > 0 {
		percent = float64(min(current, total)) / float64(total)
	}

	full, empty := '█', '░'
	if !d.unicode {
		full, empty = '=', '-'
	}
	bar := progress.New(
		progress.WithWidth(progressWidth),
		progress.WithoutPercentage(),
		progress.WithFillCharacters(full, empty),
		progress.WithColorProfile(termenv.Ascii),
	)

	fmt.Fprintf(d.out, "\r%s: [%s] %d%% (%d/%d)", label, bar.ViewAs(percent), int(percent*100), current, total)
}

func (d *Display) FinishProgress() {
	fmt.Fprintln(d.out)
}

// ClearScreen erases the terminal and homes the cursor.
func (d *Display) ClearScreen() {
	fmt.Fprint(d.out, "\x1b[2J\x1b[H")
}
