package actions

import (
	"fmt"
	"io"

	"github.com/sm-menu/cli/internal/clierr"
	"github.com/sm-menu/cli/internal/dispatchers"
	"github.com/sm-menu/cli/internal/security"
)

const defaultSaveName = "untitled.txt"

func loadCommand(deps Deps) dispatchers.Command {
	return newAction(dispatchers.Spec{
		Name:        "load",
		Aliases:     []string{"l"},
		Description: "Load a file from the filesystem",
		Usage:       "load <filename>",
		Category:    dispatchers.CategoryFile,
	}, func(args []string) (dispatchers.Result, error) {
		return load(args, deps)
	})
}

// load reads the whole file to report its size. The content is not kept.
func load(args []string, deps Deps) (dispatchers.Result, error) {
	if err := dispatchers.ExactArgs(args, 1); err != nil {
		return dispatchers.Result{}, err
	}
	name := args[0]
	if err := dispatchers.NotBlank(name, "Filename"); err != nil {
		return dispatchers.Result{}, err
	}

	_, _ = deps.Printf("Loading file: %s\n", security.SanitizeForDisplay(name))

	path, err := deps.ValidatePath(name)
	if err != nil {
		return dispatchers.Result{}, err
	}

	info, err := deps.Stat(path)
	if err != nil {
		return dispatchers.Result{}, clierr.FromIO(err)
	}
	if !info.Mode().IsRegular() {
		return dispatchers.Result{}, clierr.InvalidInput(fmt.Sprintf("Not a regular file: %s", security.SanitizeForDisplay(name)))
	}
	if err := security.ValidateFileSize(info.Size()); err != nil {
		return dispatchers.Result{}, err
	}

	f, err := deps.Open(path)
	if err != nil {
		return dispatchers.Result{}, clierr.FromIO(err)
	}
	defer func() { _ = f.Close() }()

	counter := &progressCounter{display: deps.Display, total: info.Size()}
	deps.Display.Progress("Loading", 0, info.Size())
	n, err := io.Copy(counter, f)
	deps.Display.FinishProgress()
	if err != nil {
		return dispatchers.Result{}, clierr.FromIO(err)
	}

	_, _ = deps.Printf("Loaded %d bytes from %s\n", n, path)
	return dispatchers.Continue(), nil
}

// progressCounter discards what it is given and redraws the progress bar.
type progressCounter struct {
	display Presenter
	read    int64
	total   int64
}

func (p *progressCounter) Write(b []byte) (int, error) {
	p.read += int64(len(b))
	p.display.Progress("Loading", p.read, max(p.total, p.read))
	return len(b), nil
}

func saveCommand(deps Deps) dispatchers.Command {
	return newAction(dispatchers.Spec{
		Name:        "save",
		Aliases:     []string{"s"},
		Description: "Save a file to the filesystem",
		Usage:       "save [filename]",
		Category:    dispatchers.CategoryFile,
	}, func(args []string) (dispatchers.Result, error) {
		return save(args, deps)
	})
}

// save checks where the file would go. Nothing is written.
func save(args []string, deps Deps) (dispatchers.Result, error) {
	name, given, err := dispatchers.OptionalArg(args)
	if err != nil {
		return dispatchers.Result{}, err
	}
	if !given {
		name = defaultSaveName
	}
	if err := dispatchers.NotBlank(name, "Filename"); err != nil {
		return dispatchers.Result{}, err
	}

	// A missing target is what saving creates.
	if _, err := deps.ValidatePath(name); err != nil && !clierr.IsKind(err, clierr.KindFileNotFound) {
		return dispatchers.Result{}, err
	}

	_, _ = deps.Printf("Saving file: %s\n", security.SanitizeForDisplay(name))
	return dispatchers.Continue(), nil
}

func versCommand(deps Deps) dispatchers.Command {
	return newAction(dispatchers.Spec{
		Name:        "vers",
		Aliases:     []string{"v"},
		Description: "Show version information about the application",
		Category:    dispatchers.CategorySystem,
	}, func(args []string) (dispatchers.Result, error) {
		return vers(args, deps)
	})
}

func vers(args []string, deps Deps) (dispatchers.Result, error) {
	if err := dispatchers.NoArgs(args); err != nil {
		return dispatchers.Result{}, err
	}
	_, _ = deps.Printf("%s > version %s\n", deps.AppName, deps.Version())
	return dispatchers.Continue(), nil
}
