// Package execute dispatches a selected result to the operating system:
// launching applications, opening URLs and files, running shell commands,
// and copying emoji to the clipboard.
package execute

import (
	"fmt"
	"log/slog"
	"net/url"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"

	lumenerr "github.com/lumen-sh/lumen/internal/errors"
	"github.com/lumen-sh/lumen/internal/query"
)

// searchURLFormat builds the web search address for a phrase.
const searchURLFormat = "https://duckduckgo.com/?q=%s"

// runner starts a command without waiting for it. Swappable in tests.
type runner func(name string, args ...string) error

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// Reap the child when it exits so finished launches do not linger
	// as zombies for the lifetime of the process.
	go func() { _ = cmd.Wait() }()
	return nil
}

// Executor turns a Result into an OS-level action. Actions are fire and
// forget: the launcher does not track what it starts.
type Executor struct {
	goos   string
	run    runner
	copy   func(string) error
	logger *slog.Logger
}

// New builds an executor for the current platform.
func New(logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{
		goos:   runtime.GOOS,
		run:    startDetached,
		copy:   clipboard.WriteAll,
		logger: logger,
	}
}

// Execute dispatches on the result kind.
func (e *Executor) Execute(r query.Result) error {
	switch r.Kind {
	case query.KindApp:
		return e.Launch(r.App.Exec)
	case query.KindShellCommand:
		return e.RunShell(r.Text)
	case query.KindWebSearch:
		return e.OpenURL(SearchURL(r.Text))
	case query.KindURL:
		return e.OpenURL(r.Text)
	case query.KindFile:
		return e.OpenPath(r.Path)
	case query.KindEmoji:
		return e.CopyText(r.Glyph)
	case query.KindCalculation:
		return e.CopyText(r.Text)
	case query.KindCurrency:
		return e.CopyText(query.FormatAmount(r.Amount))
	default:
		return lumenerr.New(lumenerr.ErrCodeInternal,
			fmt.Sprintf("no action for result kind %d", r.Kind), nil)
	}
}

// Launch starts an application command line through the shell, which
// handles .desktop-style arguments and quoting.
func (e *Executor) Launch(command string) error {
	e.logger.Debug("launching application", "command", command)
	return e.RunShell(command)
}

// RunShell runs a command under the platform shell, detached.
func (e *Executor) RunShell(command string) error {
	if e.goos == "windows" {
		return e.run("cmd", "/C", command)
	}
	return e.run("sh", "-c", command)
}

// OpenURL opens a URL in the default browser.
func (e *Executor) OpenURL(u string) error {
	e.logger.Debug("opening url", "url", u)
	return e.open(u)
}

// OpenPath opens a file with its default application.
func (e *Executor) OpenPath(path string) error {
	e.logger.Debug("opening path", "path", path)
	return e.open(path)
}

func (e *Executor) open(target string) error {
	switch e.goos {
	case "windows":
		// start treats its first quoted argument as a window title.
		return e.run("cmd", "/C", "start", "", target)
	case "darwin":
		return e.run("open", target)
	default:
		return e.run("xdg-open", target)
	}
}

// CopyText places text on the system clipboard.
func (e *Executor) CopyText(text string) error {
	e.logger.Debug("copying to clipboard", "length", len(text))
	return e.copy(text)
}

// SearchURL builds the web search URL for a phrase.
func SearchURL(phrase string) string {
	return fmt.Sprintf(searchURLFormat, url.QueryEscape(phrase))
}
