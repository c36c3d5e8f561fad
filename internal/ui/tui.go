// Package ui renders the interactive launcher: a single input line over
// a live result list, re-resolved on every keystroke.
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lumen-sh/lumen/internal/config"
	"github.com/lumen-sh/lumen/internal/query"
)

// Dispatcher executes the selected result. Satisfied by execute.Executor.
type Dispatcher interface {
	Execute(r query.Result) error
}

// resultsMsg delivers a finished resolution to the model. The generation
// lets the model drop sets that were superseded while resolving.
type resultsMsg struct {
	gen uint64
	set *query.ResultSet
}

// themeMsg applies a reloaded configuration's theme without restarting.
type themeMsg struct {
	styles Styles
}

// Model is the bubbletea model for the launcher window.
type Model struct {
	input    textinput.Model
	resolver *query.Resolver
	dispatch Dispatcher
	styles   Styles

	ctx      context.Context
	set      *query.ResultSet
	width    int
	height   int
	quitting bool
	execErr  error
}

// NewModel wires the launcher model. ctx bounds all resolutions started
// by the model; canceling it stops in-flight lookups.
func NewModel(ctx context.Context, resolver *query.Resolver, dispatch Dispatcher, styles Styles) *Model {
	in := textinput.New()
	in.Placeholder = "Search..."
	in.Prompt = "> "
	in.Focus()

	return &Model{
		input:    in,
		resolver: resolver,
		dispatch: dispatch,
		styles:   styles,
		ctx:      ctx,
		set:      query.NewResultSet(nil),
		width:    60,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// resolveCmd resolves the current query off the update loop.
func (m *Model) resolveCmd(q string) tea.Cmd {
	return func() tea.Msg {
		set, gen := m.resolver.Resolve(m.ctx, q)
		return resultsMsg{gen: gen, set: set}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "up", "ctrl+p":
			m.set.Prev()
			return m, nil

		case "down", "ctrl+n", "tab":
			m.set.Next()
			return m, nil

		case "enter":
			if selected, ok := m.set.Selected(); ok {
				m.execErr = m.dispatch.Execute(selected)
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			return m, tea.Batch(cmd, m.resolveCmd(m.input.Value()))
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case themeMsg:
		m.styles = msg.styles
		return m, nil

	case resultsMsg:
		if !m.resolver.Current(msg.gen) {
			// A newer query is already resolving; this set is stale.
			return m, nil
		}
		prev := m.set.Selection()
		m.set = msg.set
		m.set.SetSelection(prev)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// ExecError reports the dispatch error, if any, after the program exits.
func (m *Model) ExecError() error {
	return m.execErr
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Input.Render(m.input.View()))
	b.WriteString("\n")

	for i, r := range m.set.Results() {
		line := m.renderResult(r, i == m.set.Selection())
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Hint.Render("↑/↓ select · enter run · esc close"))

	width := m.width - 4
	if width < 40 {
		width = 40
	}
	return m.styles.Panel.Width(width).Render(b.String())
}

// renderResult renders one result line, highlighting matched name
// characters for application results.
func (m *Model) renderResult(r query.Result, selected bool) string {
	marker := "  "
	style := m.styles.Result
	if selected {
		marker = "▸ "
		style = m.styles.Selected
	}

	if r.Kind == query.KindApp && len(r.App.MatchSpan) > 0 && !selected {
		return marker + highlightName(r.App.Name, r.App.MatchSpan, m.styles.Result, m.styles.Highlight)
	}
	return marker + style.Render(r.Title())
}

// highlightName styles the matched byte positions of name.
func highlightName(name string, span []int, base, hi lipgloss.Style) string {
	matched := make(map[int]bool, len(span))
	for _, i := range span {
		matched[i] = true
	}

	var b strings.Builder
	var run strings.Builder
	flush := func(isMatch bool) {
		if run.Len() == 0 {
			return
		}
		if isMatch {
			b.WriteString(hi.Render(run.String()))
		} else {
			b.WriteString(base.Render(run.String()))
		}
		run.Reset()
	}

	inMatch := false
	for i := 0; i < len(name); i++ {
		if matched[i] != inMatch {
			flush(inMatch)
			inMatch = matched[i]
		}
		run.WriteByte(name[i])
	}
	flush(inMatch)
	return b.String()
}

// Run starts the launcher program and blocks until it exits, returning
// any error from dispatching the selected result. Configs arriving on
// updates restyle the running view; a nil channel disables reloading.
func Run(ctx context.Context, resolver *query.Resolver, dispatch Dispatcher, styles Styles, updates <-chan *config.Config) error {
	model := NewModel(ctx, resolver, dispatch, styles)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if updates != nil {
		go func() {
			for {
				select {
				case cfg, ok := <-updates:
					if !ok {
						return
					}
					program.Send(themeMsg{styles: StylesFromConfig(cfg.UI)})
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("launcher ui: %w", err)
	}
	if m, ok := final.(*Model); ok {
		return m.ExecError()
	}
	return nil
}
