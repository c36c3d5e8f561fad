package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lumen-sh/lumen/internal/config"
)

// Styles holds all lipgloss styles for the launcher view, built from the
// theme colors in the config so users can restyle without rebuilding.
type Styles struct {
	Input     lipgloss.Style
	Result    lipgloss.Style
	Selected  lipgloss.Style
	Highlight lipgloss.Style
	Hint      lipgloss.Style
	Border    lipgloss.Style
	Panel     lipgloss.Style
}

// StylesFromConfig builds the style set from the configured theme.
func StylesFromConfig(ui config.UIConfig) Styles {
	text := lipgloss.Color(ui.TextColor)
	selBg := lipgloss.Color(ui.SelectionBg)
	selText := lipgloss.Color(ui.SelectionText)
	border := lipgloss.Color(ui.BorderColor)
	highlight := lipgloss.Color(ui.HighlightColor)

	return Styles{
		Input:     lipgloss.NewStyle().Foreground(text),
		Result:    lipgloss.NewStyle().Foreground(text),
		Selected:  lipgloss.NewStyle().Foreground(selText).Background(selBg).Bold(true),
		Highlight: lipgloss.NewStyle().Foreground(highlight).Bold(true),
		Hint:      lipgloss.NewStyle().Foreground(border),
		Border:    lipgloss.NewStyle().Foreground(border),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
	}
}

// NoColorStyles returns unstyled components for plain terminals.
func NoColorStyles() Styles {
	return Styles{
		Input:     lipgloss.NewStyle(),
		Result:    lipgloss.NewStyle(),
		Selected:  lipgloss.NewStyle().Reverse(true),
		Highlight: lipgloss.NewStyle().Bold(true),
		Hint:      lipgloss.NewStyle(),
		Border:    lipgloss.NewStyle(),
		Panel:     lipgloss.NewStyle(),
	}
}
