package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// DefaultAccent is the PID red used when no accent color is configured.
const DefaultAccent = "160"

var (
	// Replaced by SetAccent once the config is loaded
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(DefaultAccent))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	lineStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	timeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// SetAccent updates the accent style used by plain CLI output and returns the
// matching form theme.
func SetAccent(color string) *huh.Theme {
	if color == "" {
		color = DefaultAccent
	}
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	return Theme(color)
}

// Accent renders s in the current accent color.
func Accent(s string) string {
	return accentStyle.Render(s)
}

// Error renders s in the error style.
func Error(s string) string {
	return errorStyle.Render(s)
}

// Theme returns a huh.Theme built around the given lipgloss color string.
func Theme(baseColor string) *huh.Theme {
	t := huh.ThemeCharm()
	p := lipgloss.Color(baseColor)

	t.Focused.Title = t.Focused.Title.Foreground(p).Bold(true)
	t.Focused.Base = t.Focused.Base.Border(lipgloss.RoundedBorder()).BorderForeground(p).Padding(0, 1)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(p)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(p)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(p)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(p)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("0")).Background(p)

	t.Blurred.Base = t.Blurred.Base.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)

	return t
}
