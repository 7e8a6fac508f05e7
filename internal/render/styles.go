// Package render formats cards, boards and batch summaries for the
// terminal.
package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lox/hanabot/internal/deck"
	"github.com/muesli/termenv"
)

// Suit styles, indexed by suit code
var suitStyles = [deck.NumSuits]lipgloss.Style{
	deck.Red:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
	deck.Yellow: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFEAA7")).Bold(true),
	deck.Green:  lipgloss.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
	deck.Blue:   lipgloss.NewStyle().Foreground(lipgloss.Color("#74B9FF")).Bold(true),
	deck.White:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Bold(true),
}

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Width(14)

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	BarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4"))
)

// SetColor turns colored output on or off. When on, the profile is taken
// from the environment.
func SetColor(enabled bool) {
	if !enabled {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
}
