package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles for the game screen chrome.
type Theme struct {
	Title lipgloss.Style
	Board lipgloss.Style // Border around the play field

	// Side panel styles
	Panel      lipgloss.Style
	PanelLabel lipgloss.Style
	PanelValue lipgloss.Style
	Editing    lipgloss.Style

	// Control hints shown on start/retry
	Control lipgloss.Style
	Status  lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Title: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true).Padding(0, 1),
		Board: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(sidePanelWidth),
		PanelLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		PanelValue: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Editing:    lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),

		Control: lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
	}
}

// MonochromeTheme returns a grayscale theme.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Title = theme.Title.Foreground(lipgloss.Color("255"))
	theme.Board = theme.Board.BorderForeground(lipgloss.Color("250"))
	theme.Control = theme.Control.Foreground(lipgloss.Color("250"))
	theme.Editing = theme.Editing.Background(lipgloss.Color("240"))
	return theme
}
