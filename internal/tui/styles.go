package tui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	primaryColor = lipgloss.Color("99")
	warningColor = lipgloss.Color("226")
	errorColor   = lipgloss.Color("196")
	mutedColor   = lipgloss.Color("245")
	accentColor  = lipgloss.Color("212")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingRight(2)

	metaStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	swatchStyle = lipgloss.NewStyle().
			Height(5).
			Align(lipgloss.Center, lipgloss.Center)

	cursorStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Align(lipgloss.Center)

	toastStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true).
			MarginTop(1)

	exportBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2).
			MarginTop(1)

	confirmBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(warningColor).
			Padding(1, 4)

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)
)

// Label foregrounds for swatches.
const (
	darkLabel  = "#111111"
	lightLabel = "#FFFFFF"
)

// labelColor picks a readable text color for a swatch using CIE L*.
func labelColor(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return lightLabel
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return darkLabel
	}
	return lightLabel
}
