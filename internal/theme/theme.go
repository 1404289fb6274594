package theme

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Launcher messages are written to stderr, so colors follow stderr's terminal
var renderer = lipgloss.NewRenderer(os.Stderr)

// Semantic colors
var (
	Error   = lipgloss.Color("#ff3b30") // Red
	Warning = lipgloss.Color("#ffcc00") // Yellow
	Muted   = lipgloss.Color("#8e8e93") // Gray
)

var (
	ErrorStyle = renderer.NewStyle().
			Foreground(Error).
			Bold(true)

	WarningStyle = renderer.NewStyle().
			Foreground(Warning).
			Bold(true)

	Faint = renderer.NewStyle().
		Foreground(Muted).
		Faint(true)
)

// ErrorMessage returns a formatted error message
func ErrorMessage(msg string) string {
	return ErrorStyle.Render("✗ " + msg)
}

// WarningMessage returns a formatted warning message
func WarningMessage(msg string) string {
	return WarningStyle.Render("⚠ " + msg)
}

// Hint returns a dimmed follow-up line
func Hint(msg string) string {
	return Faint.Render("  " + msg)
}
