package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
	ColorSuccess   = lipgloss.Color("34")  // Green
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorError     = lipgloss.Color("196") // Red
	ColorMuted     = lipgloss.Color("240") // Dark gray
)

// stderrRenderer detects the colour profile of stderr rather than stdout,
// since stdout may be redirected to a report file while stderr stays on the terminal.
var stderrRenderer = lipgloss.NewRenderer(os.Stderr)

// Styles for status output written to stderr.
var (
	TitleStyle = stderrRenderer.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SuccessStyle = stderrRenderer.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = stderrRenderer.NewStyle().
			Foreground(ColorError).
			Bold(true)

	WarningStyle = stderrRenderer.NewStyle().
			Foreground(ColorWarning)

	MutedStyle = stderrRenderer.NewStyle().
			Foreground(ColorMuted)
)

// Symbols for visual feedback.
const (
	SymbolCheck = "✓"
	SymbolCross = "✗"
)

// Styled renders text with style when stderr supports colour and returns it
// unchanged otherwise.
func Styled(style lipgloss.Style, text string) string {
	if !StderrSupportsColor() {
		return text
	}
	return style.Render(text)
}
