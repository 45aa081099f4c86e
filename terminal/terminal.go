// Package terminal provides pre-formatted message templates for consistent
// CLI output. Color and emphasis degrade gracefully on dumb terminals.
package terminal

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	palette = struct {
		red     lipgloss.Color
		green   lipgloss.Color
		yellow  lipgloss.Color
		blue    lipgloss.Color
		cyan    lipgloss.Color
		magenta lipgloss.Color
	}{
		red:     lipgloss.Color("9"),
		green:   lipgloss.Color("10"),
		yellow:  lipgloss.Color("11"),
		blue:    lipgloss.Color("12"),
		cyan:    lipgloss.Color("14"),
		magenta: lipgloss.Color("13"),
	}

	successStyle = lipgloss.NewStyle().Bold(true).Foreground(palette.green)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(palette.red)
	warningStyle = lipgloss.NewStyle().Bold(true).Foreground(palette.yellow)
	infoStyle    = lipgloss.NewStyle().Bold(true).Foreground(palette.blue)
	debugStyle   = lipgloss.NewStyle().Bold(true).Foreground(palette.cyan)

	dimStyle       = lipgloss.NewStyle().Faint(true)
	highlightStyle = lipgloss.NewStyle().Foreground(palette.magenta)
)

func labeled(style lipgloss.Style, label, message string) string {
	return style.Render(label) + " " + message
}

func Success(message string) string {
	return labeled(successStyle, "[SUCCESS]", message)
}

func Error(message string) string {
	return labeled(errorStyle, "[ERROR]", message)
}

func Warning(message string) string {
	return labeled(warningStyle, "[WARNING]", message)
}

func Info(message string) string {
	return labeled(infoStyle, "[INFO]", message)
}

func Process(message string) string {
	return labeled(infoStyle, "[PROCESS]", message)
}

func Debug(message string) string {
	return labeled(debugStyle, "[DEBUG]", message)
}

func DryRun(message string) string {
	return labeled(debugStyle, "[DRY-RUN]", message)
}

// Dim renders de-emphasized text, e.g. echoed external commands.
func Dim(text string) string {
	return dimStyle.Render(text)
}

// Highlight renders emphasized inline text, e.g. file names.
func Highlight(text string) string {
	return highlightStyle.Render(text)
}
