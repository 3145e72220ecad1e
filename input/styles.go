package input

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Styles controls how prompts, hints, and diagnostics are rendered.
type Styles struct {
	Prompt lipgloss.Style // the question text
	Hint   lipgloss.Style // defaults, option lists, [Y/n] markers
	Error  lipgloss.Style // validation diagnostics
}

// DefaultStyles returns the standard styling: cyan bold prompts, gray
// hints, red diagnostics.
func DefaultStyles() *Styles {
	return &Styles{
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true),
		Hint:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("red")),
	}
}

// autoStyles enables styling only when stdout is a terminal, so piped
// and redirected output stays plain.
func autoStyles() *Styles {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return DefaultStyles()
	}
	return nil
}
