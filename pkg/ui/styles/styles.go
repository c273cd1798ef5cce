// Package styles defines the visual styling for dotbind's terminal
// output. Semantic names, adaptive colors for light and dark themes,
// and plain output when stdout is not a terminal.
package styles

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var (
	// Success is used for per-path confirmation lines
	Success = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "42"})

	// Error is used for per-path failure lines on stderr
	Error = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "196"})

	// Header is used for section headers, e.g. base names in list output
	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "25", Dark: "39"})

	// Path is used for filesystem paths
	Path = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "250"})

	// Muted is used for secondary detail
	Muted = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "245", Dark: "243"})
)

func init() {
	// Piped output gets no escape sequences
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
