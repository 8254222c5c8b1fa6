// Package pretty realizes span trees as styled terminal output with
// Lipgloss. It is one possible rendering layer; the engine itself only
// emits abstract attributes.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains the styled renderers for each span attribute.
type Styles struct {
	Heading [7]lipgloss.Style // indexed by level, 0 unused

	Bold   lipgloss.Style
	Italic lipgloss.Style
	Strike lipgloss.Style
	Code   lipgloss.Style
	Link   lipgloss.Style
	Rule   lipgloss.Style

	// Syntax dims literal markdown markers on the focused line.
	Syntax lipgloss.Style

	// Embed styles the textual stand-in for image placeholders.
	Embed lipgloss.Style

	Text lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

func newColorStyles() *Styles {
	s := &Styles{
		Bold:   lipgloss.NewStyle().Bold(true),
		Italic: lipgloss.NewStyle().Italic(true),
		Strike: lipgloss.NewStyle().Strikethrough(true),
		Code:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Link:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Underline(true),
		Rule:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Syntax: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Embed:  lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		Text:   lipgloss.NewStyle(),
	}
	for level := 1; level <= 6; level++ {
		s.Heading[level] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	}
	return s
}

func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	s := &Styles{
		Bold:   plain,
		Italic: plain,
		Strike: plain,
		Code:   plain,
		Link:   plain,
		Rule:   plain,
		Syntax: plain,
		Embed:  plain,
		Text:   plain,
	}
	for level := 1; level <= 6; level++ {
		s.Heading[level] = plain
	}
	return s
}

// IsColorEnabled determines if color should be enabled based on mode
// and writer. Mode values: "auto" (default), "always", "never". In auto
// mode, color is enabled only if the writer is a TTY and NO_COLOR is
// not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
