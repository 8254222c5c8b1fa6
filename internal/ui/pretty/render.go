package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/janek-w/mdspan/pkg/span"
)

// Renderer realizes a span tree as terminal text. Collapsed segments
// are omitted entirely; embeds become a textual stand-in.
type Renderer struct {
	styles *Styles
	width  int
}

// NewRenderer creates a renderer. width is the wrap width in columns;
// 0 disables wrapping.
func NewRenderer(styles *Styles, width int) *Renderer {
	return &Renderer{styles: styles, width: width}
}

// Render returns the styled terminal text for a span tree.
func (r *Renderer) Render(tree *span.Tree) string {
	var b strings.Builder
	for _, seg := range tree.Segments {
		if seg.Visibility == span.Collapsed {
			continue
		}
		if seg.IsEmbed() {
			b.WriteString(r.styles.Embed.Render(embedStandIn(seg.Embed)))
			continue
		}
		b.WriteString(r.styleFor(seg).Render(seg.Text))
	}

	out := b.String()
	if r.width > 0 {
		out = wordwrap.String(out, r.width)
	}
	return out
}

func embedStandIn(e *span.Embed) string {
	if e.Alt != "" {
		return fmt.Sprintf("[image: %s]", e.Alt)
	}
	return fmt.Sprintf("[image: %s]", e.Target)
}

// styleFor maps abstract span attributes to one lipgloss style.
// Heading wins, then the inline attributes stack.
func (r *Renderer) styleFor(seg span.Segment) lipgloss.Style {
	s := seg.Style
	if s.HeadingLevel >= 1 && s.HeadingLevel <= 6 {
		return r.styles.Heading[s.HeadingLevel]
	}
	if s.Rule {
		return r.styles.Rule
	}
	if s.Code {
		return r.styles.Code
	}
	if s.Link {
		return r.styles.Link
	}

	out := r.styles.Text
	if s.Bold {
		out = out.Bold(true)
	}
	if s.Italic {
		out = out.Italic(true)
	}
	if s.Strike {
		out = out.Strikethrough(true)
	}
	return out
}
