// Package engine runs the render pipeline: pattern collection, overlap
// resolution and span building, plus the offset conversions a cursor-
// owning host needs.
package engine

import (
	"github.com/janek-w/mdspan/pkg/pattern"
	"github.com/janek-w/mdspan/pkg/span"
	"github.com/janek-w/mdspan/pkg/textmap"
)

// NoFocus renders with no focused line: every syntax marker collapses.
const NoFocus = -1

// ImagePolicy selects how embedded images are realized.
type ImagePolicy uint8

const (
	// ImageInline replaces the leading "!" offset slot of an image
	// reference with an embed sized to a multiple of the line height.
	// The rest of the reference collapses; on the focused line the
	// literal markdown shows instead.
	ImageInline ImagePolicy = iota

	// ImageBlock collapses the whole reference and gives the embed
	// dedicated lines, matching the synthetic spacing the SpaceMapper
	// inserts into the display text.
	ImageBlock
)

// inlineEmbedLines is the embed height in line heights under the inline
// policy.
const inlineEmbedLines = 5

// Default layout metrics used when Options leaves them zero.
const (
	defaultLineHeight  = 16.0
	defaultImageHeight = 160.0
	defaultImageWidth  = 240.0
)

// Options configures an engine instance. The zero value renders with
// the inline image policy and default metrics.
type Options struct {
	ImagePolicy ImagePolicy

	// LineHeight is the host's line height in pixels; it sizes inline
	// embeds and the block policy's spacing.
	LineHeight float64

	// ImageHeight and ImageWidth give the embed box under the block
	// policy.
	ImageHeight float64
	ImageWidth  float64

	// ShowAllSyntax renders every marker literally regardless of focus,
	// the configuration for hosts without focus tracking.
	ShowAllSyntax bool

	// DetectLanguage attaches a detected language to fenced code block
	// content segments.
	DetectLanguage bool

	// OnActivate receives the target of an activated link or image.
	OnActivate func(target string)
}

func (o Options) withDefaults() Options {
	if o.LineHeight <= 0 {
		o.LineHeight = defaultLineHeight
	}
	if o.ImageHeight <= 0 {
		o.ImageHeight = defaultImageHeight
	}
	if o.ImageWidth <= 0 {
		o.ImageWidth = defaultImageWidth
	}
	return o
}

// Engine turns source text into span trees. It is stateless over its
// inputs except for the activation callbacks of the current render
// generation and, under the block image policy, the current spacing
// regions; both are rebuilt on every Render call.
//
// An engine is single-threaded: each render runs to completion before
// its result is used, and results are published as one immutable tree
// per call.
type Engine struct {
	opts   Options
	table  []pattern.Pattern
	active []*span.Activation
	mapper *textmap.SpaceMapper
}

// New creates an engine with the default pattern table.
func New(opts Options) *Engine {
	return &Engine{
		opts:  opts.withDefaults(),
		table: pattern.DefaultTable(),
	}
}

// Render produces the span tree for text with the given focused line
// (NoFocus for none) and inherited base style. It must be called again
// whenever text or the focused line changes.
//
// The previous generation's activation callbacks are released before
// the new tree is built, so stale handles never fire.
func (e *Engine) Render(text string, focusedLine int, base span.Style) *span.Tree {
	e.releaseActive()

	if e.opts.ImagePolicy == ImageBlock {
		e.mapper = textmap.NewSpaceMapper(text, e.opts.ImageHeight, e.opts.LineHeight)
	}

	resolved := pattern.Resolve(pattern.Collect(e.table, text))

	b := newBuilder(text, focusedLine, base, e.opts)
	tree := b.build(resolved)

	e.active = tree.Activations
	return tree
}

func (e *Engine) releaseActive() {
	for _, a := range e.active {
		a.Release()
	}
	e.active = nil
}

// DisplayText returns the display text of the last render under the
// block policy, or the empty string when no mapping is active.
func (e *Engine) DisplayText() string {
	if e.mapper == nil {
		return ""
	}
	return e.mapper.DisplayText()
}

// SourceToDisplay converts a source offset to display space. Without an
// active mapping it is the identity.
func (e *Engine) SourceToDisplay(offset int) int {
	if e.mapper == nil {
		return offset
	}
	return e.mapper.SourceToDisplay(offset)
}

// DisplayToSource converts a display offset to source space. Without an
// active mapping it is the identity.
func (e *Engine) DisplayToSource(offset int) int {
	if e.mapper == nil {
		return offset
	}
	return e.mapper.DisplayToSource(offset)
}

// FocusedLineFromOffset recomputes the focused line from a host
// selection offset. Host offsets are display-space when the block image
// policy is active, so they pass through DisplayToSource first.
func (e *Engine) FocusedLineFromOffset(text string, offset int) int {
	if e.mapper != nil {
		offset = e.mapper.DisplayToSource(offset)
	}
	return textmap.LineOf(text, offset)
}
