// Package span defines the output model of the annotation engine: flat
// ordered segments, abstract style attributes, embed placeholders, and
// per-render activation callbacks.
package span

// Visibility controls how a renderer realizes a segment.
// The engine never decides zero-width versus omitted; that is the
// rendering layer's call.
type Visibility uint8

const (
	// Visible segments are rendered with their display text.
	Visible Visibility = iota

	// Collapsed segments occupy no visual space. Their Text still
	// carries the covered source characters so the tree remains a
	// structure-preserving projection of the source.
	Collapsed
)

// Embed describes a non-text placeholder (an image) occupying one slot
// in the segment sequence.
type Embed struct {
	// Target is the raw URL from the image reference.
	Target string

	// Alt is the alt text from the image reference.
	Alt string

	// Width and Height are the requested display box in pixels.
	// Zero width means "natural width".
	Width  float64
	Height float64
}

// Segment is one styled, contiguous unit of engine output: either a
// text run or an embed placeholder.
type Segment struct {
	// Start and End are the half-open byte range of source text this
	// segment accounts for. Synthetic segments (spacing newlines under
	// the block image policy) have Start == End.
	Start int
	End   int

	// Text is the display text. It usually equals the covered source
	// slice; marker substitutions (list bullets, thematic-break glyphs)
	// and synthetic spacing differ from it.
	Text string

	// Style carries the renderer-neutral attributes for this segment.
	Style Style

	// Visibility declares whether the segment is shown or collapsed.
	Visibility Visibility

	// Embed is non-nil for placeholder segments. Embed segments have
	// empty Text.
	Embed *Embed

	// Activation is non-nil for segments that can be activated by the
	// host (link labels, image embeds).
	Activation *Activation

	// Lang is the detected language for fenced-code content segments.
	Lang string
}

// IsEmbed reports whether the segment is an embed placeholder.
func (s Segment) IsEmbed() bool {
	return s.Embed != nil
}

// IsSynthetic reports whether the segment accounts for no source text.
func (s Segment) IsSynthetic() bool {
	return s.Start == s.End && s.Text != ""
}

// Tree is one render generation: the ordered segments plus the
// activation callbacks owned by that generation. The caller releases
// the previous generation before using a new one.
type Tree struct {
	Segments    []Segment
	Activations []*Activation
}

// SourceLen returns the number of source bytes accounted for by the
// tree's segments.
func (t *Tree) SourceLen() int {
	n := 0
	for _, s := range t.Segments {
		n += s.End - s.Start
	}
	return n
}

// Covers reports whether the segments tile the range [0, n) in order:
// every byte of an n-byte source is accounted for exactly once.
// Synthetic segments are skipped.
func (t *Tree) Covers(n int) bool {
	pos := 0
	for _, s := range t.Segments {
		if s.Start == s.End {
			continue
		}
		if s.Start != pos || s.End < s.Start {
			return false
		}
		pos = s.End
	}
	return pos == n
}

// Release invalidates every activation owned by the tree. Safe to call
// on a nil tree and more than once.
func (t *Tree) Release() {
	if t == nil {
		return
	}
	for _, a := range t.Activations {
		a.Release()
	}
}
