package engine

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/janek-w/mdspan/pkg/langdetect"
	"github.com/janek-w/mdspan/pkg/pattern"
	"github.com/janek-w/mdspan/pkg/span"
	"github.com/janek-w/mdspan/pkg/textmap"
)

// bulletGlyph replaces unordered list markers off the focused line.
// ruleGlyph builds the substituted thematic break line.
const (
	bulletGlyph = "•"
	ruleGlyph   = "─"
)

// builder walks the text left to right using resolved matches as
// anchors and emits the flat segment sequence. One builder serves one
// render call.
type builder struct {
	text string
	base span.Style
	opts Options

	focused    bool
	focusStart int
	focusEnd   int

	segs []span.Segment
	acts []*span.Activation
}

func newBuilder(text string, focusedLine int, base span.Style, opts Options) *builder {
	b := &builder{text: text, base: base, opts: opts}
	if focusedLine >= 0 {
		b.focused = true
		b.focusStart, b.focusEnd = textmap.LineRange(text, focusedLine)
	}
	return b
}

func (b *builder) build(resolved []pattern.RawMatch) *span.Tree {
	pos := 0
	for _, m := range resolved {
		b.gap(pos, m.Start)
		b.dispatch(m)
		pos = m.End
	}
	if pos < len(b.text) {
		b.gap(pos, len(b.text))
	}
	return &span.Tree{Segments: b.segs, Activations: b.acts}
}

// gap emits the plain segment between two anchors. Empty gaps before a
// match are emitted too, so the segment shape for a given match set is
// deterministic.
func (b *builder) gap(start, end int) {
	b.segs = append(b.segs, span.Segment{
		Start:      start,
		End:        end,
		Text:       b.text[start:end],
		Style:      b.base,
		Visibility: span.Visible,
	})
}

// syntaxVisible reports whether a match's syntax markers stay literal:
// always in show-all mode, otherwise only when the match touches the
// focused line.
func (b *builder) syntaxVisible(m pattern.RawMatch) bool {
	if b.opts.ShowAllSyntax {
		return true
	}
	if !b.focused {
		return false
	}
	return m.Start < b.focusEnd && m.End > b.focusStart
}

func (b *builder) dispatch(m pattern.RawMatch) {
	switch m.Kind {
	case pattern.KindHeader:
		if len(m.Groups) == 2 {
			b.header(m)
			return
		}
	case pattern.KindBullet, pattern.KindNumbered:
		if len(m.Groups) == 3 {
			b.list(m)
			return
		}
	case pattern.KindBold, pattern.KindItalic, pattern.KindStrike, pattern.KindCodeSpan:
		if len(m.Groups) == 3 {
			b.delimited(m)
			return
		}
	case pattern.KindCodeFence:
		if len(m.Groups) == 3 {
			b.fence(m)
			return
		}
	case pattern.KindLink:
		if len(m.Groups) == 5 {
			b.link(m)
			return
		}
	case pattern.KindImage:
		if len(m.Groups) == 6 {
			b.image(m)
			return
		}
	case pattern.KindBreak:
		b.rule(m)
		return
	}
	b.fallback(m)
}

// fallback emits the whole raw match as one visible segment carrying
// only the category's base style. Text is never dropped.
func (b *builder) fallback(m pattern.RawMatch) {
	b.segs = append(b.segs, span.Segment{
		Start:      m.Start,
		End:        m.End,
		Text:       b.text[m.Start:m.End],
		Style:      b.base.Merge(m.Style),
		Visibility: span.Visible,
	})
}

func (b *builder) emit(g pattern.Group, style span.Style, vis span.Visibility) {
	b.segs = append(b.segs, span.Segment{
		Start:      g.Start,
		End:        g.End,
		Text:       g.Text,
		Style:      style,
		Visibility: vis,
	})
}

func syntaxVisibility(visible bool) span.Visibility {
	if visible {
		return span.Visible
	}
	return span.Collapsed
}

// header: marker prefix plus heading text. The prefix collapses off the
// focused line; the text always shows, styled per level.
func (b *builder) header(m pattern.RawMatch) {
	style := b.base.Merge(m.Style)
	b.emit(m.Groups[0], style, syntaxVisibility(b.syntaxVisible(m)))
	b.emit(m.Groups[1], style, span.Visible)
}

// list: indentation, marker, following whitespace. Off the focused line
// unordered markers become a bold bullet glyph; ordered markers keep
// their literal digits and dot, bolded. All three segments stay
// visible; the substitution is a glyph swap, not a collapse.
func (b *builder) list(m pattern.RawMatch) {
	indent, marker, space := m.Groups[0], m.Groups[1], m.Groups[2]
	b.emit(indent, b.base, span.Visible)

	if b.syntaxVisible(m) {
		b.emit(marker, b.base, span.Visible)
	} else {
		text := marker.Text
		if m.Kind == pattern.KindBullet {
			text = bulletGlyph
		}
		b.segs = append(b.segs, span.Segment{
			Start:      marker.Start,
			End:        marker.End,
			Text:       text,
			Style:      b.base.Merge(span.Style{Bold: true}),
			Visibility: span.Visible,
		})
	}

	b.emit(space, b.base, span.Visible)
}

// delimited: opening delimiter, content, closing delimiter for bold,
// italic, strikethrough and inline code. Delimiters collapse off the
// focused line; content always shows with the category's attributes.
func (b *builder) delimited(m pattern.RawMatch) {
	style := b.base.Merge(m.Style)
	vis := syntaxVisibility(b.syntaxVisible(m))
	b.emit(m.Groups[0], style, vis)
	b.emit(m.Groups[1], style, span.Visible)
	b.emit(m.Groups[2], style, vis)
}

// fence: same shape as delimited, with language detection on the block
// content when enabled. The fence info string wins over content-based
// detection.
func (b *builder) fence(m pattern.RawMatch) {
	style := b.base.Merge(m.Style)
	vis := syntaxVisibility(b.syntaxVisible(m))
	b.emit(m.Groups[0], style, vis)

	content := m.Groups[1]
	seg := span.Segment{
		Start:      content.Start,
		End:        content.End,
		Text:       content.Text,
		Style:      style,
		Visibility: span.Visible,
	}
	if b.opts.DetectLanguage {
		info, body, _ := strings.Cut(content.Text, "\n")
		seg.Lang = langdetect.Language(info, []byte(body))
	}
	b.segs = append(b.segs, seg)

	b.emit(m.Groups[2], style, vis)
}

// rule: one visible segment. On the focused line it echoes the literal
// matched text; elsewhere a horizontal-line glyph repeated to the same
// character count, so per-line text flow and newline counting stay
// intact. Never an embed.
func (b *builder) rule(m pattern.RawMatch) {
	text := b.text[m.Start:m.End]
	if !b.syntaxVisible(m) {
		text = strings.Repeat(ruleGlyph, utf8.RuneCountInString(text))
	}
	b.segs = append(b.segs, span.Segment{
		Start:      m.Start,
		End:        m.End,
		Text:       text,
		Style:      b.base.Merge(m.Style),
		Visibility: span.Visible,
	})
}

// link: bracket, label, middle, url, close paren. The label always
// shows and carries the activation; everything else collapses off the
// focused line.
func (b *builder) link(m pattern.RawMatch) {
	style := b.base.Merge(m.Style)
	vis := syntaxVisibility(b.syntaxVisible(m))
	label, url := m.Groups[1], m.Groups[3]

	act := span.NewActivation(url.Text, b.opts.OnActivate)
	b.acts = append(b.acts, act)

	b.emit(m.Groups[0], style, vis)
	b.segs = append(b.segs, span.Segment{
		Start:      label.Start,
		End:        label.End,
		Text:       label.Text,
		Style:      style,
		Visibility: span.Visible,
		Activation: act,
	})
	b.emit(m.Groups[2], style, vis)
	b.emit(url, style, vis)
	b.emit(m.Groups[4], style, vis)
}

func (b *builder) image(m pattern.RawMatch) {
	if b.opts.ImagePolicy == ImageBlock {
		b.imageBlock(m)
		return
	}
	b.imageInline(m)
}

// imageInline: off the focused line the embed occupies exactly the
// leading "!" character's offset slot and the remaining literal
// characters collapse, keeping a 1:1 offset correspondence with the
// source. On the focused line the full literal markdown shows instead.
func (b *builder) imageInline(m pattern.RawMatch) {
	style := b.base.Merge(m.Style)
	if b.syntaxVisible(m) {
		b.fallback(m)
		return
	}

	bang := m.Groups[0]
	alt, url := m.Groups[2], m.Groups[4]

	act := span.NewActivation(url.Text, b.opts.OnActivate)
	b.acts = append(b.acts, act)

	b.segs = append(b.segs, span.Segment{
		Start: bang.Start,
		End:   bang.End,
		Style: style,
		Embed: &span.Embed{
			Target: url.Text,
			Alt:    alt.Text,
			Height: inlineEmbedLines * b.opts.LineHeight,
		},
		Visibility: span.Visible,
		Activation: act,
	})
	for _, g := range m.Groups[1:] {
		b.emit(g, style, span.Collapsed)
	}
}

// imageBlock: the full markdown collapses and the embed gets dedicated
// lines, with literal newline segments matching the spacing the
// SpaceMapper inserts for the same region. Focus does not change this
// shape; the display-space mapping has no notion of a focused line and
// the two must agree.
func (b *builder) imageBlock(m pattern.RawMatch) {
	style := b.base.Merge(m.Style)
	alt, url := m.Groups[2], m.Groups[4]

	act := span.NewActivation(url.Text, b.opts.OnActivate)
	b.acts = append(b.acts, act)

	b.segs = append(b.segs, span.Segment{
		Start:      m.Start,
		End:        m.End,
		Text:       b.text[m.Start:m.End],
		Style:      style,
		Visibility: span.Collapsed,
	})

	spacing := strings.Repeat("\n", b.spacingNewlines())
	b.segs = append(b.segs, span.Segment{
		Start:      m.Start,
		End:        m.Start,
		Text:       spacing,
		Style:      b.base,
		Visibility: span.Visible,
	})
	b.segs = append(b.segs, span.Segment{
		Start: m.End,
		End:   m.End,
		Style: style,
		Embed: &span.Embed{
			Target: url.Text,
			Alt:    alt.Text,
			Width:  b.opts.ImageWidth,
			Height: b.opts.ImageHeight,
		},
		Visibility: span.Visible,
		Activation: act,
	})
	b.segs = append(b.segs, span.Segment{
		Start:      m.End,
		End:        m.End,
		Text:       spacing,
		Style:      b.base,
		Visibility: span.Visible,
	})
}

// spacingNewlines mirrors the SpaceMapper's insertion count for one
// image region.
func (b *builder) spacingNewlines() int {
	if b.opts.LineHeight <= 0 {
		return 1
	}
	return int(math.Ceil(b.opts.ImageHeight / b.opts.LineHeight))
}
