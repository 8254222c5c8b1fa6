package span

// Style describes renderer-neutral text attributes. The engine only
// sets attributes; mapping them to a concrete visual technique (font
// weights, ANSI sequences) belongs to the rendering layer.
type Style struct {
	Bold   bool
	Italic bool
	Strike bool

	// Code marks inline code spans and fenced code block content.
	Code bool

	// Link marks link labels and image references.
	Link bool

	// Rule marks thematic break segments.
	Rule bool

	// Scale is a font size multiplier relative to the base size.
	// Zero means unscaled.
	Scale float64

	// HeadingLevel is 1..6 for heading segments, 0 otherwise.
	HeadingLevel int
}

// Merge overlays the set attributes of other onto s and returns the
// result. Base-style fields survive unless other sets them.
func (s Style) Merge(other Style) Style {
	out := s
	if other.Bold {
		out.Bold = true
	}
	if other.Italic {
		out.Italic = true
	}
	if other.Strike {
		out.Strike = true
	}
	if other.Code {
		out.Code = true
	}
	if other.Link {
		out.Link = true
	}
	if other.Rule {
		out.Rule = true
	}
	if other.Scale != 0 {
		out.Scale = other.Scale
	}
	if other.HeadingLevel != 0 {
		out.HeadingLevel = other.HeadingLevel
	}
	return out
}

// headingStyles holds the immutable style variant per heading level.
// Index 0 is unused. Scales follow the conventional HTML heading sizes
// and decrease monotonically from level 1 to level 6.
var headingStyles = [7]Style{
	{},
	{Bold: true, Scale: 2.0, HeadingLevel: 1},
	{Bold: true, Scale: 1.5, HeadingLevel: 2},
	{Bold: true, Scale: 1.17, HeadingLevel: 3},
	{Bold: true, Scale: 1.0, HeadingLevel: 4},
	{Bold: true, Scale: 0.83, HeadingLevel: 5},
	{Bold: true, Scale: 0.67, HeadingLevel: 6},
}

// HeadingStyle returns the style variant for an ATX heading level.
// Levels outside 1..6 clamp to the nearest valid level.
func HeadingStyle(level int) Style {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return headingStyles[level]
}
