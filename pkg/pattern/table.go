package pattern

import (
	"regexp"
	"strings"

	"github.com/janek-w/mdspan/pkg/span"
)

// breakPriority lifts thematic breaks above the emphasis matchers that
// fire on the same '*' and '_' runs. A full-line break and an emphasis
// match can share both start and end offsets; priority is the only
// thing separating them then.
const breakPriority = 1

// Compiled matchers. Table order is only the match-generation order;
// precedence is decided entirely by Resolve.
var (
	reHeader   = regexp.MustCompile(`(?m)^(#{1,6}[ \t])(.*)$`)
	reBullet   = regexp.MustCompile(`(?m)^([ \t]*)([*+-])([ \t]+)`)
	reNumbered = regexp.MustCompile(`(?m)^([ \t]*)(\d+\.)([ \t]+)`)
	reBoldStar = regexp.MustCompile(`(\*\*)(.+?)(\*\*)`)
	reBoldLow  = regexp.MustCompile(`(__)(.+?)(__)`)
	reItalStar = regexp.MustCompile(`(\*)(.+?)(\*)`)
	reItalLow  = regexp.MustCompile(`(_)(.+?)(_)`)
	reStrike   = regexp.MustCompile(`(~~)(.+?)(~~)`)
	reCodeSpan = regexp.MustCompile("(`)([^`\n]+?)(`)")
	reFence    = regexp.MustCompile("(?s)(```)(.+?)(```)")
	reImage    = regexp.MustCompile(`(!)(\[)([^\]]*)(\]\()([^)]*)(\))`)
	reLink     = regexp.MustCompile(`(\[)([^\]]*)(\]\()([^)]*)(\))`)
	reBreak    = regexp.MustCompile(`(?m)^ {0,3}(?:(?:\*[ \t]*){3,}|(?:-[ \t]*){3,}|(?:_[ \t]*){3,})$`)
)

func headerStyle(groups []string) span.Style {
	level := 0
	if len(groups) > 0 {
		level = len(strings.TrimRight(groups[0], " \t"))
	}
	return span.HeadingStyle(level)
}

func fixedStyle(s span.Style) StyleFunc {
	return func([]string) span.Style { return s }
}

// DefaultTable returns the fixed pattern set recognized by the engine.
// The returned slice is freshly allocated; the patterns themselves are
// shared and immutable.
func DefaultTable() []Pattern {
	return []Pattern{
		{Matcher: reHeader, Kind: KindHeader, Style: headerStyle},
		{Matcher: reBullet, Kind: KindBullet, Style: fixedStyle(span.Style{})},
		{Matcher: reNumbered, Kind: KindNumbered, Style: fixedStyle(span.Style{})},
		{Matcher: reFence, Kind: KindCodeFence, Style: fixedStyle(span.Style{Code: true})},
		{Matcher: reCodeSpan, Kind: KindCodeSpan, Style: fixedStyle(span.Style{Code: true})},
		{Matcher: reBoldStar, Kind: KindBold, Style: fixedStyle(span.Style{Bold: true})},
		{Matcher: reBoldLow, Kind: KindBold, Style: fixedStyle(span.Style{Bold: true})},
		{Matcher: reItalStar, Kind: KindItalic, Style: fixedStyle(span.Style{Italic: true})},
		{Matcher: reItalLow, Kind: KindItalic, Style: fixedStyle(span.Style{Italic: true})},
		{Matcher: reStrike, Kind: KindStrike, Style: fixedStyle(span.Style{Strike: true})},
		{Matcher: reImage, Kind: KindImage, Style: fixedStyle(span.Style{Link: true})},
		{Matcher: reLink, Kind: KindLink, Style: fixedStyle(span.Style{Link: true})},
		{Matcher: reBreak, Kind: KindBreak, Priority: breakPriority, Style: fixedStyle(span.Style{Rule: true})},
	}
}

// ImageRanges returns the [start, end) offsets of every image reference
// in text. The display-space mapper uses this to place spacing regions
// with the exact same occurrences the engine will match.
func ImageRanges(text string) [][2]int {
	locs := reImage.FindAllStringIndex(text, -1)
	out := make([][2]int, len(locs))
	for i, loc := range locs {
		out[i] = [2]int{loc[0], loc[1]}
	}
	return out
}
