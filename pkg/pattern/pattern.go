// Package pattern implements the matcher table, match collection and
// overlap resolution that drive the annotation engine. Patterns are
// regular expressions over the raw source text; resolution turns their
// overlapping occurrences into a single ordered, non-overlapping set.
package pattern

import (
	"regexp"

	"github.com/janek-w/mdspan/pkg/span"
)

// Category is the coarse classification a match carries into span
// building.
type Category uint8

const (
	CategoryHeader Category = iota
	CategoryList
	CategoryEmphasis
	CategoryCode
	CategoryImage
	CategoryLink
	CategoryThematicBreak
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryHeader:
		return "header"
	case CategoryList:
		return "list"
	case CategoryEmphasis:
		return "inline-emphasis"
	case CategoryCode:
		return "code"
	case CategoryImage:
		return "image"
	case CategoryLink:
		return "link"
	case CategoryThematicBreak:
		return "thematic-break"
	default:
		return "unknown"
	}
}

// Kind identifies the exact pattern within a category. The builder
// dispatches on it: ordered and unordered list markers collapse
// differently, and fenced code blocks get language detection that
// inline code spans do not.
type Kind uint8

const (
	KindHeader Kind = iota
	KindBullet
	KindNumbered
	KindBold
	KindItalic
	KindStrike
	KindCodeSpan
	KindCodeFence
	KindImage
	KindLink
	KindBreak
)

// Category returns the category a kind belongs to.
func (k Kind) Category() Category {
	switch k {
	case KindHeader:
		return CategoryHeader
	case KindBullet, KindNumbered:
		return CategoryList
	case KindBold, KindItalic, KindStrike:
		return CategoryEmphasis
	case KindCodeSpan, KindCodeFence:
		return CategoryCode
	case KindImage:
		return CategoryImage
	case KindLink:
		return CategoryLink
	case KindBreak:
		return CategoryThematicBreak
	default:
		return CategoryEmphasis
	}
}

// StyleFunc derives style attributes from a pattern's captured groups.
type StyleFunc func(groups []string) span.Style

// Pattern couples a matcher with its kind, precedence and styling.
// Patterns are immutable once the table is built.
type Pattern struct {
	Matcher  *regexp.Regexp
	Kind     Kind
	Priority int
	Style    StyleFunc
}

// Group is one captured submatch with its source offsets. A group that
// did not participate in the match has Start == End == -1.
type Group struct {
	Start int
	End   int
	Text  string
}

// RawMatch is one occurrence of a pattern in the source text. Matches
// from different patterns may overlap; Resolve filters them.
type RawMatch struct {
	Start    int
	End      int
	Kind     Kind
	Priority int
	Groups   []Group

	// Style is the pattern's style function applied to the captures.
	Style span.Style
}

// Category returns the match's category.
func (m RawMatch) Category() Category {
	return m.Kind.Category()
}
