package textmap

import (
	"math"
	"strings"

	"github.com/janek-w/mdspan/pkg/pattern"
)

// SpacingRegion records the synthetic newlines inserted around one
// embedded image in the display text.
type SpacingRegion struct {
	// SourceStart and SourceEnd are the image reference's half-open
	// byte range in the source text.
	SourceStart int
	SourceEnd   int

	// NewlinesBefore and NewlinesAfter count the newline characters
	// inserted immediately before and after the image.
	NewlinesBefore int
	NewlinesAfter  int

	// inserted is the total number of synthetic newlines contributed by
	// earlier regions, so display offsets stay cumulative.
	inserted int
}

// DisplayStart returns the display offset where the image text begins,
// after the inserted before-run.
func (r SpacingRegion) DisplayStart() int {
	return r.SourceStart + r.inserted + r.NewlinesBefore
}

// DisplayEnd returns the display offset just past the image text,
// before the inserted after-run.
func (r SpacingRegion) DisplayEnd() int {
	return r.SourceEnd + r.inserted + r.NewlinesBefore
}

// SpaceMapper computes a display text with synthetic newline spacing
// around every embedded image and converts offsets between source and
// display space. It is rebuilt wholesale on every text change; the
// recomputation is one linear pass over the text, at most once per
// render.
type SpaceMapper struct {
	source   string
	display  string
	regions  []SpacingRegion
	inserted int
}

// NewSpaceMapper scans source for image references and inserts
// ceil(imageHeight/lineHeight) newline characters immediately before
// and after each one, recording one SpacingRegion per image in source
// order.
func NewSpaceMapper(source string, imageHeight, lineHeight float64) *SpaceMapper {
	need := 1
	if lineHeight > 0 {
		need = int(math.Ceil(imageHeight / lineHeight))
	}
	if need < 0 {
		need = 0
	}

	m := &SpaceMapper{source: source}
	run := strings.Repeat("\n", need)

	var b strings.Builder
	prev := 0
	for _, loc := range pattern.ImageRanges(source) {
		b.WriteString(source[prev:loc[0]])
		b.WriteString(run)
		b.WriteString(source[loc[0]:loc[1]])
		b.WriteString(run)
		m.regions = append(m.regions, SpacingRegion{
			SourceStart:    loc[0],
			SourceEnd:      loc[1],
			NewlinesBefore: need,
			NewlinesAfter:  need,
			inserted:       m.inserted,
		})
		m.inserted += 2 * need
		prev = loc[1]
	}
	b.WriteString(source[prev:])
	m.display = b.String()
	return m
}

// DisplayText returns the source text with spacing inserted.
func (m *SpaceMapper) DisplayText() string {
	return m.display
}

// Regions returns the spacing regions in source order. The slice must
// not be mutated.
func (m *SpaceMapper) Regions() []SpacingRegion {
	return m.regions
}

// SourceToDisplay converts a source offset to display space.
// Out-of-range offsets clamp to the source bounds.
func (m *SpaceMapper) SourceToDisplay(offset int) int {
	if offset < 0 {
		offset = 0
	}
	if offset > len(m.source) {
		offset = len(m.source)
	}

	d := offset
	for _, r := range m.regions {
		if offset > r.SourceEnd {
			d += r.NewlinesBefore + r.NewlinesAfter
			continue
		}
		if offset >= r.SourceStart {
			d += r.NewlinesBefore
		}
		break
	}
	return d
}

// DisplayToSource converts a display offset to source space. Offsets
// inside an inserted-newline run snap to the nearest edge of the
// corresponding image: the before-run maps to SourceStart, the
// after-run to SourceEnd. The mapping is deliberately many-to-one
// there; it keeps the cursor out of synthetic whitespace.
// Out-of-range offsets clamp to the display bounds.
func (m *SpaceMapper) DisplayToSource(offset int) int {
	if offset < 0 {
		offset = 0
	}
	if offset > len(m.display) {
		offset = len(m.display)
	}

	for _, r := range m.regions {
		beforeStart := r.SourceStart + r.inserted
		if offset < beforeStart {
			return offset - r.inserted
		}
		if offset < beforeStart+r.NewlinesBefore {
			return r.SourceStart
		}
		imageEnd := r.DisplayEnd()
		if offset < imageEnd {
			return offset - r.inserted - r.NewlinesBefore
		}
		if offset < imageEnd+r.NewlinesAfter {
			return r.SourceEnd
		}
	}
	return offset - m.inserted
}
