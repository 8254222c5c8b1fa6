package textmap

import (
	"strings"
	"testing"
)

func TestSpaceMapper_DisplayText(t *testing.T) {
	source := "before ![a](u) after"
	// 40/16 rounds up to 3 newlines on each side.
	m := NewSpaceMapper(source, 40, 16)

	want := "before " + strings.Repeat("\n", 3) + "![a](u)" + strings.Repeat("\n", 3) + " after"
	if got := m.DisplayText(); got != want {
		t.Errorf("display text = %q, want %q", got, want)
	}

	regions := m.Regions()
	if len(regions) != 1 {
		t.Fatalf("expected 1 region, got %d", len(regions))
	}
	r := regions[0]
	if r.SourceStart != 7 || r.SourceEnd != 14 {
		t.Errorf("source range = [%d,%d), want [7,14)", r.SourceStart, r.SourceEnd)
	}
	if r.NewlinesBefore != 3 || r.NewlinesAfter != 3 {
		t.Errorf("newlines = (%d,%d), want (3,3)", r.NewlinesBefore, r.NewlinesAfter)
	}
	if r.DisplayStart() != 10 || r.DisplayEnd() != 17 {
		t.Errorf("display range = [%d,%d), want [10,17)", r.DisplayStart(), r.DisplayEnd())
	}
}

func TestSpaceMapper_NoImages(t *testing.T) {
	source := "plain text, nothing embedded"
	m := NewSpaceMapper(source, 160, 16)

	if m.DisplayText() != source {
		t.Errorf("display text = %q, want unchanged source", m.DisplayText())
	}
	for off := 0; off <= len(source); off++ {
		if got := m.SourceToDisplay(off); got != off {
			t.Errorf("SourceToDisplay(%d) = %d, want identity", off, got)
		}
		if got := m.DisplayToSource(off); got != off {
			t.Errorf("DisplayToSource(%d) = %d, want identity", off, got)
		}
	}
}

func TestSpaceMapper_RoundTrip(t *testing.T) {
	source := "a ![x](u) b ![y](v) c"
	m := NewSpaceMapper(source, 32, 16)

	// Every source offset survives the round trip; offsets inside
	// inserted-newline runs do not occur in source space.
	for off := 0; off <= len(source); off++ {
		display := m.SourceToDisplay(off)
		back := m.DisplayToSource(display)
		if back != off {
			t.Errorf("round trip %d -> %d -> %d", off, display, back)
		}
	}
}

func TestSpaceMapper_SnapInsideInsertedRuns(t *testing.T) {
	source := "x ![a](u) y"
	m := NewSpaceMapper(source, 32, 16) // 2 newlines each side

	r := m.Regions()[0]
	if r.SourceStart != 2 || r.SourceEnd != 9 {
		t.Fatalf("source range = [%d,%d)", r.SourceStart, r.SourceEnd)
	}

	// Display layout: "x " [0,2) + "\n\n" [2,4) + image [4,11) + "\n\n" [11,13) + " y".
	for _, off := range []int{2, 3} {
		if got := m.DisplayToSource(off); got != r.SourceStart {
			t.Errorf("before-run offset %d -> %d, want %d", off, got, r.SourceStart)
		}
	}
	for _, off := range []int{11, 12} {
		if got := m.DisplayToSource(off); got != r.SourceEnd {
			t.Errorf("after-run offset %d -> %d, want %d", off, got, r.SourceEnd)
		}
	}
}

func TestSpaceMapper_ClampsOutOfRange(t *testing.T) {
	source := "![a](u)"
	m := NewSpaceMapper(source, 16, 16) // 1 newline each side

	if got := m.SourceToDisplay(-4); got != 1 {
		t.Errorf("SourceToDisplay(-4) = %d, want 1", got)
	}
	if got := m.SourceToDisplay(len(source) + 9); got != len(source)+1 {
		t.Errorf("SourceToDisplay(past end) = %d, want %d", got, len(source)+1)
	}
	if got := m.DisplayToSource(-1); got != 0 {
		t.Errorf("DisplayToSource(-1) = %d, want 0", got)
	}
	if got := m.DisplayToSource(len(m.DisplayText()) + 5); got != len(source) {
		t.Errorf("DisplayToSource(past end) = %d, want %d", got, len(source))
	}
}

func TestSpaceMapper_CumulativeAcrossImages(t *testing.T) {
	source := "![a](u)![b](v)"
	m := NewSpaceMapper(source, 16, 16) // 1 newline each side

	want := "\n![a](u)\n\n![b](v)\n"
	if got := m.DisplayText(); got != want {
		t.Errorf("display text = %q, want %q", got, want)
	}

	second := m.Regions()[1]
	if second.DisplayStart() != 10 {
		t.Errorf("second image display start = %d, want 10", second.DisplayStart())
	}
	if got := m.SourceToDisplay(7); got != 8 {
		t.Errorf("SourceToDisplay(7) = %d, want 8", got)
	}
}
