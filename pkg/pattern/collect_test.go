package pattern

import (
	"reflect"
	"testing"
)

func TestCollect_GlobalMatchSemantics(t *testing.T) {
	// Two bold runs: one pattern, two non-overlapping occurrences.
	text := "**a** and **b**"
	var bolds []RawMatch
	for _, m := range Collect(DefaultTable(), text) {
		if m.Kind == KindBold {
			bolds = append(bolds, m)
		}
	}
	if len(bolds) != 2 {
		t.Fatalf("expected 2 bold matches, got %d", len(bolds))
	}
	if bolds[0].Start != 0 || bolds[0].End != 5 {
		t.Errorf("first bold = [%d,%d), want [0,5)", bolds[0].Start, bolds[0].End)
	}
	if bolds[1].Start != 10 || bolds[1].End != 15 {
		t.Errorf("second bold = [%d,%d), want [10,15)", bolds[1].Start, bolds[1].End)
	}
}

func TestCollect_KeepsCrossPatternOverlaps(t *testing.T) {
	// Bold and italic both fire on the same '*' run; Collect must keep
	// both and leave filtering to Resolve.
	text := "**bold**"
	kinds := map[Kind]int{}
	for _, m := range Collect(DefaultTable(), text) {
		kinds[m.Kind]++
	}
	if kinds[KindBold] != 1 {
		t.Errorf("bold matches = %d, want 1", kinds[KindBold])
	}
	if kinds[KindItalic] == 0 {
		t.Error("expected the italic matcher to fire on the same run")
	}
}

func TestCollect_GroupOffsets(t *testing.T) {
	text := "## Title"
	var header *RawMatch
	for _, m := range Collect(DefaultTable(), text) {
		if m.Kind == KindHeader {
			header = &m
			break
		}
	}
	if header == nil {
		t.Fatal("expected a header match")
	}
	want := []Group{
		{Start: 0, End: 3, Text: "## "},
		{Start: 3, End: 8, Text: "Title"},
	}
	if !reflect.DeepEqual(header.Groups, want) {
		t.Errorf("groups = %+v, want %+v", header.Groups, want)
	}
}

func TestCollect_Pure(t *testing.T) {
	text := "# a\n**b** `c` [d](e)\n---\n"
	table := DefaultTable()
	first := Collect(table, text)
	second := Collect(table, text)
	if !reflect.DeepEqual(first, second) {
		t.Error("Collect is not a pure function of its inputs")
	}
}
