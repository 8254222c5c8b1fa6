package span

import "testing"

func TestTree_Covers(t *testing.T) {
	tests := []struct {
		name string
		segs []Segment
		n    int
		want bool
	}{
		{"empty tree over empty source", nil, 0, true},
		{"empty tree over non-empty source", nil, 4, false},
		{
			"contiguous tiling",
			[]Segment{{Start: 0, End: 3}, {Start: 3, End: 7}},
			7, true,
		},
		{
			"synthetic segments skipped",
			[]Segment{{Start: 0, End: 3}, {Start: 3, End: 3, Text: "\n"}, {Start: 3, End: 7}},
			7, true,
		},
		{
			"gap in coverage",
			[]Segment{{Start: 0, End: 3}, {Start: 4, End: 7}},
			7, false,
		},
		{
			"overlap",
			[]Segment{{Start: 0, End: 4}, {Start: 3, End: 7}},
			7, false,
		},
		{
			"short of the end",
			[]Segment{{Start: 0, End: 3}},
			7, false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := &Tree{Segments: tt.segs}
			if got := tree.Covers(tt.n); got != tt.want {
				t.Errorf("Covers(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestTree_SourceLen(t *testing.T) {
	tree := &Tree{Segments: []Segment{
		{Start: 0, End: 3},
		{Start: 3, End: 3, Text: "\n\n"},
		{Start: 3, End: 10},
	}}
	if got := tree.SourceLen(); got != 10 {
		t.Errorf("SourceLen = %d, want 10", got)
	}
}

func TestSegment_Predicates(t *testing.T) {
	embed := Segment{Start: 0, End: 1, Embed: &Embed{Target: "u"}}
	if !embed.IsEmbed() {
		t.Error("embed segment not recognized")
	}
	if embed.IsSynthetic() {
		t.Error("an embed covering source is not synthetic")
	}

	spacing := Segment{Start: 5, End: 5, Text: "\n"}
	if !spacing.IsSynthetic() {
		t.Error("spacing segment not recognized as synthetic")
	}

	gap := Segment{Start: 5, End: 5}
	if gap.IsSynthetic() {
		t.Error("empty gap has no display text and is not synthetic")
	}
}

func TestActivation_Lifecycle(t *testing.T) {
	var got []string
	act := NewActivation("http://x", func(target string) { got = append(got, target) })

	act.Activate()
	act.Activate()
	if len(got) != 2 || got[0] != "http://x" {
		t.Fatalf("activations = %v", got)
	}

	act.Release()
	if !act.Released() {
		t.Error("Released() = false after Release")
	}
	act.Activate()
	if len(got) != 2 {
		t.Error("released activation fired")
	}
}

func TestActivation_NilSafety(t *testing.T) {
	var act *Activation
	act.Activate()
	act.Release()
	if !act.Released() {
		t.Error("nil activation reports not released")
	}

	noFn := NewActivation("u", nil)
	noFn.Activate()
	if !noFn.Released() {
		t.Error("nil handler is indistinguishable from released")
	}
}

func TestTree_Release(t *testing.T) {
	calls := 0
	a := NewActivation("u", func(string) { calls++ })
	tree := &Tree{Activations: []*Activation{a}}

	tree.Release()
	tree.Release()
	a.Activate()
	if calls != 0 {
		t.Error("activation fired after tree release")
	}

	var nilTree *Tree
	nilTree.Release()
}
