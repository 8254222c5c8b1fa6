package span

import "testing"

func TestStyle_Merge(t *testing.T) {
	base := Style{Italic: true, Scale: 1.2}
	merged := base.Merge(Style{Bold: true, Code: true})

	if !merged.Bold || !merged.Code {
		t.Errorf("overlay attributes lost: %+v", merged)
	}
	if !merged.Italic {
		t.Error("base italic must survive an overlay that does not set it")
	}
	if merged.Scale != 1.2 {
		t.Errorf("scale = %v, want base 1.2 preserved", merged.Scale)
	}

	rescaled := base.Merge(Style{Scale: 2.0, HeadingLevel: 1})
	if rescaled.Scale != 2.0 || rescaled.HeadingLevel != 1 {
		t.Errorf("set scale and level must replace: %+v", rescaled)
	}
}

func TestStyle_MergeZeroIsIdentity(t *testing.T) {
	base := Style{Bold: true, Strike: true, Scale: 0.5, HeadingLevel: 3}
	if got := base.Merge(Style{}); got != base {
		t.Errorf("merge with zero style = %+v, want %+v", got, base)
	}
}

func TestHeadingStyle(t *testing.T) {
	for level := 1; level <= 6; level++ {
		s := HeadingStyle(level)
		if s.HeadingLevel != level {
			t.Errorf("level %d: HeadingLevel = %d", level, s.HeadingLevel)
		}
		if !s.Bold {
			t.Errorf("level %d: headings are bold", level)
		}
	}

	// Scales decrease monotonically.
	for level := 2; level <= 6; level++ {
		if HeadingStyle(level).Scale >= HeadingStyle(level - 1).Scale {
			t.Errorf("scale for level %d not smaller than level %d", level, level-1)
		}
	}
}

func TestHeadingStyle_Clamps(t *testing.T) {
	if got := HeadingStyle(0); got != HeadingStyle(1) {
		t.Errorf("level 0 = %+v, want clamp to level 1", got)
	}
	if got := HeadingStyle(-3); got != HeadingStyle(1) {
		t.Errorf("negative level = %+v, want clamp to level 1", got)
	}
	if got := HeadingStyle(9); got != HeadingStyle(6) {
		t.Errorf("level 9 = %+v, want clamp to level 6", got)
	}
}
