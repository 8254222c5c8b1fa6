package pattern

// Collect runs every pattern against the full text with standard global
// match semantics: occurrences of a single pattern never overlap each
// other, but occurrences of different patterns freely do. No
// cross-pattern deduplication happens here; that is Resolve's job.
// Collect is a pure function of its inputs.
func Collect(table []Pattern, text string) []RawMatch {
	var out []RawMatch
	for _, p := range table {
		for _, idx := range p.Matcher.FindAllStringSubmatchIndex(text, -1) {
			out = append(out, newRawMatch(p, text, idx))
		}
	}
	return out
}

func newRawMatch(p Pattern, text string, idx []int) RawMatch {
	m := RawMatch{
		Start:    idx[0],
		End:      idx[1],
		Kind:     p.Kind,
		Priority: p.Priority,
	}

	ngroups := len(idx)/2 - 1
	if ngroups > 0 {
		m.Groups = make([]Group, ngroups)
		captures := make([]string, ngroups)
		for g := range ngroups {
			start, end := idx[2*(g+1)], idx[2*(g+1)+1]
			if start < 0 {
				m.Groups[g] = Group{Start: -1, End: -1}
				continue
			}
			m.Groups[g] = Group{Start: start, End: end, Text: text[start:end]}
			captures[g] = text[start:end]
		}
		if p.Style != nil {
			m.Style = p.Style(captures)
		}
	} else if p.Style != nil {
		m.Style = p.Style(nil)
	}

	return m
}
