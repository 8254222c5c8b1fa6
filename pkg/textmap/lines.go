// Package textmap provides line lookup over raw text and the
// source↔display offset mapping used around embedded images.
package textmap

import "strings"

// LineOf returns the 0-based line index containing offset: the number
// of newline characters strictly before it. Out-of-range offsets clamp
// to the text bounds, since cursor offsets can transiently exceed them
// while the host is mid-edit.
func LineOf(text string, offset int) int {
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}
	return strings.Count(text[:offset], "\n")
}

// LineRange returns the [start, end) byte range of the 0-based line,
// excluding the trailing newline. A line index past the last line
// returns the empty-range sentinel (0, 0).
func LineRange(text string, line int) (start, end int) {
	if line < 0 {
		return 0, 0
	}
	for ; line > 0; line-- {
		nl := strings.IndexByte(text[start:], '\n')
		if nl < 0 {
			return 0, 0
		}
		start += nl + 1
	}
	nl := strings.IndexByte(text[start:], '\n')
	if nl < 0 {
		return start, len(text)
	}
	return start, start + nl
}
