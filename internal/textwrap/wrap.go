// Package textwrap performs greedy word wrapping for column-aligned
// help output.
package textwrap

import "strings"

// Wrap breaks text into lines of at most limit characters of content.
// The first line is padded with leftPad spaces, continuation lines with
// contIndent spaces; padding is included in the returned lines but not
// counted against limit. Words longer than limit are emitted unbroken.
func Wrap(text string, limit, leftPad, contIndent int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if limit < 1 {
		limit = 1
	}

	first := strings.Repeat(" ", leftPad)
	cont := strings.Repeat(" ", contIndent)

	var lines []string
	var b strings.Builder
	b.WriteString(first)
	lineLen := 0
	for _, w := range words {
		if lineLen > 0 && lineLen+1+len(w) > limit {
			lines = append(lines, b.String())
			b.Reset()
			b.WriteString(cont)
			lineLen = 0
		}
		if lineLen > 0 {
			b.WriteByte(' ')
			lineLen++
		}
		b.WriteString(w)
		lineLen += len(w)
	}
	lines = append(lines, b.String())
	return lines
}
