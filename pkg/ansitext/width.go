// Package ansitext measures and re-wraps terminal text that carries
// embedded ANSI SGR styling sequences. SGR sequences occupy zero
// terminal cells, so byte length and visible width diverge as soon as
// any styling is applied; everything in this package keeps the two
// bookkeeping domains separate.
package ansitext

import (
	"regexp"

	"github.com/mattn/go-runewidth"
)

// HardBreak is the reserved forced-line-break marker. Inline renderers
// insert it for explicit line breaks; Reflow treats it as a line
// boundary that never merges with surrounding text. Carriage returns
// do not otherwise occur in normalized document text, which is what
// makes the character safe to reserve.
const HardBreak = "\r"

// sgrPattern matches one SGR sequence: the CSI introducer followed by
// one to three digits, optionally repeated as semicolon-separated
// groups, terminated by 'm'.
var sgrPattern = regexp.MustCompile("\x1b\\[[0-9]{1,3}(?:;[0-9]{1,3})*m")

// StripSGR returns s with every SGR sequence removed. The input is
// never mutated.
func StripSGR(s string) string {
	return sgrPattern.ReplaceAllString(s, "")
}

// PrintableWidth returns the number of terminal cells s occupies once
// SGR sequences are discarded. East Asian wide runes count as two
// cells, combining and zero-width runes as none.
func PrintableWidth(s string) int {
	return runewidth.StringWidth(StripSGR(s))
}

// splitSGR splits s into alternating fragments of plain text and
// complete SGR sequences, preserving the sequences as their own
// fragments. Concatenating the result reproduces s exactly.
func splitSGR(s string) []string {
	matches := sgrPattern.FindAllStringIndex(s, -1)
	if len(matches) == 0 {
		return []string{s}
	}
	fragments := make([]string, 0, 2*len(matches)+1)
	last := 0
	for _, m := range matches {
		if m[0] > last {
			fragments = append(fragments, s[last:m[0]])
		}
		fragments = append(fragments, s[m[0]:m[1]])
		last = m[1]
	}
	if last < len(s) {
		fragments = append(fragments, s[last:])
	}
	return fragments
}

// isSGR reports whether s is exactly one SGR sequence.
func isSGR(s string) bool {
	loc := sgrPattern.FindStringIndex(s)
	return loc != nil && loc[0] == 0 && loc[1] == len(s)
}

// truncateCells splits s at the widest prefix that fits in cells
// terminal columns, returning the prefix and the remainder. s must be
// plain text (no SGR sequences). Splits never land inside a rune; a
// wide rune that straddles the boundary moves wholly into the tail.
func truncateCells(s string, cells int) (head, tail string) {
	used := 0
	for i, r := range s {
		w := runewidth.RuneWidth(r)
		if used+w > cells {
			return s[:i], s[i:]
		}
		used += w
	}
	return s, ""
}
