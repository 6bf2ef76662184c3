package ansitext

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Reflow re-wraps text so every output line's printable width stays
// within width terminal cells. SGR sequences pass through intact, are
// never split, and never count toward width. HardBreak markers (and
// any additional breakTags, such as a literal break tag an upstream
// parser leaves in place) divide the text into segments that are
// wrapped independently and rejoined with newlines, so an explicit
// break is never merged into surrounding text.
//
// Words longer than width are hard-split: the first chunk fills the
// columns remaining on the current line, subsequent chunks each fill a
// full line, and the final partial chunk starts a new line. A width of
// zero or less degrades to one word per line.
func Reflow(text string, width int, breakTags ...string) string {
	for _, tag := range breakTags {
		text = strings.ReplaceAll(text, tag, HardBreak)
	}
	segments := strings.Split(text, HardBreak)
	wrapped := make([]string, len(segments))
	for i, segment := range segments {
		wrapped[i] = reflowSegment(segment, width)
	}
	return strings.Join(wrapped, "\n")
}

// reflowSegment wraps a single segment (no hard breaks) and returns
// its lines joined with newlines. An empty segment yields an empty
// string, which Reflow turns into a blank output line.
func reflowSegment(segment string, width int) string {
	var lines []string
	var line strings.Builder
	column := 0

	// A fragment that is an SGR sequence appends to the line without
	// consuming width. When the text around it continues a single word
	// (no whitespace on either side, as in "b<SGR>old"), the implicit
	// separating space is suppressed so the styled word stays whole.
	afterSGR := false
	prevEndsSpace := false

	flush := func() {
		if line.Len() > 0 {
			lines = append(lines, line.String())
			line.Reset()
		}
		column = 0
	}

	for _, fragment := range splitSGR(segment) {
		if fragment == "" {
			continue
		}
		if isSGR(fragment) {
			line.WriteString(fragment)
			afterSGR = true
			continue
		}

		joinsPrevious := afterSGR && !prevEndsSpace && !startsWithSpace(fragment)
		for i, word := range strings.Fields(fragment) {
			wordWidth := runewidth.StringWidth(word)
			space := 0
			if column > 0 && !(joinsPrevious && i == 0) {
				space = 1
			}

			switch {
			case width <= 0:
				// Degenerate configuration: one word per line.
				if column > 0 {
					flush()
				}
				line.WriteString(word)
				column = wordWidth

			case column+space+wordWidth <= width:
				if space == 1 {
					line.WriteString(" ")
				}
				line.WriteString(word)
				column += space + wordWidth

			case wordWidth <= width:
				flush()
				line.WriteString(word)
				column = wordWidth

			default:
				// Hard-split an overlong word at cell boundaries.
				remaining := width - column - space
				if remaining <= 0 {
					flush()
					remaining = width
				} else if space == 1 {
					line.WriteString(" ")
				}
				head, tail := truncateCells(word, remaining)
				line.WriteString(head)
				for runewidth.StringWidth(tail) > width {
					flush()
					head, tail = truncateCells(tail, width)
					if head == "" {
						// A single rune wider than the whole line
						// still has to land somewhere.
						_, size := utf8.DecodeRuneInString(tail)
						head, tail = tail[:size], tail[size:]
					}
					line.WriteString(head)
				}
				flush()
				line.WriteString(tail)
				column = runewidth.StringWidth(tail)
			}
		}
		afterSGR = false
		prevEndsSpace = endsWithSpace(fragment)
	}

	if column > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

func startsWithSpace(s string) bool {
	return len(s) > 0 && (s[0] == ' ' || s[0] == '\t' || s[0] == '\n')
}

func endsWithSpace(s string) bool {
	if s == "" {
		return false
	}
	c := s[len(s)-1]
	return c == ' ' || c == '\t' || c == '\n'
}
