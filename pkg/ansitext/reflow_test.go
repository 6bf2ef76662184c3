package ansitext

import (
	"strings"
	"testing"
)

func TestReflow_WrapsAtWidth(t *testing.T) {
	got := Reflow("The quick brown fox jumps", 10)
	want := "The quick\nbrown fox\njumps"
	if got != want {
		t.Errorf("Reflow = %q, want %q", got, want)
	}
}

func TestReflow_WidthBound(t *testing.T) {
	inputs := []string{
		"a handful of short words to wrap around",
		"\x1b[1mstyled\x1b[0m words \x1b[38;5;2mmixed\x1b[0m into the flow",
		"wide 世界 runes count two cells each",
	}
	for _, in := range inputs {
		for _, width := range []int{8, 12, 20, 79} {
			for _, line := range strings.Split(Reflow(in, width), "\n") {
				if got := PrintableWidth(line); got > width {
					t.Errorf("width %d: line %q has visible width %d", width, line, got)
				}
			}
		}
	}
}

func TestReflow_KeepsHardBreaks(t *testing.T) {
	got := Reflow("alpha"+HardBreak+"beta", 40)
	lines := strings.Split(got, "\n")
	if len(lines) < 2 {
		t.Fatalf("expected at least two lines, got %q", got)
	}
	if !strings.Contains(lines[0], "alpha") || strings.Contains(lines[0], "beta") {
		t.Errorf("hard break merged: %q", got)
	}
}

func TestReflow_DoubleHardBreakKeepsBlankLine(t *testing.T) {
	got := Reflow("a"+HardBreak+HardBreak+"b", 40)
	if got != "a\n\nb" {
		t.Errorf("Reflow = %q, want %q", got, "a\n\nb")
	}
}

func TestReflow_BreakTags(t *testing.T) {
	got := Reflow("one<br />two", 40, "<br />")
	if got != "one\ntwo" {
		t.Errorf("Reflow = %q, want %q", got, "one\ntwo")
	}
}

func TestReflow_PreservesSGRSequences(t *testing.T) {
	in := "normal \x1b[1mbold\x1b[0m normal again and some more words here"
	got := Reflow(in, 12)

	for _, code := range []string{"\x1b[1m", "\x1b[0m"} {
		if !strings.Contains(got, code) {
			t.Errorf("output lost sequence %q: %q", code, got)
		}
	}

	// Stripped output must match the reflow of the unstyled text: the
	// sequences never influence where lines break.
	plain := Reflow(StripSGR(in), 12)
	if StripSGR(got) != plain {
		t.Errorf("stripped reflow %q differs from plain reflow %q", StripSGR(got), plain)
	}
}

func TestReflow_MidWordStyling(t *testing.T) {
	in := "b\x1b[1mold\x1b[0m plain"
	if got := Reflow(in, 40); got != in {
		t.Errorf("Reflow = %q, want input unchanged %q", got, in)
	}
}

func TestReflow_StyledWordKeepsFollowingSpace(t *testing.T) {
	in := "\x1b[1mbold\x1b[0m text"
	if got := Reflow(in, 40); got != in {
		t.Errorf("Reflow = %q, want %q", got, in)
	}
}

func TestReflow_HardSplitsLongWords(t *testing.T) {
	got := Reflow("abcdefghij", 4)
	if got != "abcd\nefgh\nij" {
		t.Errorf("Reflow = %q, want %q", got, "abcd\nefgh\nij")
	}
}

func TestReflow_HardSplitFillsRemainingColumns(t *testing.T) {
	got := Reflow("hi abcdefgh", 5)
	if got != "hi ab\ncdefg\nh" {
		t.Errorf("Reflow = %q, want %q", got, "hi ab\ncdefg\nh")
	}
}

func TestReflow_WidthZeroOneWordPerLine(t *testing.T) {
	got := Reflow("a b c", 0)
	if got != "a\nb\nc" {
		t.Errorf("Reflow = %q, want %q", got, "a\nb\nc")
	}
}

func TestReflow_Empty(t *testing.T) {
	if got := Reflow("", 10); got != "" {
		t.Errorf("Reflow(\"\") = %q, want empty", got)
	}
}
