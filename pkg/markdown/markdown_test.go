package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/mdv/pkg/renderer"
)

// plainRenderer renders unstyled with a deterministic highlighter so
// golden strings stay stable.
func plainRenderer(opts renderer.Options) *renderer.Renderer {
	if opts.Highlight == nil {
		opts.Highlight = func(code, language string) string { return code }
	}
	return renderer.New(opts)
}

func TestRender_HeadingAndParagraph(t *testing.T) {
	r := plainRenderer(renderer.Options{})
	got := Render([]byte("# Title\n\nHello world.\n"), r)
	assert.Equal(t, "Title\n\nHello world.\n", got)
}

func TestRender_SoftBreaksReflow(t *testing.T) {
	r := plainRenderer(renderer.Options{Width: 80, ReflowText: true})
	got := Render([]byte("alpha\nbeta\n"), r)
	assert.Equal(t, "alpha beta\n", got)
}

func TestRender_HardBreakSurvives(t *testing.T) {
	r := plainRenderer(renderer.Options{Width: 80, ReflowText: true})
	got := Render([]byte("one  \ntwo\n"), r)
	assert.Equal(t, "one\ntwo\n", got)
}

func TestRender_NestedList(t *testing.T) {
	r := plainRenderer(renderer.Options{})
	got := Render([]byte("- parent\n  - child\n"), r)
	assert.Equal(t, "    * parent\n        * child\n", got)
}

func TestRender_OrderedList(t *testing.T) {
	r := plainRenderer(renderer.Options{})
	got := Render([]byte("1. one\n2. two\n3. three\n"), r)
	assert.Equal(t, "    1. one\n    2. two\n    3. three\n", got)
}

func TestRender_OrderedListNestedCounterRestarts(t *testing.T) {
	r := plainRenderer(renderer.Options{})
	source := "1. outer\n   1. inner a\n   2. inner b\n2. outer two\n"
	got := Render([]byte(source), r)
	want := "    1. outer\n" +
		"        1. inner a\n" +
		"        2. inner b\n" +
		"    2. outer two\n"
	assert.Equal(t, want, got)
}

func TestRender_TaskList(t *testing.T) {
	r := plainRenderer(renderer.Options{})
	got := Render([]byte("- [x] done\n- [ ] todo\n"), r)
	assert.Contains(t, got, "[X]")
	assert.Contains(t, got, "[ ]")
	assert.Contains(t, got, "done")
	assert.Contains(t, got, "todo")
}

func TestRender_Blockquote(t *testing.T) {
	r := plainRenderer(renderer.Options{})
	got := Render([]byte("> quoted\n"), r)
	assert.Equal(t, "    quoted\n", got)
}

func TestRender_BlockquotedListKeepsItems(t *testing.T) {
	r := plainRenderer(renderer.Options{Width: 80, ReflowText: true})
	got := Render([]byte("> - a\n> - b\n"), r)
	assert.Equal(t, "        * a\n        * b\n", got)
}

func TestRender_BlockquoteHardBreakSurvivesReflow(t *testing.T) {
	r := plainRenderer(renderer.Options{Width: 80, ReflowText: true})
	got := Render([]byte("> one  \n> two\n"), r)
	assert.Equal(t, "    one\n    two\n", got)
}

func TestRender_BlockquoteMultipleParagraphs(t *testing.T) {
	r := plainRenderer(renderer.Options{Width: 80, ReflowText: true})
	got := Render([]byte("> one\n>\n> two\n"), r)
	assert.Equal(t, "    one\n\n    two\n", got)
}

func TestRender_BlockquoteWrapsWithinIndent(t *testing.T) {
	r := plainRenderer(renderer.Options{Width: 12, ReflowText: true})
	got := Render([]byte("> alpha beta gamma\n"), r)
	assert.Equal(t, "    alpha\n    beta\n    gamma\n", got)
	for _, line := range strings.Split(strings.TrimRight(got, "\n"), "\n") {
		assert.LessOrEqual(t, len(line), 12, "line %q", line)
	}
}

func TestRender_NestedBlockquote(t *testing.T) {
	r := plainRenderer(renderer.Options{Width: 80, ReflowText: true})
	got := Render([]byte("> > deep\n"), r)
	assert.Equal(t, "        deep\n", got)
}

func TestRender_FencedCode(t *testing.T) {
	r := plainRenderer(renderer.Options{})
	got := Render([]byte("```go\nfmt.Println(1)\n```\n"), r)
	assert.Equal(t, "    fmt.Println(1)\n", got)
}

func TestRender_ThematicBreak(t *testing.T) {
	r := plainRenderer(renderer.Options{Width: 10})
	got := Render([]byte("---\n"), r)
	assert.Equal(t, strings.Repeat("─", 10)+"\n", got)
}

func TestRender_Table(t *testing.T) {
	r := plainRenderer(renderer.Options{})
	source := "| name | value |\n|------|-------|\n| x | 1 |\n"
	got := Render([]byte(source), r)
	for _, want := range []string{"name", "value", "x", "1", "│"} {
		assert.Contains(t, got, want)
	}
}

func TestRender_InlineSpans(t *testing.T) {
	r := renderer.New(renderer.Options{Styles: renderer.Styles{
		Strong:   func(s string) string { return "S(" + s + ")" },
		Em:       func(s string) string { return "E(" + s + ")" },
		Codespan: func(s string) string { return "C(" + s + ")" },
		Del:      func(s string) string { return "D(" + s + ")" },
	}})
	got := Render([]byte("**b** *i* `c` ~~d~~\n"), r)
	require.Equal(t, "S(b) E(i) C(c) D(d)\n", got)
}

func TestRender_LinkPrefersText(t *testing.T) {
	r := plainRenderer(renderer.Options{})
	got := Render([]byte("[Example](https://example.com)\n"), r)
	assert.Equal(t, "Example\n", got)
}

func TestRender_SanitizedLinkDropped(t *testing.T) {
	r := plainRenderer(renderer.Options{SanitizeLinks: true})
	got := Render([]byte("[click](javascript:alert\\(1\\))\n"), r)
	assert.NotContains(t, got, "javascript")
	assert.NotContains(t, got, "click")
}

func TestRender_Image(t *testing.T) {
	r := plainRenderer(renderer.Options{})
	got := Render([]byte("![alt](pic.png)\n"), r)
	assert.Equal(t, "![alt](pic.png)\n", got)
}

func TestRender_EmptyInput(t *testing.T) {
	r := plainRenderer(renderer.Options{})
	assert.Equal(t, "\n", Render([]byte(""), r))
}

func TestRender_ConsecutiveBlocksSeparated(t *testing.T) {
	r := plainRenderer(renderer.Options{})
	got := Render([]byte("para one\n\npara two\n"), r)
	assert.Equal(t, "para one\n\npara two\n", got)
}
