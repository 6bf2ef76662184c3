// Package renderer turns parsed markdown constructs into styled
// fixed-width terminal text. It exposes one entry point per construct;
// an external parser walks the document tree and calls them bottom-up,
// inline spans before the blocks that contain them.
package renderer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	// DefaultWidth is the wrap width used when none is configured and
	// terminal detection is unavailable.
	DefaultWidth = 80

	// DefaultTabWidth is the indent step, in spaces, for code blocks,
	// blockquotes, and list nesting.
	DefaultTabWidth = 4
)

// StyleFunc wraps text in non-printing styling sequences. The renderer
// treats styling as opaque: it never inspects what a StyleFunc emits,
// it only guarantees the sequences survive reflow intact.
type StyleFunc func(string) string

// Styles holds one StyleFunc per styleable construct. Nil entries
// render unstyled.
type Styles struct {
	Code         StyleFunc
	Blockquote   StyleFunc
	HTML         StyleFunc
	Heading      StyleFunc
	FirstHeading StyleFunc
	HR           StyleFunc
	ListItem     StyleFunc
	List         StyleFunc
	Table        StyleFunc
	Paragraph    StyleFunc
	Strong       StyleFunc
	Em           StyleFunc
	Codespan     StyleFunc
	Del          StyleFunc
	Link         StyleFunc
	Href         StyleFunc
	Text         StyleFunc
}

// TableOptions configures the table grid formatter.
type TableOptions struct {
	Border      lipgloss.Border
	BorderStyle lipgloss.Style

	// CellStyle styles every cell. Nil gets one cell of horizontal
	// padding.
	CellStyle *lipgloss.Style
}

// Options is the immutable configuration captured when a Renderer is
// created. The zero value is usable: unstyled output, width 80,
// four-space tabs, no reflow.
type Options struct {
	// Width is the target column width for reflowed blocks.
	Width int

	// TabWidth is the indent step in spaces. Tab, when set, overrides
	// it with a literal indent string; anything but spaces and tabs
	// silently falls back to the default.
	TabWidth int
	Tab      string

	// ReflowText enables width-aware re-wrapping of headings,
	// paragraphs, and blockquotes. When off, hard break markers are
	// substituted with newlines and everything else passes through.
	ReflowText bool

	// ShowSectionPrefix prefixes headings with a literal '#' marker
	// repeated by level.
	ShowSectionPrefix bool

	// Unescape decodes HTML entities in text and headings.
	Unescape bool

	// Emoji substitutes :shortcode: sequences in text and headings.
	Emoji bool

	// SanitizeLinks drops links whose destination decodes to a
	// javascript: URL.
	SanitizeLinks bool

	// HighlightTheme is the chroma style name for fenced code blocks.
	// Empty selects monokai.
	HighlightTheme string

	Styles Styles
	Table  TableOptions

	// EmojiLookup resolves a shortcode to its glyph. Nil uses the
	// built-in table.
	EmojiLookup func(name string) (string, bool)

	// Highlight overrides syntax highlighting for code blocks. Nil
	// uses chroma.
	Highlight func(code, language string) string
}

// Renderer renders markdown constructs with a fixed Options value. It
// holds no mutable state, so a single instance is safe for concurrent
// use.
type Renderer struct {
	opts     Options
	styles   Styles
	tab      string
	tabWidth int
}

// New resolves opts once and returns a Renderer. Invalid tab
// configuration falls back to the default silently; it is never an
// error.
func New(opts Options) *Renderer {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.HighlightTheme == "" {
		opts.HighlightTheme = "monokai"
	}
	if (opts.Table.Border == lipgloss.Border{}) {
		opts.Table.Border = lipgloss.NormalBorder()
	}
	if opts.Table.CellStyle == nil {
		cell := lipgloss.NewStyle().Padding(0, 1)
		opts.Table.CellStyle = &cell
	}
	tab := resolveTab(opts.Tab, opts.TabWidth)
	return &Renderer{
		opts:     opts,
		styles:   opts.Styles.filled(),
		tab:      tab,
		tabWidth: tabCells(tab),
	}
}

// tabCells counts the terminal cells an indent string occupies, with a
// literal tab counted at the default tab stop.
func tabCells(tab string) int {
	cells := 0
	for _, r := range tab {
		if r == '\t' {
			cells += DefaultTabWidth
		} else {
			cells++
		}
	}
	return cells
}

// resolveTab turns the tab configuration into a literal indent string.
// Only spaces and tabs are allowed in an explicit Tab value.
func resolveTab(tab string, tabWidth int) string {
	if tab != "" {
		valid := true
		for _, r := range tab {
			if r != ' ' && r != '\t' {
				valid = false
				break
			}
		}
		if valid {
			return tab
		}
		return strings.Repeat(" ", DefaultTabWidth)
	}
	if tabWidth > 0 {
		return strings.Repeat(" ", tabWidth)
	}
	return strings.Repeat(" ", DefaultTabWidth)
}

func identity(s string) string { return s }

// filled returns a copy with nil entries replaced by the identity
// function so call sites never nil-check.
func (s Styles) filled() Styles {
	for _, f := range []*StyleFunc{
		&s.Code, &s.Blockquote, &s.HTML, &s.Heading, &s.FirstHeading,
		&s.HR, &s.ListItem, &s.List, &s.Table, &s.Paragraph, &s.Strong,
		&s.Em, &s.Codespan, &s.Del, &s.Link, &s.Href, &s.Text,
	} {
		if *f == nil {
			*f = identity
		}
	}
	return s
}
