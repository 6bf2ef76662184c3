package renderer

import (
	"html"
	"net/url"
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"

	"github.com/dkoosis/mdv/pkg/ansitext"
)

// section appends the trailing blank-line separator that frames every
// block-level construct.
func (r *Renderer) section(text string) string {
	return text + "\n\n"
}

// fitWidth reflows text to the given width when reflow is enabled.
// Otherwise hard break markers become plain newlines and the text is
// left as produced.
func (r *Renderer) fitWidth(text string, width int) string {
	if r.opts.ReflowText {
		return ansitext.Reflow(text, width)
	}
	return strings.ReplaceAll(text, ansitext.HardBreak, "\n")
}

// indent prefixes every non-empty line of text with one tab level.
// Blank separator lines stay blank.
func (r *Renderer) indent(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = r.tab + line
		}
	}
	return strings.Join(lines, "\n")
}

// Narrowed returns a renderer identical to r with the wrap width one
// tab level narrower, for composing content that gets indented after
// composition. Nested calls narrow further; the width never drops
// below one cell.
func (r *Renderer) Narrowed() *Renderer {
	nr := *r
	nr.opts.Width -= nr.tabWidth
	if nr.opts.Width < 1 {
		nr.opts.Width = 1
	}
	return &nr
}

// transform applies the entity and emoji substitutions configured for
// plain document text.
func (r *Renderer) transform(text string) string {
	if r.opts.Unescape {
		text = html.UnescapeString(text)
	}
	if r.opts.Emoji {
		text = r.emojify(text)
	}
	return text
}

// Heading renders a heading of the given level. Level 1 gets its own
// style; all other levels share the general heading style.
func (r *Renderer) Heading(text string, level int) string {
	text = r.transform(text)
	if r.opts.ShowSectionPrefix {
		text = strings.Repeat("#", level) + " " + text
	}
	text = r.fitWidth(text, r.opts.Width)
	if level == 1 {
		return r.section(r.styles.FirstHeading(text))
	}
	return r.section(r.styles.Heading(text))
}

// Paragraph renders a body of already-resolved inline text.
func (r *Renderer) Paragraph(text string) string {
	return r.section(r.styles.Paragraph(r.fitWidth(text, r.opts.Width)))
}

// Blockquote indents already-composed quoted content one tab level.
// The content arrives wrapped by its own block renderers, at a width
// the caller narrowed by the indent (see Narrowed), so reflowing it
// again would merge line boundaries the inner blocks chose. The quote
// only substitutes stray hard break markers, indents, and styles.
func (r *Renderer) Blockquote(text string) string {
	text = strings.ReplaceAll(text, ansitext.HardBreak, "\n")
	return r.section(r.styles.Blockquote(r.indent(text)))
}

// Code renders a code block: syntax-highlighted when a language is
// known, indented one tab level either way. Code is never reflowed.
func (r *Renderer) Code(code, language string) string {
	code = strings.TrimRight(code, "\n")
	return r.section(r.indent(r.highlight(code, language)))
}

// highlight delegates to the configured highlighter, falling back to
// the plain code style on an unknown language or highlighter error.
func (r *Renderer) highlight(code, language string) string {
	if r.opts.Highlight != nil {
		return r.opts.Highlight(code, language)
	}
	if language == "" {
		return r.styles.Code(code)
	}
	var buf strings.Builder
	if err := quick.Highlight(&buf, code, language, "terminal256", r.opts.HighlightTheme); err != nil {
		return r.styles.Code(code)
	}
	return strings.TrimRight(buf.String(), "\n")
}

// HR renders a horizontal rule spanning the configured width.
func (r *Renderer) HR() string {
	return r.section(r.styles.HR(strings.Repeat("─", r.opts.Width)))
}

// HTML passes raw HTML through with its own style and no section
// framing; block placement is the caller's concern.
func (r *Renderer) HTML(raw string) string {
	return r.styles.HTML(raw)
}

// Checkbox renders a task-list checkbox prefix.
func (r *Renderer) Checkbox(checked bool) string {
	if checked {
		return "[X] "
	}
	return "[ ] "
}

// Text renders plain document text with entity and emoji substitution.
func (r *Renderer) Text(text string) string {
	return r.styles.Text(r.transform(text))
}

// Strong, Em, Codespan, and Del wrap already-resolved inner text in
// their span style.
func (r *Renderer) Strong(text string) string   { return r.styles.Strong(text) }
func (r *Renderer) Em(text string) string       { return r.styles.Em(text) }
func (r *Renderer) Codespan(text string) string { return r.styles.Codespan(text) }
func (r *Renderer) Del(text string) string      { return r.styles.Del(text) }

// Br emits the hard break marker consumed later by reflow (or by the
// newline substitution when reflow is off).
func (r *Renderer) Br() string {
	return ansitext.HardBreak
}

// urlJunkPattern strips everything but word characters and colons when
// normalizing a URL for the scheme check.
var urlJunkPattern = regexp.MustCompile(`[^\w:]`)

// Link renders either the display text (preferred when it differs from
// the destination) or the destination itself, never both. With
// sanitization enabled, javascript: destinations and undecodable URLs
// render as nothing.
func (r *Renderer) Link(href, title, text string) string {
	if r.opts.SanitizeLinks {
		decoded, err := url.PathUnescape(href)
		if err != nil {
			return ""
		}
		scheme := strings.ToLower(urlJunkPattern.ReplaceAllString(decoded, ""))
		if strings.HasPrefix(scheme, "javascript:") {
			return ""
		}
	}
	if text != "" && text != href {
		return r.styles.Link(text)
	}
	return r.styles.Href(href)
}

// Image renders literal markdown image syntax; terminals get no
// picture, just the reference.
func (r *Renderer) Image(href, title, text string) string {
	out := "![" + text
	if title != "" {
		out += " - " + title
	}
	return out + "](" + href + ")"
}
