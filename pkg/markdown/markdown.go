// Package markdown binds the goldmark parser to the terminal renderer.
// It walks the parsed document tree and invokes one renderer entry
// point per construct, resolving inline spans before the blocks that
// contain them.
package markdown

import (
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	gtext "github.com/yuin/goldmark/text"

	"github.com/dkoosis/mdv/pkg/renderer"
)

// The parser is initialized once and reused. Its configuration never
// changes and goldmark parsers are safe to share; parsing creates
// per-call state via Parse(reader).
var (
	parserInstance goldmark.Markdown
	parserOnce     sync.Once
)

func getParser() goldmark.Markdown {
	parserOnce.Do(func() {
		parserInstance = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		)
	})
	return parserInstance
}

// Render parses GFM markdown source and renders it with r. The result
// ends with exactly one trailing newline.
func Render(source []byte, r *renderer.Renderer) string {
	document := getParser().Parser().Parse(gtext.NewReader(source))
	w := &walker{source: source, r: r}
	return strings.TrimRight(w.renderBlocks(document), "\n") + "\n"
}

type walker struct {
	source []byte
	r      *renderer.Renderer
}

func (w *walker) renderBlocks(parent ast.Node) string {
	var out strings.Builder
	for node := parent.FirstChild(); node != nil; node = node.NextSibling() {
		out.WriteString(w.renderBlock(node))
	}
	return out.String()
}

func (w *walker) renderBlock(node ast.Node) string {
	switch n := node.(type) {
	case *ast.Heading:
		return w.r.Heading(w.renderChildren(n), n.Level)
	case *ast.Paragraph:
		return w.r.Paragraph(w.renderChildren(n))
	case *ast.TextBlock:
		return w.r.Paragraph(w.renderChildren(n))
	case *ast.Blockquote:
		// Quoted blocks compose at a narrowed width so they still fit
		// once Blockquote indents them.
		quoted := &walker{source: w.source, r: w.r.Narrowed()}
		return w.r.Blockquote(strings.TrimRight(quoted.renderBlocks(n), "\n"))
	case *ast.FencedCodeBlock:
		return w.r.Code(w.nodeLines(n), string(n.Language(w.source)))
	case *ast.CodeBlock:
		return w.r.Code(w.nodeLines(n), "")
	case *ast.ThematicBreak:
		return w.r.HR()
	case *ast.HTMLBlock:
		return w.r.HTML(strings.TrimRight(w.nodeLines(n), "\n")) + "\n\n"
	case *ast.List:
		return w.r.List(w.buildList(n))
	case *extast.Table:
		return w.renderTable(n)
	default:
		return w.renderBlocks(node)
	}
}

// buildList converts a goldmark list node into the renderer's list
// tree. Nested lists become children of the item they sit under;
// everything else in the item renders into its content.
func (w *walker) buildList(node *ast.List) renderer.List {
	list := renderer.List{Ordered: node.IsOrdered(), Start: node.Start}
	for item := node.FirstChild(); item != nil; item = item.NextSibling() {
		var entry renderer.ListItem
		var parts []string
		for child := item.FirstChild(); child != nil; child = child.NextSibling() {
			switch child.Kind() {
			case ast.KindList:
				entry.Children = append(entry.Children, w.buildList(child.(*ast.List)))
			case ast.KindTextBlock, ast.KindParagraph:
				parts = append(parts, w.renderChildren(child))
			default:
				parts = append(parts, strings.TrimRight(w.renderBlock(child), "\n"))
			}
		}
		entry.Content = w.r.ListItem(strings.Join(parts, "\n"))
		list.Items = append(list.Items, entry)
	}
	return list
}

func (w *walker) renderTable(node *extast.Table) string {
	var header, body strings.Builder
	for row := node.FirstChild(); row != nil; row = row.NextSibling() {
		switch row.Kind() {
		case extast.KindTableHeader:
			header.WriteString(w.packRow(row))
		case extast.KindTableRow:
			body.WriteString(w.packRow(row))
		}
	}
	return w.r.Table(header.String(), body.String())
}

func (w *walker) packRow(row ast.Node) string {
	var cells strings.Builder
	for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
		if cell.Kind() == extast.KindTableCell {
			cells.WriteString(w.r.TableCell(w.renderChildren(cell)))
		}
	}
	return w.r.TableRow(cells.String())
}

// renderChildren resolves a node's inline children into one string.
func (w *walker) renderChildren(node ast.Node) string {
	var out strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		out.WriteString(w.renderInline(child))
	}
	return out.String()
}

func (w *walker) renderInline(node ast.Node) string {
	switch n := node.(type) {
	case *ast.Text:
		value := w.r.Text(string(n.Segment.Value(w.source)))
		if n.SoftLineBreak() {
			// Soft breaks become spaces so hard-wrapped source text
			// reflows at any terminal width.
			value += " "
		}
		if n.HardLineBreak() {
			value += w.r.Br()
		}
		return value
	case *ast.String:
		return w.r.Text(string(n.Value))
	case *ast.Emphasis:
		inner := w.renderChildren(n)
		if n.Level >= 2 {
			return w.r.Strong(inner)
		}
		return w.r.Em(inner)
	case *ast.CodeSpan:
		return w.r.Codespan(w.codeSpanText(n))
	case *ast.Link:
		return w.r.Link(string(n.Destination), string(n.Title), w.renderChildren(n))
	case *ast.AutoLink:
		return w.r.Link(string(n.URL(w.source)), "", "")
	case *ast.Image:
		return w.r.Image(string(n.Destination), string(n.Title), w.renderChildren(n))
	case *ast.RawHTML:
		var raw strings.Builder
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			raw.Write(seg.Value(w.source))
		}
		return w.r.HTML(raw.String())
	case *extast.Strikethrough:
		return w.r.Del(w.renderChildren(n))
	case *extast.TaskCheckBox:
		return w.r.Checkbox(n.IsChecked)
	default:
		return w.renderChildren(node)
	}
}

// codeSpanText joins a code span's text segments.
func (w *walker) codeSpanText(node ast.Node) string {
	var code strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch c := child.(type) {
		case *ast.Text:
			code.Write(c.Segment.Value(w.source))
		case *ast.String:
			code.Write(c.Value)
		}
	}
	return code.String()
}

// nodeLines joins the raw source lines a block node spans.
func (w *walker) nodeLines(node ast.Node) string {
	var out strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		out.Write(seg.Value(w.source))
	}
	return out.String()
}
