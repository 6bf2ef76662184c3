package renderer

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/mdv/pkg/ansitext"
)

// List is a parsed list node: items in document order, each optionally
// carrying nested sublists. Building the structure explicitly and
// assigning bullets in one walk keeps numbering and indentation
// correct at any nesting depth, including mixed ordered/unordered
// trees.
type List struct {
	// Ordered selects numbered labels; Start is the first number (a
	// value below 1 starts at 1).
	Ordered bool
	Start   int
	Items   []ListItem
}

// ListItem is one rendered item body plus any sublists nested under
// it. Content may span multiple lines.
type ListItem struct {
	Content  string
	Children []List
}

// ListItem styles one item's rendered inline content. Hard break
// markers become plain newlines here: list items are never reflowed,
// so nothing else would consume them.
func (r *Renderer) ListItem(text string) string {
	return r.styles.ListItem(strings.ReplaceAll(text, ansitext.HardBreak, "\n"))
}

// List renders a whole list tree with section framing. Each nesting
// level indents one tab further than its parent, so a line's depth is
// always recoverable as its indentation divided by the tab width.
func (r *Renderer) List(list List) string {
	body := strings.Join(r.renderListLevel(list, 0), "\n")
	return r.section(r.styles.List(body))
}

// renderListLevel produces the output lines for one list node at the
// given depth. The numbering counter is local to the node: a nested
// list always starts its own count, and a sibling list resumes nothing
// from this one.
func (r *Renderer) renderListLevel(list List, depth int) []string {
	indent := strings.Repeat(r.tab, depth+1)
	number := list.Start
	if number < 1 {
		number = 1
	}

	var lines []string
	for _, item := range list.Items {
		label := "* "
		if list.Ordered {
			label = strconv.Itoa(number) + ". "
			number++
		}
		// Continuation lines get blank padding matching the label
		// width so the item body stays visually aligned.
		pad := strings.Repeat(" ", runewidth.StringWidth(label))

		for i, line := range strings.Split(item.Content, "\n") {
			if i == 0 {
				lines = append(lines, indent+label+line)
			} else {
				lines = append(lines, indent+pad+line)
			}
		}
		for _, child := range item.Children {
			lines = append(lines, r.renderListLevel(child, depth+1)...)
		}
	}
	return lines
}
