package renderer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Table rows cross the flat-string renderer boundary packed with
// sentinel delimiters: cells end with cellSentinel, rows are wrapped
// in rowSentinel and terminated with a newline. The sequences are
// multi-character strings chosen to be absent from prose; a collision
// with real cell content is not detected.
const (
	cellSentinel = "^*||*^"
	rowSentinel  = "*|*|*|*"
)

// TableCell packs one rendered cell.
func (r *Renderer) TableCell(text string) string {
	return text + cellSentinel
}

// TableRow packs a row of already-packed cells.
func (r *Renderer) TableRow(content string) string {
	return rowSentinel + content + rowSentinel + "\n"
}

// PackRows encodes a grid of cells with the same sentinel scheme the
// TableCell/TableRow callbacks produce incrementally.
func PackRows(rows [][]string) string {
	var out strings.Builder
	for _, row := range rows {
		out.WriteString(rowSentinel)
		for _, cell := range row {
			out.WriteString(cell)
			out.WriteString(cellSentinel)
		}
		out.WriteString(rowSentinel)
		out.WriteString("\n")
	}
	return out.String()
}

// UnpackRows decodes sentinel-packed rows back into a grid. Empty
// input decodes to no rows.
func UnpackRows(packed string) [][]string {
	if packed == "" {
		return nil
	}
	var rows [][]string
	for _, line := range strings.Split(strings.TrimSuffix(packed, "\n"), "\n") {
		line = strings.TrimPrefix(line, rowSentinel)
		line = strings.TrimSuffix(line, rowSentinel)
		cells := strings.Split(line, cellSentinel)
		// The trailing sentinel always yields one final empty segment.
		rows = append(rows, cells[:len(cells)-1])
	}
	return rows
}

// Table unpacks the sentinel-encoded header and body and hands the
// structured rows to the grid formatter.
func (r *Renderer) Table(header, body string) string {
	headerRows := UnpackRows(header)
	bodyRows := UnpackRows(body)
	if len(headerRows) == 0 && len(bodyRows) == 0 {
		return ""
	}

	cellStyle := *r.opts.Table.CellStyle
	grid := table.New().
		Border(r.opts.Table.Border).
		BorderStyle(r.opts.Table.BorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			return cellStyle
		})
	if len(headerRows) > 0 {
		grid = grid.Headers(headerRows[0]...)
	}
	grid = grid.Rows(bodyRows...)

	return r.section(r.styles.Table(grid.Render()))
}
