package asciitable

import (
	"io"
	"os"
	"strings"
)

const (
	topLeft     = "╭"
	topRight    = "╮"
	bottomLeft  = "╰"
	bottomRight = "╯"
	horizontal  = "─"
	vertical    = "│"
	leftTee     = "├"
	rightTee    = "┤"
	topTee      = "┬"
	cross       = "┼"
	bottomTee   = "┴"
)

// RenderString returns the fully rendered table. It is a pure function of
// the table's current contents, and every line ends with a newline.
//
// The layout is a full-width top border, the centered title, the header row,
// the data rows, the optional summary row set off by a divider, and the
// bottom border. Only as many columns as there are headers are drawn; extra
// cells are dropped and short rows close early.
func (t *Table) RenderString() string {
	header := t.headers
	rows := make([][]string, len(t.rows))
	for i, row := range t.rows {
		rows[i] = renderCells(row, t.places)
	}
	var footer []string
	if t.summary != nil {
		footer = renderCells(t.summary, t.places)
	}

	widths := computeWidths(header, rows, footer)
	total := tableInnerWidth(widths)

	var sb strings.Builder
	sb.WriteString(topLeft + strings.Repeat(horizontal, total) + topRight + "\n")
	sb.WriteString(vertical + centerCell(t.title, total) + vertical + "\n")
	drawHLine(&sb, widths, leftTee, topTee, rightTee)
	drawRow(&sb, header, widths)
	drawHLine(&sb, widths, leftTee, cross, rightTee)
	for _, row := range rows {
		drawRow(&sb, row, widths)
	}
	if footer != nil {
		drawHLine(&sb, widths, leftTee, cross, rightTee)
		drawRow(&sb, footer, widths)
	}
	drawHLine(&sb, widths, bottomLeft, bottomTee, bottomRight)
	return sb.String()
}

// String is an alias for [Table.RenderString].
func (t *Table) String() string { return t.RenderString() }

// WriteTo writes the rendered table to w.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.RenderString())
	return int64(n), err
}

// Render writes the rendered table to standard output. No newline is added
// beyond the table's own.
func (t *Table) Render() error {
	_, err := t.WriteTo(os.Stdout)
	return err
}

func renderCells(cells []Cell, places uint) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = c.Render(places)
	}
	return out
}

// computeWidths returns one width per header. Cells past the header count
// do not contribute.
func computeWidths(header []string, rows [][]string, footer []string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = VisibleWidth(h)
	}
	for _, row := range rows {
		growWidths(widths, row)
	}
	growWidths(widths, footer)
	return widths
}

func growWidths(widths []int, cells []string) {
	for i, cell := range cells {
		if i >= len(widths) {
			return
		}
		if w := VisibleWidth(cell); w > widths[i] {
			widths[i] = w
		}
	}
}

// tableInnerWidth returns the width between the outer borders: each column
// plus one space of padding on each side, and one divider between columns.
func tableInnerWidth(widths []int) int {
	n := 0
	for _, w := range widths {
		n += w + 2
	}
	if len(widths) > 1 {
		n += len(widths) - 1
	}
	return n
}

func drawHLine(sb *strings.Builder, widths []int, left, mid, right string) {
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(horizontal, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	sb.WriteString("\n")
}

// drawRow pairs cells with widths and stops at whichever runs out first.
func drawRow(sb *strings.Builder, cells []string, widths []int) {
	sb.WriteString(vertical)
	for i := 0; i < len(cells) && i < len(widths); i++ {
		sb.WriteString(" ")
		sb.WriteString(padCell(cells[i], widths[i]))
		sb.WriteString(" ")
		sb.WriteString(vertical)
	}
	sb.WriteString("\n")
}

func padCell(s string, width int) string {
	pad := width - VisibleWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}

// centerCell centers s in width columns. The odd space goes to the right;
// text wider than width is returned unpadded.
func centerCell(s string, width int) string {
	pad := width - VisibleWidth(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
