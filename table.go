package asciitable

import (
	"slices"
)

// Table accumulates a title, headers, rows, and an optional summary row, and
// renders them as a bordered text table.
//
// A Table is not safe for concurrent use. Column widths are never cached, so
// every render reflects the current contents.
type Table struct {
	title   string
	headers []string
	rows    [][]Cell
	summary []Cell
	places  uint
}

// New returns an empty table with the given title and
// [DefaultDecimalPlaces] precision.
func New(title string) *Table {
	return &Table{title: title, places: DefaultDecimalPlaces}
}

// Title returns the table title.
func (t *Table) Title() string { return t.title }

// SetHeaders replaces the column headers. The header count is the column
// count for rendering.
func (t *Table) SetHeaders(names ...string) {
	t.headers = slices.Clone(names)
}

// AddRow appends a data row. The cell count is not checked against the
// headers.
func (t *Table) AddRow(cells ...Cell) {
	t.rows = append(t.rows, slices.Clone(cells))
}

// SetSummary replaces the summary row, which is rendered below the data rows
// after a divider. Calling it with no cells removes the summary.
func (t *Table) SetSummary(cells ...Cell) {
	if len(cells) == 0 {
		t.summary = nil
		return
	}
	t.summary = slices.Clone(cells)
}

// SetDecimalPlaces sets how many fractional digits float cells keep. Zero is
// allowed and renders floats as truncated integers.
func (t *Table) SetDecimalPlaces(places uint) { t.places = places }

// DecimalPlaces returns the current float precision.
func (t *Table) DecimalPlaces() uint { return t.places }

// Headers returns a copy of the column headers.
func (t *Table) Headers() []string { return slices.Clone(t.headers) }

// Rows returns a copy of the data rows in insertion order.
func (t *Table) Rows() [][]Cell {
	out := make([][]Cell, len(t.rows))
	for i, row := range t.rows {
		out[i] = slices.Clone(row)
	}
	return out
}

// Summary returns a copy of the summary row and whether one is set.
func (t *Table) Summary() ([]Cell, bool) {
	if t.summary == nil {
		return nil, false
	}
	return slices.Clone(t.summary), true
}
