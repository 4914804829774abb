// Package asciitable renders typed tabular data as a bordered text table.
//
// A [Table] holds a title, column headers, data rows, and an optional
// summary row. Cells are typed values created with [Text], [Int], and
// [Float]:
//
//	tbl := asciitable.New("Test Table")
//	tbl.SetHeaders("Name", "Score")
//	tbl.AddRow(asciitable.Text("Alice"), asciitable.Float(95.6789))
//	tbl.AddRow(asciitable.Text("Bob"), asciitable.Float(88.1234))
//	tbl.SetSummary(asciitable.Text("Total"), asciitable.Float(183.8023))
//	tbl.Render()
//
// produces
//
//	╭────────────────╮
//	│   Test Table   │
//	├───────┬────────┤
//	│ Name  │ Score  │
//	├───────┼────────┤
//	│ Alice │ 95.67  │
//	│ Bob   │ 88.12  │
//	├───────┼────────┤
//	│ Total │ 183.80 │
//	╰───────┴────────╯
//
// # Precision
//
// Float cells are truncated toward zero, not rounded, to the table's decimal
// places (default [DefaultDecimalPlaces]) and always printed with exactly that
// many fractional digits. 2.999 at two places is "2.99".
//
// # Widths
//
// Column widths are measured in terminal cells with [VisibleWidth]: wide
// glyphs count as two and ANSI escape sequences count as zero. Colorized text
// passes through verbatim and aligns the same as its plain equivalent.
//
// # Ragged Input
//
// Nothing is validated. The header count sets the column count; cells beyond
// it are dropped, and a short row closes its right border early.
package asciitable
