package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bjaus/asciitable"
)

var errInvalidDefinition = errors.New("invalid table definition")

// definition is the YAML form of a table:
//
//	title: Scores
//	places: 2
//	headers: [Name, Score]
//	rows:
//	  - [Alice, 95.6789]
//	summary: [Total, 95.6789]
//
// Unquoted integers and floats become numeric cells; anything else is text.
type definition struct {
	Title   string              `yaml:"title"`
	Places  *uint               `yaml:"places"`
	Headers []string            `yaml:"headers"`
	Rows    [][]asciitable.Cell `yaml:"rows"`
	Summary []asciitable.Cell   `yaml:"summary"`
}

func loadDefinitionFile(path string) (*definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeDefinition(f)
}

func decodeDefinition(r io.Reader) (*definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var def definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", errInvalidDefinition)
		}
		return nil, fmt.Errorf("%w: %w", errInvalidDefinition, err)
	}
	return &def, nil
}

// demoDefinition is the table rendered when no file is given.
func demoDefinition() *definition {
	places := uint(3)
	return &definition{
		Title:   "Cluster Overview",
		Places:  &places,
		Headers: []string{"Cluster", "Node Count", "Outgoing Gateways", "Incoming Gateways", "Connections", "RTT [ms]"},
		Rows: [][]asciitable.Cell{
			{asciitable.Text("west"), asciitable.Int(1), asciitable.Int(2), asciitable.Int(2), asciitable.Int(0), asciitable.Float(1.23456)},
			{asciitable.Text("east"), asciitable.Int(1), asciitable.Int(2), asciitable.Int(2), asciitable.Int(0), asciitable.Float(4.3210)},
			{asciitable.Text("central"), asciitable.Int(1), asciitable.Int(2), asciitable.Int(2), asciitable.Int(1), asciitable.Float(3.345678)},
		},
		Summary: []asciitable.Cell{asciitable.Text(""), asciitable.Int(3), asciitable.Int(6), asciitable.Int(6), asciitable.Int(1), asciitable.Float(8.9)},
	}
}

// table builds a Table from the definition. style, if non-nil, is applied
// to non-empty text cells of data rows in column col.
func (d *definition) table(col int, style func(string) string) *asciitable.Table {
	tbl := asciitable.New(d.Title)
	if d.Places != nil {
		tbl.SetDecimalPlaces(*d.Places)
	}
	tbl.SetHeaders(d.Headers...)
	for _, row := range d.Rows {
		if style != nil && col >= 0 && col < len(row) {
			if c := row[col]; c.Kind() == asciitable.KindText && c.TextValue() != "" {
				row = append([]asciitable.Cell(nil), row...)
				row[col] = asciitable.Text(style(c.TextValue()))
			}
		}
		tbl.AddRow(row...)
	}
	tbl.SetSummary(d.Summary...)
	return tbl
}
