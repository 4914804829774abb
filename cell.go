package asciitable

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for programmatic error handling. Rendering itself never
// fails; these come from decoding table input.
var (
	ErrInvalidCell = errors.New("invalid cell")
)

// DefaultDecimalPlaces is the float precision used by [New] and [Cell.String].
const DefaultDecimalPlaces uint = 2

// Kind identifies which value a [Cell] holds.
type Kind int

const (
	KindText Kind = iota
	KindInt
	KindFloat
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Cell is a single typed table value: text, a 64-bit integer, or a 64-bit
// float. The zero value is an empty text cell.
type Cell struct {
	kind Kind
	text string
	i    int64
	f    float64
}

// Text returns a text cell. The string is rendered verbatim, including any
// embedded escape sequences.
func Text(s string) Cell { return Cell{kind: KindText, text: s} }

// Int returns an integer cell.
func Int(i int64) Cell { return Cell{kind: KindInt, i: i} }

// Float returns a floating point cell.
func Float(f float64) Cell { return Cell{kind: KindFloat, f: f} }

// Kind reports which value the cell holds.
func (c Cell) Kind() Kind { return c.kind }

// TextValue returns the text of a text cell, or "" for other kinds.
func (c Cell) TextValue() string { return c.text }

// IntValue returns the value of an integer cell, or 0 for other kinds.
func (c Cell) IntValue() int64 { return c.i }

// FloatValue returns the value of a float cell, or 0 for other kinds.
func (c Cell) FloatValue() float64 { return c.f }

// Render converts the cell to display text. Floats are truncated toward zero
// at places fractional digits, never rounded, and always printed with exactly
// places digits.
func (c Cell) Render(places uint) string {
	switch c.kind {
	case KindInt:
		return strconv.FormatInt(c.i, 10)
	case KindFloat:
		return truncateFloat(c.f, places)
	default:
		return c.text
	}
}

// String renders the cell at [DefaultDecimalPlaces].
func (c Cell) String() string { return c.Render(DefaultDecimalPlaces) }

func truncateFloat(f float64, places uint) string {
	factor := math.Pow(10, float64(places))
	return strconv.FormatFloat(math.Trunc(f*factor)/factor, 'f', int(places), 64)
}

// UnmarshalYAML decodes a scalar node into a typed cell. Plain integers
// become [KindInt], plain floats become [KindFloat], and everything else,
// including quoted numbers, becomes [KindText]. A null leaves the zero
// value, an empty text cell.
func (c *Cell) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: expected a scalar, got %s", ErrInvalidCell, n.Line, nodeKind(n.Kind))
	}
	switch n.ShortTag() {
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return fmt.Errorf("%w: line %d: %s", ErrInvalidCell, n.Line, err)
		}
		*c = Int(i)
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return fmt.Errorf("%w: line %d: %s", ErrInvalidCell, n.Line, err)
		}
		*c = Float(f)
	default:
		*c = Text(n.Value)
	}
	return nil
}

func nodeKind(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.AliasNode:
		return "alias"
	default:
		return "scalar"
	}
}
