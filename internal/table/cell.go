package table

import "strconv"

// CellKind discriminates the three shapes a cell value can take.
type CellKind int

const (
	KindMissing CellKind = iota
	KindNumber
	KindLabel
)

// String returns the kind name for diagnostics.
func (k CellKind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindLabel:
		return "label"
	default:
		return "missing"
	}
}

// Cell is a single value in a table: a number, a label, or the explicit
// missing marker. The zero value is the missing marker.
type Cell struct {
	kind  CellKind
	num   float64
	label string
}

// Number returns a numeric cell.
func Number(v float64) Cell {
	return Cell{kind: KindNumber, num: v}
}

// Label returns a free-form label cell.
func Label(s string) Cell {
	return Cell{kind: KindLabel, label: s}
}

// Missing returns the missing marker.
func Missing() Cell {
	return Cell{}
}

// Kind returns the cell's discriminator.
func (c Cell) Kind() CellKind { return c.kind }

// IsMissing reports whether the cell is the missing marker.
func (c Cell) IsMissing() bool { return c.kind == KindMissing }

// Number returns the numeric value and whether the cell holds one.
func (c Cell) Number() (float64, bool) {
	return c.num, c.kind == KindNumber
}

// Label returns the label value and whether the cell holds one.
func (c Cell) Label() (string, bool) {
	return c.label, c.kind == KindLabel
}

// String renders the cell for export and display. Numbers use the
// shortest exact decimal form; the missing marker renders as the empty
// string.
func (c Cell) String() string {
	switch c.kind {
	case KindNumber:
		return strconv.FormatFloat(c.num, 'f', -1, 64)
	case KindLabel:
		return c.label
	default:
		return ""
	}
}
