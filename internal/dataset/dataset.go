package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

// DType is the declared type assigned to a column at load time.
type DType string

const (
	Integer     DType = "integer"
	Float       DType = "float"
	Text        DType = "text"
	Categorical DType = "categorical"
	Boolean     DType = "boolean"
	Datetime    DType = "datetime"
)

// IsNumeric reports whether columns of this type participate in the
// numeric summary and correlation matrix.
func (t DType) IsNumeric() bool {
	return t == Integer || t == Float
}

// IsCategorical reports whether columns of this type participate in the
// categorical summary.
func (t DType) IsCategorical() bool {
	return t == Text || t == Categorical
}

// Column pairs a unique column name with its declared type.
type Column struct {
	Name string
	Type DType
}

// Dataset is an immutable-after-load table of named, typed columns with
// rows aligned by position. Cells are stored as their raw string form;
// an empty cell is a null.
type Dataset struct {
	cols  []Column
	index map[string]int
	cells [][]string // column-major
	nulls [][]bool
	rows  int
}

// New creates an empty dataset with the given column definitions.
// Column names must be non-empty and unique.
func New(cols []Column) (*Dataset, error) {
	d := &Dataset{
		cols:  make([]Column, len(cols)),
		index: make(map[string]int, len(cols)),
		cells: make([][]string, len(cols)),
		nulls: make([][]bool, len(cols)),
	}
	copy(d.cols, cols)
	for i, c := range cols {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, fmt.Errorf("column %d: empty name", i)
		}
		if _, dup := d.index[name]; dup {
			return nil, fmt.Errorf("duplicate column name %q", name)
		}
		d.cols[i].Name = name
		d.index[name] = i
	}
	return d, nil
}

// AppendRow adds one row of raw cell values. Short records are padded
// with nulls; extra fields beyond the declared columns are dropped.
func (d *Dataset) AppendRow(values []string) {
	for i := range d.cols {
		var v string
		if i < len(values) {
			v = values[i]
		}
		d.cells[i] = append(d.cells[i], v)
		d.nulls[i] = append(d.nulls[i], v == "")
	}
	d.rows++
}

// NumRows returns the row count.
func (d *Dataset) NumRows() int { return d.rows }

// NumCols returns the column count.
func (d *Dataset) NumCols() int { return len(d.cols) }

// Columns returns the column names in dataset order.
func (d *Dataset) Columns() []string {
	names := make([]string, len(d.cols))
	for i, c := range d.cols {
		names[i] = c.Name
	}
	return names
}

// ColumnAt returns the definition of the i-th column.
func (d *Dataset) ColumnAt(i int) Column { return d.cols[i] }

// Column looks up a column definition by name.
func (d *Dataset) Column(name string) (Column, bool) {
	i, ok := d.index[name]
	if !ok {
		return Column{}, false
	}
	return d.cols[i], true
}

// IsNull reports whether the cell at (row, col) is missing.
func (d *Dataset) IsNull(row, col int) bool { return d.nulls[col][row] }

// Raw returns the raw string form of the cell at (row, col).
// Null cells return the empty string.
func (d *Dataset) Raw(row, col int) string { return d.cells[col][row] }

// Float parses the cell at (row, col) as a float64. It is the caller's
// job to skip null cells first.
func (d *Dataset) Float(row, col int) (float64, error) {
	raw := d.cells[col][row]
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("column %q row %d: %q is not numeric", d.cols[col].Name, row, raw)
	}
	return f, nil
}

// EstimateBytes approximates the in-memory size of the dataset: a fixed
// per-cell overhead plus the bytes of each stored value, plus headers.
func (d *Dataset) EstimateBytes() int64 {
	const cellOverhead = 16 // string header per cell
	var total int64
	for i := range d.cols {
		total += int64(len(d.cols[i].Name))
		for _, v := range d.cells[i] {
			total += cellOverhead + int64(len(v))
		}
		total += int64(len(d.nulls[i]))
	}
	return total
}

// RowKey returns a canonical encoding of the full value tuple of a row,
// suitable for exact duplicate detection. Each present cell is
// length-prefixed and nulls carry their own tag, so no value bytes can
// collide with the null tag or bleed across cell boundaries.
func (d *Dataset) RowKey(row int) string {
	var b strings.Builder
	for col := range d.cols {
		if d.nulls[col][row] {
			b.WriteString("n;")
			continue
		}
		v := d.cells[col][row]
		b.WriteByte('v')
		b.WriteString(strconv.Itoa(len(v)))
		b.WriteByte(':')
		b.WriteString(v)
	}
	return b.String()
}
