package timeseries

import (
	"errors"
	"fmt"

	"cloud.google.com/go/civil"
)

// Table is a column-oriented, date-indexed data frame. Every column has
// exactly one value per date.
type Table struct {
	Dates   []civil.Date
	names   []string
	columns map[string][]float64
}

// NewTable creates a table indexed by dates with no value columns.
func NewTable(dates []civil.Date) *Table {
	return &Table{
		Dates:   dates,
		columns: make(map[string][]float64),
	}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Dates)
}

// Set adds or replaces a column. The column length must match the number of dates.
func (t *Table) Set(name string, values []float64) error {
	if name == "" {
		return errors.New("column name must not be empty")
	}
	if len(values) != len(t.Dates) {
		return fmt.Errorf("column %q has %d values, table has %d rows", name, len(values), len(t.Dates))
	}
	if t.columns == nil {
		t.columns = make(map[string][]float64)
	}
	if _, ok := t.columns[name]; !ok {
		t.names = append(t.names, name)
	}
	t.columns[name] = values
	return nil
}

// Has reports whether the table carries the named column.
func (t *Table) Has(name string) bool {
	if t == nil {
		return false
	}
	_, ok := t.columns[name]
	return ok
}

// Missing returns the subset of names the table does not carry, in the given order.
func (t *Table) Missing(names ...string) []string {
	var missing []string
	for _, n := range names {
		if !t.Has(n) {
			missing = append(missing, n)
		}
	}
	return missing
}

// Column returns the values of the named column.
func (t *Table) Column(name string) ([]float64, bool) {
	if t == nil {
		return nil, false
	}
	v, ok := t.columns[name]
	return v, ok
}

// Columns returns the column names in insertion order.
func (t *Table) Columns() []string {
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names
}

// Value returns the value of column name at row i, or false when either is out of range.
func (t *Table) Value(name string, i int) (float64, bool) {
	v, ok := t.Column(name)
	if !ok || i < 0 || i >= len(v) {
		return 0, false
	}
	return v[i], true
}

// Series returns a single column as a Series sharing the table's dates.
func (t *Table) Series(name string) (*Series, error) {
	v, ok := t.Column(name)
	if !ok {
		return nil, fmt.Errorf("column %q not found", name)
	}
	s, err := NewSeries(t.Dates, v)
	if err != nil {
		return nil, err
	}
	s.Name = name
	return s, nil
}

// Filter returns a new table holding only the rows for which keep returns true.
func (t *Table) Filter(keep func(i int) bool) *Table {
	var idx []int
	for i := range t.Dates {
		if keep(i) {
			idx = append(idx, i)
		}
	}
	return t.rows(idx)
}

// Slice returns rows from start to end (exclusive) as a new table.
func (t *Table) Slice(start, end int) *Table {
	if start < 0 {
		start = 0
	}
	if end > len(t.Dates) {
		end = len(t.Dates)
	}
	var idx []int
	for i := start; i < end; i++ {
		idx = append(idx, i)
	}
	return t.rows(idx)
}

// Copy creates a deep copy of the table.
func (t *Table) Copy() *Table {
	return t.Slice(0, len(t.Dates))
}

func (t *Table) rows(idx []int) *Table {
	dates := make([]civil.Date, len(idx))
	for j, i := range idx {
		dates[j] = t.Dates[i]
	}
	out := NewTable(dates)
	for _, name := range t.names {
		src := t.columns[name]
		vals := make([]float64, len(idx))
		for j, i := range idx {
			vals[j] = src[i]
		}
		out.names = append(out.names, name)
		out.columns[name] = vals
	}
	return out
}
