// Package dsv table and row types.
//
// Table is the in-memory representation shared by the parser and the
// stringifier: an ordered sequence of rows, each an ordered sequence of
// string fields. No column count is enforced across rows.
//
//	t := dsv.NewTable().
//		AddRow([]string{"Alice", "30"}).
//		AddRow([]string{"Bob", "25"})
//	out := dsv.Stringify(t)
package dsv

// Table represents parsed delimited data with a fluent API for construction.
// All setter methods return *Table to enable method chaining.
//
// A Table consists of:
//   - Optional headers naming the columns (never set by parsing)
//   - Data rows
type Table struct {
	headers []string
	rows    [][]string
}

// Row represents a single row in a Table.
// It provides access to field values by index or by header name.
type Row struct {
	fields  []string
	headers []string // reference to table headers for name-based access
}

// NewTable creates a new empty Table.
func NewTable() *Table {
	return &Table{
		headers: []string{},
		rows:    make([][]string, 0),
	}
}

// SetHeaders sets the column headers for this table.
// Headers are used by Row.GetByName and by Stringify, which renders them as
// the first output line when present.
// Returns the Table for method chaining.
func (t *Table) SetHeaders(headers []string) *Table {
	t.headers = append([]string(nil), headers...)
	return t
}

// AddRow appends a data row to the table.
// The fields slice is copied; the table never retains caller-owned memory.
// Returns the Table for method chaining.
func (t *Table) AddRow(fields []string) *Table {
	t.rows = append(t.rows, append([]string(nil), fields...))
	return t
}

// Headers returns a copy of the column headers.
// Returns an empty slice if no headers have been set.
func (t *Table) Headers() []string {
	return append([]string(nil), t.headers...)
}

// Rows returns all data rows as Row values.
func (t *Table) Rows() []Row {
	rows := make([]Row, len(t.rows))
	for i, fields := range t.rows {
		rows[i] = Row{
			fields:  fields,
			headers: t.headers,
		}
	}
	return rows
}

// RowCount returns the number of data rows in the table.
// This does not include the header row.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// Row returns the row at the specified index.
// Returns (Row, false) if the index is out of bounds.
// Index is 0-based (0 = first data row, not the header).
func (t *Table) Row(index int) (Row, bool) {
	if index < 0 || index >= len(t.rows) {
		return Row{}, false
	}

	return Row{
		fields:  t.rows[index],
		headers: t.headers,
	}, true
}

// PromoteHeaders moves the first data row into the header position.
// It is a no-op on an empty table.
// Returns the Table for method chaining.
func (t *Table) PromoteHeaders() *Table {
	if len(t.rows) == 0 {
		return t
	}
	t.headers = t.rows[0]
	t.rows = t.rows[1:]
	return t
}

// Get gets the field value at the specified index.
// Returns (value, false) if the index is out of bounds.
// Index is 0-based.
func (r Row) Get(index int) (string, bool) {
	if index < 0 || index >= len(r.fields) {
		return "", false
	}
	return r.fields[index], true
}

// GetByName gets the field value by header name.
// Returns (value, false) if the header name is not found or if no headers
// are set on the owning table.
func (r Row) GetByName(name string) (string, bool) {
	for i, header := range r.headers {
		if header == name {
			return r.Get(i)
		}
	}
	return "", false
}

// Fields returns a copy of all field values in the row.
func (r Row) Fields() []string {
	return append([]string(nil), r.fields...)
}

// Len returns the number of fields in the row.
func (r Row) Len() int {
	return len(r.fields)
}
