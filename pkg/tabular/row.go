package tabular

// Row holds the cell values for a single table row, positionally aligned
// with the Table's column list. Cells are kept as any so sources can hand
// back whatever database/sql or the caller produced; the template layer
// stringifies them on output.
type Row []any

// Cell returns the value at index i, or nil when the row is shorter than
// the column list it is rendered against.
func (r Row) Cell(i int) any {
	if i < 0 || i >= len(r) {
		return nil
	}
	return r[i]
}
