package tabular

import (
	"context"
	"fmt"
)

// Table ties a RowSource to a column list and carries the transient display
// state (ordering, pagination) applied for a single render. It is not safe
// for concurrent use; build one per request.
type Table struct {
	// TemplateName optionally names the template the tag layer should render
	// this table with, overriding the configured default.
	TemplateName string

	columns []Column
	source  RowSource
	order   Order
	pageNum int
	perPage int
}

// New builds a Table over source. Columns without an explicit Title get one
// derived from their Name.
func New(source RowSource, columns ...Column) *Table {
	cols := make([]Column, len(columns))
	for i, c := range columns {
		cols[i] = c.deriveTitle()
	}
	return &Table{columns: cols, source: source}
}

// Columns returns the table's column list.
func (t *Table) Columns() []Column {
	return t.columns
}

// Order returns the currently applied ordering.
func (t *Table) Order() Order {
	return t.order
}

// PerPage returns the configured page size, 0 if Paginate was never called.
func (t *Table) PerPage() int {
	return t.perPage
}

// SetOrder applies an order spec ("name" or "-name"). Specs naming an
// unknown or unsortable column are ignored, so hand-edited query strings
// cannot force an invalid ordering.
func (t *Table) SetOrder(spec string) {
	o := ParseOrder(spec)
	if o.IsZero() {
		t.order = Order{}
		return
	}
	for _, c := range t.columns {
		if c.Name == o.Column && c.Sortable {
			t.order = o
			return
		}
	}
}

// Paginate sets the page number and page size for the next Compute. Values
// below 1 are clamped; the page number is further clamped to the last page
// once the row count is known.
func (t *Table) Paginate(page, perPage int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}
	t.pageNum = page
	t.perPage = perPage
}

// Compute resolves the table against its source: counts rows, clamps the
// page window, fetches the windowed rows, and returns an immutable View for
// rendering.
func (t *Table) Compute(ctx context.Context) (*View, error) {
	if t.source == nil {
		return nil, fmt.Errorf("tabular: table has no row source")
	}

	total, err := t.source.Count(ctx)
	if err != nil {
		return nil, err
	}
	page := resolvePage(t.pageNum, t.perPage, total)

	q := Query{Order: t.order}
	if page.PerPage > 0 {
		q.Offset = (page.Number - 1) * page.PerPage
		q.Limit = page.PerPage
	}
	rows, err := t.source.Rows(ctx, q)
	if err != nil {
		return nil, err
	}

	return &View{
		Columns: t.columns,
		Rows:    rows,
		Order:   t.order,
		Page:    page,
	}, nil
}

// View is the computed, render-ready form of a Table.
type View struct {
	Columns []Column
	Rows    []Row
	Order   Order
	Page    PageInfo
}

// Toggled returns the order spec a sort link for col should apply, flipping
// to descending when col is already the ascending sort key.
func (v *View) Toggled(col Column) string {
	return v.Order.Toggle(col.Name).String()
}
