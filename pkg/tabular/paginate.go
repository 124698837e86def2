package tabular

// PageInfo describes the resolved pagination state of a computed View.
// A PerPage of 0 means pagination was disabled and every row is on page 1.
type PageInfo struct {
	Number     int // current page, 1-based
	PerPage    int
	TotalRows  int
	TotalPages int
}

// HasPrev reports whether a previous page exists.
func (p PageInfo) HasPrev() bool {
	return p.Number > 1
}

// HasNext reports whether a following page exists.
func (p PageInfo) HasNext() bool {
	return p.Number < p.TotalPages
}

// Prev returns the previous page number, clamped to 1.
func (p PageInfo) Prev() int {
	if p.Number <= 1 {
		return 1
	}
	return p.Number - 1
}

// Next returns the next page number, clamped to the last page.
func (p PageInfo) Next() int {
	if p.Number >= p.TotalPages {
		return p.TotalPages
	}
	return p.Number + 1
}

// Start returns the 1-based index of the first row on this page, or 0 when
// the table is empty. Useful for "showing 21-40 of 97" footers.
func (p PageInfo) Start() int {
	if p.TotalRows == 0 {
		return 0
	}
	if p.PerPage <= 0 {
		return 1
	}
	return (p.Number-1)*p.PerPage + 1
}

// End returns the 1-based index of the last row on this page.
func (p PageInfo) End() int {
	if p.PerPage <= 0 || p.Number*p.PerPage > p.TotalRows {
		return p.TotalRows
	}
	return p.Number * p.PerPage
}

// resolvePage turns the requested page/perPage and a row count into final
// pagination state, clamping the page number into the valid range.
func resolvePage(number, perPage, total int) PageInfo {
	if perPage <= 0 {
		return PageInfo{Number: 1, PerPage: 0, TotalRows: total, TotalPages: 1}
	}
	pages := (total + perPage - 1) / perPage
	if pages < 1 {
		pages = 1
	}
	if number < 1 {
		number = 1
	}
	if number > pages {
		number = pages
	}
	return PageInfo{Number: number, PerPage: perPage, TotalRows: total, TotalPages: pages}
}
