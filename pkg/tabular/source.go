package tabular

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// Query describes what a Table wants from a RowSource: an optional ordering
// and a row window. A Limit <= 0 means "no limit"; Offset is ignored when it
// is negative.
type Query struct {
	Order  Order
	Offset int
	Limit  int
}

// RowSource supplies rows to a Table. Implementations are expected to honor
// the Query's ordering and window themselves, so SQL-backed sources can push
// both into the database instead of materializing everything.
type RowSource interface {
	// Count returns the total number of rows, ignoring any window.
	Count(ctx context.Context) (int, error)

	// Rows returns the rows selected by q, cells aligned with the column
	// names the source was built with.
	Rows(ctx context.Context, q Query) ([]Row, error)
}

// SliceSource is an in-memory RowSource backed by a plain slice. Ordering is
// a stable sort over the named column; windowing is a reslice. It is the
// source of choice for request-scoped data that is already in memory.
type SliceSource struct {
	columns []string
	rows    []Row
}

// NewSliceSource builds a SliceSource over rows whose cells are positionally
// aligned with columns.
func NewSliceSource(columns []string, rows ...Row) *SliceSource {
	return &SliceSource{columns: columns, rows: rows}
}

// Append adds rows to the source.
func (s *SliceSource) Append(rows ...Row) {
	s.rows = append(s.rows, rows...)
}

// Count implements RowSource.
func (s *SliceSource) Count(_ context.Context) (int, error) {
	return len(s.rows), nil
}

// Rows implements RowSource. The sort is stable so rows that compare equal
// keep their insertion order across repeated renders.
func (s *SliceSource) Rows(_ context.Context, q Query) ([]Row, error) {
	out := make([]Row, len(s.rows))
	copy(out, s.rows)

	if !q.Order.IsZero() {
		idx := s.columnIndex(q.Order.Column)
		if idx < 0 {
			return nil, fmt.Errorf("tabular: unknown order column %q", q.Order.Column)
		}
		sort.SliceStable(out, func(i, j int) bool {
			c := compareCells(out[i].Cell(idx), out[j].Cell(idx))
			if q.Order.Desc {
				return c > 0
			}
			return c < 0
		})
	}

	return window(out, q.Offset, q.Limit), nil
}

func (s *SliceSource) columnIndex(name string) int {
	for i, c := range s.columns {
		if c == name {
			return i
		}
	}
	return -1
}

// window applies offset/limit to rows without copying them again.
func window(rows []Row, offset, limit int) []Row {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(rows) {
		return nil
	}
	rows = rows[offset:]
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows
}

// compareCells orders two cell values: nils first, then numerically when both
// sides are numeric, then by time for time.Time pairs, falling back to the
// string forms. Returns <0, 0, or >0.
func compareCells(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	if af, aok := toFloat(a); aok {
		if bf, bok := toFloat(b); bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}

	if at, aok := a.(time.Time); aok {
		if bt, bok := b.(time.Time); bok {
			switch {
			case at.Before(bt):
				return -1
			case at.After(bt):
				return 1
			default:
				return 0
			}
		}
	}

	as, bs := stringify(a), stringify(b)
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return fmt.Sprint(v)
}
