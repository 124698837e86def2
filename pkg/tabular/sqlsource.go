package tabular

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"
)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLSource is a RowSource backed by a single database table. Ordering and
// windowing are pushed into the generated SQL, so only the rows a page needs
// ever leave the database. Identifiers are validated and double-quoted; the
// ORDER BY column must be one of the configured columns, so no request input
// reaches the SQL text unchecked.
type SQLSource struct {
	db        *sql.DB
	table     string
	columns   []string
	selectAll string
	stmtCount *sql.Stmt
}

// NewSQLSource builds an SQLSource over the named table and columns and
// prepares its count statement. Close must be called when the source is no
// longer needed.
func NewSQLSource(db *sql.DB, table string, columns ...string) (*SQLSource, error) {
	if err := validIdent(table); err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("tabular: sql source needs at least one column")
	}
	quoted := make([]string, len(columns))
	for i, c := range columns {
		if err := validIdent(c); err != nil {
			return nil, err
		}
		quoted[i] = quoteIdent(c)
	}

	stmtCount, err := db.Prepare(fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteIdent(table)))
	if err != nil {
		return nil, fmt.Errorf("failed to prepare count statement: %w", err)
	}

	return &SQLSource{
		db:        db,
		table:     table,
		columns:   columns,
		selectAll: fmt.Sprintf("SELECT %s FROM %s", strings.Join(quoted, ", "), quoteIdent(table)),
		stmtCount: stmtCount,
	}, nil
}

// Close releases the prepared statements. The *sql.DB itself is owned by the
// caller and is left open.
func (s *SQLSource) Close() error {
	return s.stmtCount.Close()
}

// Columns returns the column names the source selects, in order.
func (s *SQLSource) Columns() []string {
	out := make([]string, len(s.columns))
	copy(out, s.columns)
	return out
}

// Count implements RowSource.
func (s *SQLSource) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.stmtCount.QueryRowContext(ctx).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count rows of %s: %w", s.table, err)
	}
	return n, nil
}

// Rows implements RowSource. The ORDER BY clause varies per query, so the
// statement cannot be prepared once up front the way the count is.
func (s *SQLSource) Rows(ctx context.Context, q Query) ([]Row, error) {
	query := s.selectAll
	var args []any

	if !q.Order.IsZero() {
		if !s.hasColumn(q.Order.Column) {
			return nil, fmt.Errorf("tabular: unknown order column %q", q.Order.Column)
		}
		dir := "ASC"
		if q.Order.Desc {
			dir = "DESC"
		}
		query += fmt.Sprintf(" ORDER BY %s %s", quoteIdent(q.Order.Column), dir)
	}

	if q.Limit > 0 {
		offset := q.Offset
		if offset < 0 {
			offset = 0
		}
		query += " LIMIT ? OFFSET ?"
		args = append(args, q.Limit, offset)
	} else if q.Offset > 0 {
		// SQLite requires a LIMIT clause before OFFSET; -1 means unlimited.
		query += " LIMIT -1 OFFSET ?"
		args = append(args, q.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", s.table, err)
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	var out []Row
	for rows.Next() {
		cells := make(Row, len(s.columns))
		ptrs := make([]any, len(s.columns))
		for i := range cells {
			ptrs[i] = &cells[i]
		}
		if err = rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row of %s: %w", s.table, err)
		}
		for i, c := range cells {
			// Drivers commonly hand back []byte for TEXT columns; keep
			// templates string-friendly.
			if b, ok := c.([]byte); ok {
				cells[i] = string(b)
			}
		}
		out = append(out, cells)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQLSource) hasColumn(name string) bool {
	for _, c := range s.columns {
		if c == name {
			return true
		}
	}
	return false
}

func validIdent(name string) error {
	if !identRe.MatchString(name) {
		return fmt.Errorf("tabular: invalid identifier %q", name)
	}
	return nil
}

func quoteIdent(name string) string {
	return `"` + name + `"`
}
