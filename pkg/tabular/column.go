package tabular

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Column describes one displayable column of a Table.
type Column struct {
	// Name identifies the column within its RowSource. For SQLSource this is
	// the database column name.
	Name string

	// Title is the header text. If empty, it is derived from Name when the
	// column is attached to a Table: underscores become spaces and each word
	// is title-cased ("pub_year" -> "Pub Year").
	Title string

	// Sortable marks the column as orderable. The default table template
	// only emits sort links for sortable columns, and Table.SetOrder ignores
	// order specs naming unsortable ones.
	Sortable bool
}

// deriveTitle fills in Title from Name if the caller left it empty.
// A Caser is stateful and not safe for shared use, so one is built per call.
func (c Column) deriveTitle() Column {
	if c.Title == "" {
		c.Title = cases.Title(language.English).String(strings.ReplaceAll(c.Name, "_", " "))
	}
	return c
}
