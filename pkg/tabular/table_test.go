package tabular

import (
	"context"
	"testing"
)

func testTable() *Table {
	return New(testSliceSource(),
		Column{Name: "title", Sortable: true},
		Column{Name: "year", Title: "Published", Sortable: true},
	)
}

func TestNew_DerivesTitles(t *testing.T) {
	tbl := New(nil,
		Column{Name: "pub_year"},
		Column{Name: "author", Title: "Writer"},
	)
	cols := tbl.Columns()
	if cols[0].Title != "Pub Year" {
		t.Errorf("expected derived title 'Pub Year', got %q", cols[0].Title)
	}
	if cols[1].Title != "Writer" {
		t.Errorf("explicit title overwritten: got %q", cols[1].Title)
	}
}

func TestTable_SetOrder(t *testing.T) {
	tbl := New(testSliceSource(),
		Column{Name: "title", Sortable: true},
		Column{Name: "year"},
	)

	tbl.SetOrder("-title")
	if tbl.Order() != (Order{Column: "title", Desc: true}) {
		t.Errorf("sortable column not applied: %+v", tbl.Order())
	}

	tbl.SetOrder("year")
	if tbl.Order() != (Order{Column: "title", Desc: true}) {
		t.Errorf("unsortable column should be ignored, got %+v", tbl.Order())
	}

	tbl.SetOrder("isbn")
	if tbl.Order() != (Order{Column: "title", Desc: true}) {
		t.Errorf("unknown column should be ignored, got %+v", tbl.Order())
	}

	tbl.SetOrder("")
	if !tbl.Order().IsZero() {
		t.Errorf("empty spec should reset the order, got %+v", tbl.Order())
	}
}

func TestTable_Compute(t *testing.T) {
	ctx := context.Background()

	t.Run("Unpaginated", func(t *testing.T) {
		view, err := testTable().Compute(ctx)
		if err != nil {
			t.Fatalf("Compute failed: %v", err)
		}
		if len(view.Rows) != 4 {
			t.Errorf("expected all 4 rows, got %d", len(view.Rows))
		}
		if view.Page.TotalPages != 1 || view.Page.Number != 1 {
			t.Errorf("unpaginated view should be a single page, got %+v", view.Page)
		}
	})

	t.Run("Paginated", func(t *testing.T) {
		tbl := testTable()
		tbl.SetOrder("title")
		tbl.Paginate(2, 3)
		view, err := tbl.Compute(ctx)
		if err != nil {
			t.Fatalf("Compute failed: %v", err)
		}
		if view.Page.TotalPages != 2 || view.Page.Number != 2 {
			t.Fatalf("expected page 2 of 2, got %+v", view.Page)
		}
		if len(view.Rows) != 1 || view.Rows[0].Cell(0) != "Leviathan Wakes" {
			t.Errorf("page 2 should hold the last sorted row, got %v", view.Rows)
		}
		if !view.Page.HasPrev() || view.Page.HasNext() {
			t.Errorf("page link state wrong: %+v", view.Page)
		}
		if view.Page.Start() != 4 || view.Page.End() != 4 {
			t.Errorf("expected row window 4-4, got %d-%d", view.Page.Start(), view.Page.End())
		}
	})

	t.Run("PageClamped", func(t *testing.T) {
		tbl := testTable()
		tbl.Paginate(99, 3)
		view, err := tbl.Compute(ctx)
		if err != nil {
			t.Fatalf("Compute failed: %v", err)
		}
		if view.Page.Number != 2 {
			t.Errorf("out-of-range page should clamp to the last page, got %d", view.Page.Number)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		tbl := New(NewSliceSource([]string{"title"}), Column{Name: "title"})
		tbl.Paginate(1, 10)
		view, err := tbl.Compute(ctx)
		if err != nil {
			t.Fatalf("Compute failed: %v", err)
		}
		if view.Page.TotalPages != 1 || view.Page.Start() != 0 {
			t.Errorf("empty table page info wrong: %+v", view.Page)
		}
	})

	t.Run("NoSource", func(t *testing.T) {
		tbl := New(nil, Column{Name: "title"})
		if _, err := tbl.Compute(ctx); err == nil {
			t.Error("expected an error for a table without a source")
		}
	})
}

func TestView_Toggled(t *testing.T) {
	tbl := testTable()
	tbl.SetOrder("title")
	view, err := tbl.Compute(context.Background())
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if got := view.Toggled(view.Columns[0]); got != "-title" {
		t.Errorf("toggling the active ascending column should yield '-title', got %q", got)
	}
	if got := view.Toggled(view.Columns[1]); got != "year" {
		t.Errorf("toggling an inactive column should yield 'year', got %q", got)
	}
}
