package tabular

import (
	"context"
	"reflect"
	"testing"
)

func testSliceSource() *SliceSource {
	return NewSliceSource(
		[]string{"title", "year"},
		Row{"Leviathan Wakes", 2011},
		Row{"Annihilation", 2014},
		Row{"Blindsight", 2006},
		Row{"Embassytown", 2011},
	)
}

func TestSliceSource_Rows(t *testing.T) {
	ctx := context.Background()
	src := testSliceSource()

	t.Run("SourceOrder", func(t *testing.T) {
		rows, err := src.Rows(ctx, Query{})
		if err != nil {
			t.Fatalf("Rows failed: %v", err)
		}
		if len(rows) != 4 || rows[0].Cell(0) != "Leviathan Wakes" {
			t.Errorf("expected insertion order, got %v", rows)
		}
	})

	t.Run("Ascending", func(t *testing.T) {
		rows, err := src.Rows(ctx, Query{Order: Order{Column: "title"}})
		if err != nil {
			t.Fatalf("Rows failed: %v", err)
		}
		if rows[0].Cell(0) != "Annihilation" || rows[3].Cell(0) != "Leviathan Wakes" {
			t.Errorf("ascending title sort wrong: %v", rows)
		}
	})

	t.Run("Descending", func(t *testing.T) {
		rows, err := src.Rows(ctx, Query{Order: Order{Column: "year", Desc: true}})
		if err != nil {
			t.Fatalf("Rows failed: %v", err)
		}
		if rows[0].Cell(1) != 2014 || rows[3].Cell(1) != 2006 {
			t.Errorf("descending year sort wrong: %v", rows)
		}
	})

	t.Run("StableTies", func(t *testing.T) {
		// Two books share year 2011; a stable sort keeps insertion order.
		rows, err := src.Rows(ctx, Query{Order: Order{Column: "year"}})
		if err != nil {
			t.Fatalf("Rows failed: %v", err)
		}
		if rows[1].Cell(0) != "Leviathan Wakes" || rows[2].Cell(0) != "Embassytown" {
			t.Errorf("tie order not stable: %v", rows)
		}
	})

	t.Run("Window", func(t *testing.T) {
		rows, err := src.Rows(ctx, Query{Offset: 1, Limit: 2})
		if err != nil {
			t.Fatalf("Rows failed: %v", err)
		}
		want := []Row{{"Annihilation", 2014}, {"Blindsight", 2006}}
		if !reflect.DeepEqual(rows, want) {
			t.Errorf("window wrong: got %v, want %v", rows, want)
		}
	})

	t.Run("OffsetPastEnd", func(t *testing.T) {
		rows, err := src.Rows(ctx, Query{Offset: 99, Limit: 2})
		if err != nil {
			t.Fatalf("Rows failed: %v", err)
		}
		if len(rows) != 0 {
			t.Errorf("expected no rows past the end, got %v", rows)
		}
	})

	t.Run("UnknownColumn", func(t *testing.T) {
		if _, err := src.Rows(ctx, Query{Order: Order{Column: "isbn"}}); err == nil {
			t.Error("expected an error for an unknown order column")
		}
	})

	t.Run("SourceUnchanged", func(t *testing.T) {
		if _, err := src.Rows(ctx, Query{Order: Order{Column: "title"}}); err != nil {
			t.Fatalf("Rows failed: %v", err)
		}
		rows, _ := src.Rows(ctx, Query{})
		if rows[0].Cell(0) != "Leviathan Wakes" {
			t.Error("sorting mutated the backing slice")
		}
	})
}

func TestCompareCells(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want int
	}{
		{"NilsEqual", nil, nil, 0},
		{"NilFirst", nil, "x", -1},
		{"IntLess", 3, 10, -1},
		{"MixedNumeric", int64(3), 2.5, 1},
		{"Strings", "abc", "abd", -1},
		{"Bytes", []byte("a"), "b", -1},
		{"Equal", 7, 7, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := compareCells(tt.a, tt.b)
			if sign(got) != tt.want {
				t.Errorf("compareCells(%v, %v) = %d, want sign %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
