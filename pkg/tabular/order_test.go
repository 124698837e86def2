package tabular

import "testing"

func TestParseOrder(t *testing.T) {
	tests := []struct {
		spec string
		want Order
	}{
		{"", Order{}},
		{"-", Order{}},
		{"  ", Order{}},
		{"title", Order{Column: "title"}},
		{"-title", Order{Column: "title", Desc: true}},
		{" -pub_year ", Order{Column: "pub_year", Desc: true}},
	}
	for _, tt := range tests {
		if got := ParseOrder(tt.spec); got != tt.want {
			t.Errorf("ParseOrder(%q) = %+v, want %+v", tt.spec, got, tt.want)
		}
	}
}

func TestOrder_String(t *testing.T) {
	specs := []string{"", "title", "-title"}
	for _, spec := range specs {
		if got := ParseOrder(spec).String(); got != spec {
			t.Errorf("round trip of %q produced %q", spec, got)
		}
	}
}

func TestOrder_Toggle(t *testing.T) {
	var o Order

	o = o.Toggle("title")
	if o != (Order{Column: "title"}) {
		t.Fatalf("first toggle should sort ascending, got %+v", o)
	}

	o = o.Toggle("title")
	if o != (Order{Column: "title", Desc: true}) {
		t.Fatalf("second toggle should sort descending, got %+v", o)
	}

	o = o.Toggle("title")
	if o != (Order{Column: "title"}) {
		t.Fatalf("third toggle should return to ascending, got %+v", o)
	}

	o = o.Toggle("author")
	if o != (Order{Column: "author"}) {
		t.Fatalf("toggling another column should sort it ascending, got %+v", o)
	}
}
