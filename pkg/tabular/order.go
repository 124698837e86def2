package tabular

import "strings"

// Order is a single-column ordering instruction. The zero value means
// "source order": no ORDER BY is pushed down and in-memory rows keep their
// insertion order.
type Order struct {
	Column string
	Desc   bool
}

// ParseOrder decodes an order spec of the form "name" or "-name", the same
// encoding the sort query parameter uses. Whitespace is trimmed; an empty
// spec yields the zero Order.
func ParseOrder(spec string) Order {
	spec = strings.TrimSpace(spec)
	if spec == "" || spec == "-" {
		return Order{}
	}
	if strings.HasPrefix(spec, "-") {
		return Order{Column: spec[1:], Desc: true}
	}
	return Order{Column: spec}
}

// String re-encodes the order as a spec string ("name", "-name", or "").
func (o Order) String() string {
	if o.Column == "" {
		return ""
	}
	if o.Desc {
		return "-" + o.Column
	}
	return o.Column
}

// IsZero reports whether the order is unset.
func (o Order) IsZero() bool {
	return o.Column == ""
}

// Toggle returns the order a sort link for column should apply: ascending
// by default, descending when the column is already the ascending sort key.
func (o Order) Toggle(column string) Order {
	if o.Column == column && !o.Desc {
		return Order{Column: column, Desc: true}
	}
	return Order{Column: column}
}
