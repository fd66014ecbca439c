// Package table derives the filtered, sorted and paged view of the vendor
// list and tracks row selection over it.
package table

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/VyomPatel31/Vendor-Dashboard/internal/modules/vendor"
)

// StatusAll disables the status filter.
const StatusAll = "all"

// Query is the search box and status dropdown.
type Query struct {
	Search string
	// Status is StatusAll, empty, or a vendor status.
	Status string
}

// Matches reports whether v passes both the search and the status filter.
// Search is a case-insensitive substring match on business name or email.
func (q Query) Matches(v vendor.Vendor) bool {
	if q.Status != "" && q.Status != StatusAll && string(v.Status) != q.Status {
		return false
	}
	if q.Search == "" {
		return true
	}
	needle := strings.ToLower(q.Search)
	return strings.Contains(strings.ToLower(v.BusinessName), needle) ||
		strings.Contains(strings.ToLower(v.Email), needle)
}

// Filter returns the vendors matching q in their input order. The input
// is not modified.
func Filter(vendors []vendor.Vendor, q Query) []vendor.Vendor {
	out := make([]vendor.Vendor, 0, len(vendors))
	for _, v := range vendors {
		if q.Matches(v) {
			out = append(out, v)
		}
	}
	return out
}

// ParseStatusFilter validates a status dropdown value.
func ParseStatusFilter(s string) (string, error) {
	if s == "" || s == StatusAll || vendor.Status(s).Valid() {
		return s, nil
	}
	return "", fmt.Errorf("unknown status filter %q", s)
}

// Column is a sortable table column.
type Column string

const (
	ColumnNone            Column = ""
	ColumnBusinessName    Column = "businessName"
	ColumnEmail           Column = "email"
	ColumnStatus          Column = "status"
	ColumnRating          Column = "rating"
	ColumnTotalOrders     Column = "totalOrders"
	ColumnTotalRevenue    Column = "totalRevenue"
	ColumnAvgDeliveryTime Column = "avgDeliveryTime"
	ColumnCreatedAt       Column = "createdAt"
)

// Sort orders the view by one column. The zero value keeps filter order.
type Sort struct {
	Column Column
	Desc   bool
}

// ParseSort reads "column" or "-column" (descending).
func ParseSort(s string) (Sort, error) {
	if s == "" {
		return Sort{}, nil
	}
	desc := strings.HasPrefix(s, "-")
	col := Column(strings.TrimPrefix(s, "-"))
	switch col {
	case ColumnBusinessName, ColumnEmail, ColumnStatus, ColumnRating,
		ColumnTotalOrders, ColumnTotalRevenue, ColumnAvgDeliveryTime, ColumnCreatedAt:
		return Sort{Column: col, Desc: desc}, nil
	}
	return Sort{}, fmt.Errorf("unknown sort column %q", col)
}

func (s Sort) compare(a, b vendor.Vendor) int {
	var c int
	switch s.Column {
	case ColumnBusinessName:
		c = cmp.Compare(strings.ToLower(a.BusinessName), strings.ToLower(b.BusinessName))
	case ColumnEmail:
		c = cmp.Compare(strings.ToLower(a.Email), strings.ToLower(b.Email))
	case ColumnStatus:
		c = cmp.Compare(a.Status, b.Status)
	case ColumnRating:
		c = cmp.Compare(a.Rating, b.Rating)
	case ColumnTotalOrders:
		c = cmp.Compare(a.TotalOrders, b.TotalOrders)
	case ColumnTotalRevenue:
		c = cmp.Compare(a.TotalRevenue, b.TotalRevenue)
	case ColumnAvgDeliveryTime:
		c = cmp.Compare(a.AvgDeliveryTime, b.AvgDeliveryTime)
	case ColumnCreatedAt:
		c = a.CreatedAt.Compare(b.CreatedAt)
	}
	if s.Desc {
		return -c
	}
	return c
}
