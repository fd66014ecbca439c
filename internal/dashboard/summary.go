// Package dashboard computes the figures shown on the dashboard page.
package dashboard

import (
	"cmp"
	"slices"
	"time"

	"github.com/VyomPatel31/Vendor-Dashboard/internal/modules/vendor"
)

const (
	topVendorCount = 5
	topNameLength  = 15
)

// MonthPoint is one calendar month of a trend.
type MonthPoint struct {
	Month string  `json:"month"` // "2006-01"
	Label string  `json:"label"` // "Jan 2006"
	Count int     `json:"count"`
	Value float64 `json:"value"`
}

// Bucket is one range of the orders distribution.
type Bucket struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

// TopVendor is a bar of the top vendors chart.
type TopVendor struct {
	Name   string `json:"name"`
	Orders int    `json:"orders"`
}

// Summary is every dashboard figure for one vendor list.
type Summary struct {
	TotalVendors    int     `json:"totalVendors"`
	Active          int     `json:"active"`
	Pending         int     `json:"pending"`
	Suspended       int     `json:"suspended"`
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalOrders     int     `json:"totalOrders"`
	AvgRating       float64 `json:"avgRating"`
	AvgDeliveryTime float64 `json:"avgDeliveryTime"`

	// Growth counts vendors created per month; Value is unused.
	Growth []MonthPoint `json:"growth"`
	// Revenue sums totalRevenue of vendors created per month in Value.
	Revenue []MonthPoint `json:"revenue"`

	OrderBuckets []Bucket    `json:"orderBuckets"`
	TopVendors   []TopVendor `json:"topVendors"`
}

// Summarize computes the dashboard for vendors without modifying the slice.
func Summarize(vendors []vendor.Vendor) Summary {
	s := Summary{
		TotalVendors: len(vendors),
		OrderBuckets: []Bucket{
			{Range: "0-50"}, {Range: "51-200"}, {Range: "201-500"}, {Range: "500+"},
		},
	}

	var ratingSum, deliverySum float64
	months := make(map[string]*MonthPoint)
	for _, v := range vendors {
		switch v.Status {
		case vendor.StatusActive:
			s.Active++
		case vendor.StatusPending:
			s.Pending++
		case vendor.StatusSuspended:
			s.Suspended++
		}
		s.TotalRevenue += v.TotalRevenue
		s.TotalOrders += v.TotalOrders
		ratingSum += v.Rating
		deliverySum += v.AvgDeliveryTime

		s.OrderBuckets[bucketFor(v.TotalOrders)].Count++

		key := Month(v.CreatedAt)
		p, ok := months[key]
		if !ok {
			p = &MonthPoint{Month: key, Label: v.CreatedAt.Format("Jan 2006")}
			months[key] = p
		}
		p.Count++
		p.Value += v.TotalRevenue
	}

	if n := len(vendors); n > 0 {
		s.AvgRating = ratingSum / float64(n)
		s.AvgDeliveryTime = deliverySum / float64(n)
	}

	keys := make([]string, 0, len(months))
	for k := range months {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	s.Growth = make([]MonthPoint, 0, len(keys))
	s.Revenue = make([]MonthPoint, 0, len(keys))
	for _, k := range keys {
		p := *months[k]
		s.Growth = append(s.Growth, MonthPoint{Month: p.Month, Label: p.Label, Count: p.Count})
		s.Revenue = append(s.Revenue, p)
	}

	s.TopVendors = topVendors(vendors)
	return s
}

func bucketFor(orders int) int {
	switch {
	case orders <= 50:
		return 0
	case orders <= 200:
		return 1
	case orders <= 500:
		return 2
	default:
		return 3
	}
}

func topVendors(vendors []vendor.Vendor) []TopVendor {
	sorted := slices.Clone(vendors)
	slices.SortStableFunc(sorted, func(a, b vendor.Vendor) int {
		return cmp.Compare(b.TotalOrders, a.TotalOrders)
	})
	sorted = sorted[:min(topVendorCount, len(sorted))]

	out := make([]TopVendor, 0, len(sorted))
	for _, v := range sorted {
		out = append(out, TopVendor{Name: truncate(v.BusinessName, topNameLength), Orders: v.TotalOrders})
	}
	return out
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// Month returns the calendar month key used by the trends.
func Month(t time.Time) string { return t.Format("2006-01") }
