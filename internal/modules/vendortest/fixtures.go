package vendortest

import (
	"time"

	"github.com/VyomPatel31/Vendor-Dashboard/internal/modules/vendor"
)

// Vendors returns a small mixed-status fixture: two active, two pending,
// two suspended.
func Vendors() []vendor.Vendor {
	base := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	return []vendor.Vendor{
		{ID: "A", BusinessName: "Acme Traders", Email: "sales@acme.test", Rating: 4.6, Status: vendor.StatusActive, TotalOrders: 100, TotalRevenue: 10000, AvgDeliveryTime: 2.5, CreatedAt: base},
		{ID: "B", BusinessName: "Bolt Supplies", Email: "hello@bolt.test", Rating: 3.9, Status: vendor.StatusPending, TotalOrders: 50, TotalRevenue: 5000, AvgDeliveryTime: 3, CreatedAt: base.AddDate(0, 1, 0)},
		{ID: "C", BusinessName: "Cedar Crafts", Email: "cedar@crafts.test", Rating: 4.1, Status: vendor.StatusSuspended, TotalOrders: 320, TotalRevenue: 48000, AvgDeliveryTime: 5, CreatedAt: base.AddDate(0, 1, 5)},
		{ID: "D", BusinessName: "Delta Foods", Email: "orders@delta.test", Rating: 2.7, Status: vendor.StatusActive, TotalOrders: 640, TotalRevenue: 70000, AvgDeliveryTime: 1.5, CreatedAt: base.AddDate(0, 3, 0)},
		{ID: "E", BusinessName: "Echo Textiles", Email: "echo@textiles.test", Rating: 3.3, Status: vendor.StatusPending, TotalOrders: 12, TotalRevenue: 900, AvgDeliveryTime: 7, CreatedAt: base.AddDate(0, 4, 0)},
		{ID: "F", BusinessName: "Fern Mart", Email: "fern@mart.test", Rating: 4.9, Status: vendor.StatusSuspended, TotalOrders: 205, TotalRevenue: 22000, AvgDeliveryTime: 4, CreatedAt: base.AddDate(0, 5, 0)},
	}
}

// Pair returns the two-vendor store used by the end-to-end scenario:
// A active with 100 orders and 10,000 revenue, B pending with 50 and 5,000.
func Pair() []vendor.Vendor {
	return Vendors()[:2]
}
