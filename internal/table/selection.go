package table

import (
	"sort"

	"github.com/VyomPatel31/Vendor-Dashboard/internal/modules/vendor"
)

// Row is a vendor at a position of the current view. Index is the row's
// position in the filtered data and is what selection is keyed by.
type Row struct {
	Index  int
	Vendor vendor.Vendor
}

// Snapshot is the selection resolved against a view. IDs, Statuses and Rows
// are parallel and ordered by position.
type Snapshot struct {
	Count    int
	IDs      []string
	Statuses []vendor.Status
	Rows     []Row
}

// StatusCounts is the per-status breakdown of a selection.
type StatusCounts struct {
	Active    int
	Pending   int
	Suspended int
}

// Total is the number of statuses counted.
func (c StatusCounts) Total() int { return c.Active + c.Pending + c.Suspended }

// CountStatuses tallies statuses.
func CountStatuses(statuses []vendor.Status) StatusCounts {
	var c StatusCounts
	for _, s := range statuses {
		switch s {
		case vendor.StatusActive:
			c.Active++
		case vendor.StatusPending:
			c.Pending++
		case vendor.StatusSuspended:
			c.Suspended++
		}
	}
	return c
}

// StatusCounts is the breakdown of the snapshot's statuses.
func (s Snapshot) StatusCounts() StatusCounts { return CountStatuses(s.Statuses) }

// Selection is a set of view positions. It never stores vendors or ids;
// those are resolved by Project against whatever view is current.
type Selection struct {
	positions map[int]struct{}
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{positions: make(map[int]struct{})}
}

// Toggle flips pos.
func (s *Selection) Toggle(pos int) {
	if _, ok := s.positions[pos]; ok {
		delete(s.positions, pos)
		return
	}
	s.positions[pos] = struct{}{}
}

// Set marks or unmarks pos.
func (s *Selection) Set(pos int, selected bool) {
	if selected {
		s.positions[pos] = struct{}{}
	} else {
		delete(s.positions, pos)
	}
}

// IsSelected reports whether pos is marked.
func (s *Selection) IsSelected(pos int) bool {
	_, ok := s.positions[pos]
	return ok
}

// Clear unmarks everything.
func (s *Selection) Clear() {
	clear(s.positions)
}

// Prune drops positions at or beyond n.
func (s *Selection) Prune(n int) {
	for pos := range s.positions {
		if pos >= n || pos < 0 {
			delete(s.positions, pos)
		}
	}
}

// Positions returns the marked positions in ascending order.
func (s *Selection) Positions() []int {
	out := make([]int, 0, len(s.positions))
	for pos := range s.positions {
		out = append(out, pos)
	}
	sort.Ints(out)
	return out
}

// Project resolves the selection against data. Positions with no row in data
// are skipped, so Count always equals len(IDs).
func (s *Selection) Project(data []vendor.Vendor) Snapshot {
	snap := Snapshot{
		IDs:      []string{},
		Statuses: []vendor.Status{},
		Rows:     []Row{},
	}
	for _, pos := range s.Positions() {
		if pos < 0 || pos >= len(data) {
			continue
		}
		v := data[pos]
		snap.IDs = append(snap.IDs, v.ID)
		snap.Statuses = append(snap.Statuses, v.Status)
		snap.Rows = append(snap.Rows, Row{Index: pos, Vendor: v})
	}
	snap.Count = len(snap.IDs)
	return snap
}
