package table

import (
	"fmt"
	"slices"
	"sort"

	"github.com/VyomPatel31/Vendor-Dashboard/internal/modules/vendor"
)

// PageSizes are the selectable page sizes.
var PageSizes = []int{5, 10, 20, 30, 40, 50}

const DefaultPageSize = 10

// Page is the slice of the sorted view currently shown.
type Page struct {
	Rows        []Row
	PageIndex   int
	PageSize    int
	PageCount   int
	Total       int
	CanPrevious bool
	CanNext     bool
}

// Table holds the filtered data handed to it, the sort and pagination state,
// and a position-keyed selection. Every change to the selection or to the
// rows it resolves against is published to the OnSelectionChange callback
// with a freshly projected snapshot.
//
// Table is not safe for concurrent use; the owning page drives it from one
// goroutine.
type Table struct {
	data       []vendor.Vendor
	sort       Sort
	pageIndex  int
	pageSize   int
	selection  *Selection
	onSelected func(Snapshot)
}

// New creates a table over data with the default page size.
func New(data []vendor.Vendor) *Table {
	return &Table{
		data:      slices.Clone(data),
		pageSize:  DefaultPageSize,
		selection: NewSelection(),
	}
}

// OnSelectionChange registers fn to receive every selection change.
func (t *Table) OnSelectionChange(fn func(Snapshot)) {
	t.onSelected = fn
}

// SetData replaces the view rows. Selected positions past the end of the new
// data are dropped; the page index is kept.
func (t *Table) SetData(data []vendor.Vendor) {
	t.data = slices.Clone(data)
	t.selection.Prune(len(t.data))
	t.publish()
}

// Data returns a copy of the view rows in filter order.
func (t *Table) Data() []vendor.Vendor { return slices.Clone(t.data) }

// SetSort changes the sort. Selection follows rows, not screen slots.
func (t *Table) SetSort(s Sort) { t.sort = s }

// Sort returns the current sort.
func (t *Table) Sort() Sort { return t.sort }

// SetPageSize changes the page size to one of PageSizes.
func (t *Table) SetPageSize(n int) error {
	if !slices.Contains(PageSizes, n) {
		return fmt.Errorf("page size %d not one of %v", n, PageSizes)
	}
	t.pageSize = n
	return nil
}

// SetPageIndex jumps to a zero-based page.
func (t *Table) SetPageIndex(i int) error {
	if i < 0 || (i > 0 && i >= t.pageCount()) {
		return fmt.Errorf("page %d out of range (%d pages)", i+1, t.pageCount())
	}
	t.pageIndex = i
	return nil
}

// NextPage advances one page if possible.
func (t *Table) NextPage() bool {
	if t.currentPageIndex()+1 >= t.pageCount() {
		return false
	}
	t.pageIndex = t.currentPageIndex() + 1
	return true
}

// PreviousPage goes back one page if possible.
func (t *Table) PreviousPage() bool {
	if t.currentPageIndex() == 0 {
		return false
	}
	t.pageIndex = t.currentPageIndex() - 1
	return true
}

// Page returns the rows of the current page in sort order.
func (t *Table) Page() Page {
	order := t.sortedPositions()
	idx := t.currentPageIndex()
	start := min(idx*t.pageSize, len(order))
	end := min(start+t.pageSize, len(order))

	rows := make([]Row, 0, end-start)
	for _, pos := range order[start:end] {
		rows = append(rows, Row{Index: pos, Vendor: t.data[pos]})
	}
	count := t.pageCount()
	return Page{
		Rows:        rows,
		PageIndex:   idx,
		PageSize:    t.pageSize,
		PageCount:   count,
		Total:       len(t.data),
		CanPrevious: idx > 0,
		CanNext:     idx+1 < count,
	}
}

// Toggle flips the selection of the row at view position pos.
func (t *Table) Toggle(pos int) error {
	if pos < 0 || pos >= len(t.data) {
		return fmt.Errorf("row %d out of range", pos)
	}
	t.selection.Toggle(pos)
	t.publish()
	return nil
}

// ToggleAll selects every row on the current page, or clears them all when
// they are already selected. Rows on other pages are not touched.
func (t *Table) ToggleAll() {
	rows := t.Page().Rows
	selectAll := !t.allSelected(rows)
	for _, r := range rows {
		t.selection.Set(r.Index, selectAll)
	}
	t.publish()
}

// AllPageSelected reports whether the current page is non-empty and fully
// selected.
func (t *Table) AllPageSelected() bool {
	return t.allSelected(t.Page().Rows)
}

// IsSelected reports whether the row at pos is selected.
func (t *Table) IsSelected(pos int) bool { return t.selection.IsSelected(pos) }

// ClearSelection unselects every row.
func (t *Table) ClearSelection() {
	t.selection.Clear()
	t.publish()
}

// Selection resolves the selection against the current rows.
func (t *Table) Selection() Snapshot { return t.selection.Project(t.data) }

// PatchStatus sets status on every row whose id is in ids, keeping positions
// and selection as they are.
func (t *Table) PatchStatus(ids []string, status vendor.Status) {
	set := toSet(ids)
	next := slices.Clone(t.data)
	for i := range next {
		if _, ok := set[next[i].ID]; ok {
			next[i].Status = status
		}
	}
	t.data = next
	t.publish()
}

// DeleteRows drops every row whose id is in ids and clears the selection:
// removed rows leave no position to reconcile against.
func (t *Table) DeleteRows(ids []string) {
	set := toSet(ids)
	t.data = slices.DeleteFunc(slices.Clone(t.data), func(v vendor.Vendor) bool {
		_, ok := set[v.ID]
		return ok
	})
	t.selection.Clear()
	t.publish()
}

func (t *Table) allSelected(rows []Row) bool {
	if len(rows) == 0 {
		return false
	}
	for _, r := range rows {
		if !t.selection.IsSelected(r.Index) {
			return false
		}
	}
	return true
}

func (t *Table) pageCount() int {
	return (len(t.data) + t.pageSize - 1) / t.pageSize
}

// currentPageIndex clamps the stored index to the last page when the data
// has shrunk underneath it.
func (t *Table) currentPageIndex() int {
	if n := t.pageCount(); t.pageIndex >= n {
		return max(n-1, 0)
	}
	return t.pageIndex
}

func (t *Table) sortedPositions() []int {
	order := make([]int, len(t.data))
	for i := range order {
		order[i] = i
	}
	if t.sort.Column == ColumnNone {
		return order
	}
	sort.SliceStable(order, func(i, j int) bool {
		return t.sort.compare(t.data[order[i]], t.data[order[j]]) < 0
	})
	return order
}

func (t *Table) publish() {
	if t.onSelected != nil {
		t.onSelected(t.Selection())
	}
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
