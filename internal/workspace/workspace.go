// Package workspace is the vendors page: the cached vendor list, the search
// and filter state, the table over the filtered view, and the bulk actions
// on its selection.
package workspace

import (
	"context"
	"slices"

	"github.com/VyomPatel31/Vendor-Dashboard/internal/bulk"
	"github.com/VyomPatel31/Vendor-Dashboard/internal/cache"
	"github.com/VyomPatel31/Vendor-Dashboard/internal/logger"
	"github.com/VyomPatel31/Vendor-Dashboard/internal/modules/vendor"
	"github.com/VyomPatel31/Vendor-Dashboard/internal/table"
)

// VendorsKey is the cache key of the canonical vendor list.
const VendorsKey = "vendors"

// API is the vendor client surface the page uses.
type API interface {
	bulk.API
	List(ctx context.Context) ([]vendor.Vendor, error)
}

// Options are the optional collaborators of a Workspace.
type Options struct {
	// Cache is shared across pages of one session. A private cache is used
	// when nil.
	Cache     *cache.Cache[[]vendor.Vendor]
	Notifier  bulk.Notifier
	Confirmer bulk.Confirmer
	Logger    *logger.Logger
}

// Workspace is not safe for concurrent use.
type Workspace struct {
	api   API
	cache *cache.Cache[[]vendor.Vendor]
	query table.Query
	table *table.Table
	coord *bulk.Coordinator
	log   *logger.Logger
}

func New(api API, opts Options) *Workspace {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	c := opts.Cache
	if c == nil {
		c = cache.New[[]vendor.Vendor]()
	}
	w := &Workspace{
		api:   api,
		cache: c,
		table: table.New(nil),
		log:   log.WithComponent("workspace"),
	}
	w.coord = bulk.New(bulk.Config{
		API:       api,
		Cache:     c,
		CacheKey:  VendorsKey,
		Notifier:  opts.Notifier,
		Confirmer: opts.Confirmer,
		Sink:      (*sink)(w),
		Logger:    log,
	})
	return w
}

// Load fetches the vendor list on first use and derives the view from it.
func (w *Workspace) Load(ctx context.Context) error {
	vendors, err := w.cache.Fetch(ctx, VendorsKey, w.api.List)
	if err != nil {
		w.log.Warn("vendor list load failed", "error", err)
		return err
	}
	w.table.SetData(table.Filter(vendors, w.query))
	return nil
}

// Reload drops the cached list and fetches it again. The selection is not
// kept.
func (w *Workspace) Reload(ctx context.Context) error {
	w.cache.Invalidate(VendorsKey)
	w.table.ClearSelection()
	return w.Load(ctx)
}

// Vendors returns the canonical list, or nil before Load.
func (w *Workspace) Vendors() []vendor.Vendor {
	vendors, _ := w.cache.Get(VendorsKey)
	return slices.Clone(vendors)
}

func (w *Workspace) OnSelectionChange(fn func(table.Snapshot)) { w.table.OnSelectionChange(fn) }

func (w *Workspace) Query() table.Query { return w.query }

func (w *Workspace) SetSearch(search string) {
	w.query.Search = search
	w.refresh()
}

func (w *Workspace) SetStatusFilter(status string) error {
	status, err := table.ParseStatusFilter(status)
	if err != nil {
		return err
	}
	w.query.Status = status
	w.refresh()
	return nil
}

func (w *Workspace) SetSort(s table.Sort) { w.table.SetSort(s) }

func (w *Workspace) SetPageIndex(i int) error { return w.table.SetPageIndex(i) }

func (w *Workspace) SetPageSize(n int) error { return w.table.SetPageSize(n) }

func (w *Workspace) NextPage() bool { return w.table.NextPage() }

func (w *Workspace) PreviousPage() bool { return w.table.PreviousPage() }

func (w *Workspace) Page() table.Page { return w.table.Page() }

func (w *Workspace) Toggle(pos int) error { return w.table.Toggle(pos) }

func (w *Workspace) ToggleAll() { w.table.ToggleAll() }

func (w *Workspace) ClearSelection() { w.table.ClearSelection() }

// Selection resolves the selection against the current view.
func (w *Workspace) Selection() table.Snapshot { return w.table.Selection() }

// StatusCounts breaks the selection down by status.
func (w *Workspace) StatusCounts() table.StatusCounts { return w.table.Selection().StatusCounts() }

// Busy reports whether a bulk action is running.
func (w *Workspace) Busy() bool { return w.coord.Busy() }

// BulkSetStatus sets status on the selected vendors.
func (w *Workspace) BulkSetStatus(ctx context.Context, status vendor.Status) ([]vendor.Vendor, error) {
	return w.coord.BulkSetStatus(ctx, w.Selection().IDs, status)
}

// BulkDelete deletes the selected vendors after confirmation.
func (w *Workspace) BulkDelete(ctx context.Context) ([]string, error) {
	return w.coord.BulkDelete(ctx, w.Selection().IDs)
}

// SetStatus changes a single vendor.
func (w *Workspace) SetStatus(ctx context.Context, id string, status vendor.Status) (*vendor.Vendor, error) {
	return w.coord.SetStatus(ctx, id, status)
}

// refresh re-derives the view from the cached list.
func (w *Workspace) refresh() {
	vendors, ok := w.cache.Get(VendorsKey)
	if !ok {
		return
	}
	w.table.SetData(table.Filter(vendors, w.query))
}

// sink applies coordinator reconciliations to the table. A patched row that
// no longer passes the filter leaves the view, which shifts positions, so
// the selection is cleared in that case rather than remapped.
type sink Workspace

func (s *sink) PatchStatus(ids []string, status vendor.Status) {
	w := (*Workspace)(s)
	w.table.PatchStatus(ids, status)

	vendors, ok := w.cache.Get(VendorsKey)
	if !ok {
		return
	}
	view := table.Filter(vendors, w.query)
	if sameRows(view, w.table.Data()) {
		return
	}
	w.table.ClearSelection()
	w.table.SetData(view)
}

func (s *sink) DeleteRows(ids []string) {
	w := (*Workspace)(s)
	w.table.DeleteRows(ids)
	w.refresh()
}

func sameRows(a, b []vendor.Vendor) bool {
	return slices.EqualFunc(a, b, func(x, y vendor.Vendor) bool { return x.ID == y.ID })
}
