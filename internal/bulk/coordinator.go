// Package bulk runs status changes and deletions over selected vendors and
// reconciles the results into the cached list and the table selection.
package bulk

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/VyomPatel31/Vendor-Dashboard/internal/cache"
	"github.com/VyomPatel31/Vendor-Dashboard/internal/logger"
	"github.com/VyomPatel31/Vendor-Dashboard/internal/modules/vendor"
)

var (
	ErrEmptySelection = errors.New("no vendors selected")
	ErrCancelled      = errors.New("action cancelled")
	ErrBusy           = errors.New("another bulk action is in progress")
)

// API is the part of the vendor client the coordinator writes through.
type API interface {
	SetStatus(ctx context.Context, id string, status vendor.Status) (*vendor.Vendor, error)
	BulkSetStatus(ctx context.Context, ids []string, status vendor.Status) ([]vendor.Vendor, error)
	BulkDelete(ctx context.Context, ids []string) ([]string, error)
}

// Notifier shows transient success and failure messages.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Confirmer asks the user to confirm a destructive action.
type Confirmer interface {
	Confirm(msg string) bool
}

// SelectionSink receives reconciled changes for the rows the selection
// resolves against.
type SelectionSink interface {
	PatchStatus(ids []string, status vendor.Status)
	DeleteRows(ids []string)
}

// Coordinator issues bulk writes and applies the server's answer to the
// cache and the selection. A failed call changes nothing.
type Coordinator struct {
	api      API
	cache    *cache.Cache[[]vendor.Vendor]
	cacheKey string
	notifier Notifier
	confirm  Confirmer
	sink     SelectionSink
	log      *logger.Logger

	busy atomic.Bool
}

// Config wires a Coordinator.
type Config struct {
	API       API
	Cache     *cache.Cache[[]vendor.Vendor]
	CacheKey  string
	Notifier  Notifier
	Confirmer Confirmer
	Sink      SelectionSink
	Logger    *logger.Logger
}

// New creates a Coordinator. Notifier, Sink and Logger are optional; a nil
// Confirmer declines every destructive action.
func New(cfg Config) *Coordinator {
	log := cfg.Logger
	if log == nil {
		log = logger.Discard()
	}
	return &Coordinator{
		api:      cfg.API,
		cache:    cfg.Cache,
		cacheKey: cfg.CacheKey,
		notifier: cfg.Notifier,
		confirm:  cfg.Confirmer,
		sink:     cfg.Sink,
		log:      log.WithComponent("bulk"),
	}
}

// Busy reports whether a bulk call is outstanding. Bulk controls are
// disabled while it is true.
func (c *Coordinator) Busy() bool { return c.busy.Load() }

// BulkSetStatus sets status on ids. Only the vendors the server reports as
// matched are reconciled; the returned slice is that subset.
func (c *Coordinator) BulkSetStatus(ctx context.Context, ids []string, status vendor.Status) ([]vendor.Vendor, error) {
	if len(ids) == 0 {
		return nil, ErrEmptySelection
	}
	if !c.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer c.busy.Store(false)

	updated, err := c.api.BulkSetStatus(ctx, ids, status)
	if err != nil {
		c.log.Warn("bulk status update failed", "count", len(ids), "status", status, "error", err)
		c.notifyError("Failed to update vendor status")
		return nil, fmt.Errorf("bulk set status: %w", err)
	}

	c.applyUpdates(updated)
	if c.sink != nil {
		c.sink.PatchStatus(idsOf(updated), status)
	}
	c.log.Info("bulk status updated", "requested", len(ids), "matched", len(updated), "status", status)
	c.notifySuccess("Vendor status updated successfully")
	return updated, nil
}

// BulkDelete removes ids after the user confirms. Acknowledged ids are
// dropped from the cache and the selection is cleared.
func (c *Coordinator) BulkDelete(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, ErrEmptySelection
	}
	msg := fmt.Sprintf("Are you sure you want to delete %d vendor(s)? This action cannot be undone.", len(ids))
	if c.confirm == nil || !c.confirm.Confirm(msg) {
		return nil, ErrCancelled
	}
	if !c.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer c.busy.Store(false)

	deleted, err := c.api.BulkDelete(ctx, ids)
	if err != nil {
		c.log.Warn("bulk delete failed", "count", len(ids), "error", err)
		c.notifyError("Failed to delete vendors")
		return nil, fmt.Errorf("bulk delete: %w", err)
	}

	removed := toSet(deleted)
	if c.cache != nil {
		c.cache.Patch(c.cacheKey, func(vendors []vendor.Vendor) []vendor.Vendor {
			return slices.DeleteFunc(slices.Clone(vendors), func(v vendor.Vendor) bool {
				_, ok := removed[v.ID]
				return ok
			})
		})
	}
	if c.sink != nil {
		c.sink.DeleteRows(deleted)
	}
	c.log.Info("bulk delete completed", "requested", len(ids), "deleted", len(deleted))
	c.notifySuccess("Vendors deleted successfully")
	return deleted, nil
}

// SetStatus changes one vendor from its row menu. It does not take the busy
// guard and keeps the selection.
func (c *Coordinator) SetStatus(ctx context.Context, id string, status vendor.Status) (*vendor.Vendor, error) {
	updated, err := c.api.SetStatus(ctx, id, status)
	if err != nil {
		c.log.Warn("status update failed", "id", id, "status", status, "error", err)
		c.notifyError("Failed to update vendor status")
		return nil, fmt.Errorf("set status: %w", err)
	}
	if updated == nil {
		return nil, fmt.Errorf("set status: empty response for %q", id)
	}

	c.applyUpdates([]vendor.Vendor{*updated})
	if c.sink != nil {
		c.sink.PatchStatus([]string{updated.ID}, updated.Status)
	}
	c.notifySuccess("Vendor status updated")
	return updated, nil
}

// applyUpdates replaces cached records with the server's copies.
func (c *Coordinator) applyUpdates(updated []vendor.Vendor) {
	if c.cache == nil || len(updated) == 0 {
		return
	}
	byID := make(map[string]vendor.Vendor, len(updated))
	for _, v := range updated {
		byID[v.ID] = v
	}
	c.cache.Patch(c.cacheKey, func(vendors []vendor.Vendor) []vendor.Vendor {
		next := slices.Clone(vendors)
		for i := range next {
			if v, ok := byID[next[i].ID]; ok {
				next[i] = v
			}
		}
		return next
	})
}

func (c *Coordinator) notifySuccess(msg string) {
	if c.notifier != nil {
		c.notifier.Success(msg)
	}
}

func (c *Coordinator) notifyError(msg string) {
	if c.notifier != nil {
		c.notifier.Error(msg)
	}
}

func idsOf(vendors []vendor.Vendor) []string {
	out := make([]string, 0, len(vendors))
	for _, v := range vendors {
		out = append(out, v.ID)
	}
	return out
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
