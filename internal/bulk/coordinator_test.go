package bulk

import (
	"context"
	"errors"
	"testing"

	"github.com/VyomPatel31/Vendor-Dashboard/internal/cache"
	"github.com/VyomPatel31/Vendor-Dashboard/internal/client"
	"github.com/VyomPatel31/Vendor-Dashboard/internal/modules/vendor"
	"github.com/VyomPatel31/Vendor-Dashboard/internal/modules/vendortest"
	"github.com/VyomPatel31/Vendor-Dashboard/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const key = "vendors"

type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) SetStatus(ctx context.Context, id string, status vendor.Status) (*vendor.Vendor, error) {
	args := m.Called(ctx, id, status)
	v, _ := args.Get(0).(*vendor.Vendor)
	return v, args.Error(1)
}

func (m *mockAPI) BulkSetStatus(ctx context.Context, ids []string, status vendor.Status) ([]vendor.Vendor, error) {
	args := m.Called(ctx, ids, status)
	v, _ := args.Get(0).([]vendor.Vendor)
	return v, args.Error(1)
}

func (m *mockAPI) BulkDelete(ctx context.Context, ids []string) ([]string, error) {
	args := m.Called(ctx, ids)
	v, _ := args.Get(0).([]string)
	return v, args.Error(1)
}

type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *recordingNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }

type answer struct {
	ok     bool
	prompt string
}

func (a *answer) Confirm(msg string) bool {
	a.prompt = msg
	return a.ok
}

type fixture struct {
	api      *mockAPI
	cache    *cache.Cache[[]vendor.Vendor]
	table    *table.Table
	notifier *recordingNotifier
	confirm  *answer
	coord    *Coordinator
	last     table.Snapshot
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		api:      new(mockAPI),
		cache:    cache.New[[]vendor.Vendor](),
		table:    table.New(vendortest.Vendors()),
		notifier: &recordingNotifier{},
		confirm:  &answer{ok: true},
	}
	f.cache.Set(key, vendortest.Vendors())
	f.table.OnSelectionChange(func(s table.Snapshot) { f.last = s })
	f.coord = New(Config{
		API:       f.api,
		Cache:     f.cache,
		CacheKey:  key,
		Notifier:  f.notifier,
		Confirmer: f.confirm,
		Sink:      f.table,
	})
	t.Cleanup(func() { f.api.AssertExpectations(t) })
	return f
}

func (f *fixture) cached(t *testing.T) []vendor.Vendor {
	t.Helper()
	v, ok := f.cache.Get(key)
	require.True(t, ok)
	return v
}

func withStatus(v vendor.Vendor, s vendor.Status) vendor.Vendor {
	v.Status = s
	return v
}

func TestBulkSetStatus_EmptySelectionMakesNoCall(t *testing.T) {
	f := newFixture(t)

	_, err := f.coord.BulkSetStatus(context.Background(), nil, vendor.StatusActive)
	assert.ErrorIs(t, err, ErrEmptySelection)

	_, err = f.coord.BulkDelete(context.Background(), []string{})
	assert.ErrorIs(t, err, ErrEmptySelection)
	assert.Empty(t, f.confirm.prompt)

	f.api.AssertNotCalled(t, "BulkSetStatus", mock.Anything, mock.Anything, mock.Anything)
	f.api.AssertNotCalled(t, "BulkDelete", mock.Anything, mock.Anything)
}

func TestBulkSetStatus_ReconcilesCacheAndSelection(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.table.Toggle(0))
	require.NoError(t, f.table.Toggle(1))
	ids := f.table.Selection().IDs

	all := vendortest.Vendors()
	f.api.On("BulkSetStatus", mock.Anything, []string{"A", "B"}, vendor.StatusSuspended).
		Return([]vendor.Vendor{withStatus(all[0], vendor.StatusSuspended), withStatus(all[1], vendor.StatusSuspended)}, nil).
		Once()

	updated, err := f.coord.BulkSetStatus(context.Background(), ids, vendor.StatusSuspended)
	require.NoError(t, err)
	assert.Len(t, updated, 2)

	cached := f.cached(t)
	assert.Equal(t, vendor.StatusSuspended, cached[0].Status)
	assert.Equal(t, vendor.StatusSuspended, cached[1].Status)
	assert.Equal(t, vendor.StatusSuspended, cached[2].Status)
	assert.Equal(t, vendor.StatusActive, cached[3].Status)

	assert.Equal(t, 2, f.last.Count)
	assert.Equal(t, table.StatusCounts{Suspended: 2}, f.last.StatusCounts())
	assert.Equal(t, f.last.Count, f.last.StatusCounts().Total())
	assert.Equal(t, []string{"Vendor status updated successfully"}, f.notifier.successes)
}

func TestBulkSetStatus_ReconcilesOnlyMatchedSubset(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.table.Toggle(0))
	require.NoError(t, f.table.Toggle(1))

	// B was removed by someone else; the server only matched A.
	a := vendortest.Vendors()[0]
	f.api.On("BulkSetStatus", mock.Anything, []string{"A", "B"}, vendor.StatusSuspended).
		Return([]vendor.Vendor{withStatus(a, vendor.StatusSuspended)}, nil).
		Once()

	updated, err := f.coord.BulkSetStatus(context.Background(), []string{"A", "B"}, vendor.StatusSuspended)
	require.NoError(t, err)
	require.Len(t, updated, 1)

	cached := f.cached(t)
	assert.Equal(t, vendor.StatusSuspended, cached[0].Status)
	assert.Equal(t, vendor.StatusPending, cached[1].Status)
	assert.Equal(t, table.StatusCounts{Pending: 1, Suspended: 1}, f.last.StatusCounts())
}

func TestBulkSetStatus_UnknownIDsSucceedWithEmptyMatch(t *testing.T) {
	f := newFixture(t)
	f.api.On("BulkSetStatus", mock.Anything, []string{"nonexistent"}, vendor.StatusActive).
		Return([]vendor.Vendor{}, nil).
		Once()

	updated, err := f.coord.BulkSetStatus(context.Background(), []string{"nonexistent"}, vendor.StatusActive)
	require.NoError(t, err)
	assert.Empty(t, updated)
	assert.Equal(t, vendortest.Vendors(), f.cached(t))
}

func TestBulkSetStatus_FailureLeavesStateUntouched(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.table.Toggle(0))
	before := f.table.Selection()

	apiErr := &client.APIError{Kind: client.KindTransient, StatusCode: 500, Message: "boom"}
	f.api.On("BulkSetStatus", mock.Anything, []string{"A"}, vendor.StatusPending).Return(nil, apiErr).Once()

	_, err := f.coord.BulkSetStatus(context.Background(), []string{"A"}, vendor.StatusPending)
	require.Error(t, err)
	assert.True(t, client.IsTransient(err))

	assert.Equal(t, vendortest.Vendors(), f.cached(t))
	assert.Equal(t, before, f.table.Selection())
	assert.Equal(t, []string{"Failed to update vendor status"}, f.notifier.errors)
	assert.False(t, f.coord.Busy())
}

func TestBulkSetStatus_RejectsWhileBusy(t *testing.T) {
	f := newFixture(t)
	release := make(chan struct{})
	started := make(chan struct{})

	f.api.On("BulkSetStatus", mock.Anything, []string{"A"}, vendor.StatusPending).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return([]vendor.Vendor{}, nil).
		Once()

	done := make(chan error, 1)
	go func() {
		_, err := f.coord.BulkSetStatus(context.Background(), []string{"A"}, vendor.StatusPending)
		done <- err
	}()
	<-started

	assert.True(t, f.coord.Busy())
	_, err := f.coord.BulkSetStatus(context.Background(), []string{"B"}, vendor.StatusPending)
	assert.ErrorIs(t, err, ErrBusy)
	_, err = f.coord.BulkDelete(context.Background(), []string{"B"})
	assert.ErrorIs(t, err, ErrBusy)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, f.coord.Busy())
}

func TestBulkDelete_DeclinedMakesNoCall(t *testing.T) {
	f := newFixture(t)
	f.confirm.ok = false
	require.NoError(t, f.table.Toggle(0))

	_, err := f.coord.BulkDelete(context.Background(), []string{"A", "B"})
	assert.ErrorIs(t, err, ErrCancelled)
	assert.Equal(t, "Are you sure you want to delete 2 vendor(s)? This action cannot be undone.", f.confirm.prompt)
	assert.Equal(t, 1, f.table.Selection().Count)
	f.api.AssertNotCalled(t, "BulkDelete", mock.Anything, mock.Anything)
}

func TestBulkDelete_RemovesAcknowledgedAndClearsSelection(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.table.Toggle(0))
	require.NoError(t, f.table.Toggle(2))

	f.api.On("BulkDelete", mock.Anything, []string{"A", "C"}).Return([]string{"A", "C"}, nil).Once()

	deleted, err := f.coord.BulkDelete(context.Background(), []string{"A", "C"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, deleted)

	for _, v := range f.cached(t) {
		assert.NotContains(t, []string{"A", "C"}, v.ID)
	}
	assert.Len(t, f.cached(t), 4)
	assert.Equal(t, 0, f.last.Count)
	assert.Empty(t, f.last.IDs)
	assert.Equal(t, []string{"Vendors deleted successfully"}, f.notifier.successes)
}

func TestBulkDelete_FailureLeavesStateUntouched(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.table.Toggle(0))

	f.api.On("BulkDelete", mock.Anything, []string{"A"}).Return(nil, errors.New("connection reset")).Once()

	_, err := f.coord.BulkDelete(context.Background(), []string{"A"})
	require.Error(t, err)
	assert.Len(t, f.cached(t), 6)
	assert.Equal(t, 1, f.table.Selection().Count)
	assert.Equal(t, []string{"Failed to delete vendors"}, f.notifier.errors)
}

func TestSetStatus_KeepsSelection(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.table.Toggle(1))

	b := withStatus(vendortest.Vendors()[1], vendor.StatusActive)
	f.api.On("SetStatus", mock.Anything, "B", vendor.StatusActive).Return(&b, nil).Once()

	_, err := f.coord.SetStatus(context.Background(), "B", vendor.StatusActive)
	require.NoError(t, err)

	assert.Equal(t, vendor.StatusActive, f.cached(t)[1].Status)
	assert.Equal(t, table.StatusCounts{Active: 1}, f.last.StatusCounts())
	assert.Equal(t, []string{"Vendor status updated"}, f.notifier.successes)
}

func TestSetStatus_NotFound(t *testing.T) {
	f := newFixture(t)
	notFound := &client.APIError{Kind: client.KindNotFound, StatusCode: 404, Message: "Vendor not found"}
	f.api.On("SetStatus", mock.Anything, "zzz", vendor.StatusActive).Return(nil, notFound).Once()

	_, err := f.coord.SetStatus(context.Background(), "zzz", vendor.StatusActive)
	assert.True(t, client.IsNotFound(err))
	assert.Equal(t, vendortest.Vendors(), f.cached(t))
}
