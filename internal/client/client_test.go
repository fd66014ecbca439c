package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/VyomPatel31/Vendor-Dashboard/internal/modules/vendor"
	"github.com/VyomPatel31/Vendor-Dashboard/internal/modules/vendortest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_List(t *testing.T) {
	srv := vendortest.NewServer(t, vendortest.Vendors())
	c := New(srv.BaseURL(), nil)

	vendors, err := c.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, vendortest.Vendors(), vendors)
}

func TestClient_ListInjectedFailureIsTransient(t *testing.T) {
	srv := vendortest.NewServerWithChaos(t, vendortest.Vendors(), vendor.ChaosConfig{ListFailureRate: 1})
	c := New(srv.BaseURL(), nil)

	_, err := c.List(context.Background())
	require.Error(t, err)
	assert.True(t, IsTransient(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "Failed to fetch vendors", apiErr.Message)
}

func TestClient_GetNotFound(t *testing.T) {
	srv := vendortest.NewServer(t, vendortest.Vendors())
	c := New(srv.BaseURL(), nil)

	v, err := c.Get(context.Background(), "B")
	require.NoError(t, err)
	assert.Equal(t, "Bolt Supplies", v.BusinessName)

	_, err = c.Get(context.Background(), "nope")
	assert.True(t, IsNotFound(err))
}

func TestClient_SetStatus(t *testing.T) {
	srv := vendortest.NewServer(t, vendortest.Vendors())
	c := New(srv.BaseURL(), nil)

	v, err := c.SetStatus(context.Background(), "B", vendor.StatusActive)
	require.NoError(t, err)
	assert.Equal(t, vendor.StatusActive, v.Status)
	assert.Equal(t, vendor.StatusActive, srv.Persisted(t)[1].Status)
}

func TestClient_BulkSetStatusReturnsMatchedSubset(t *testing.T) {
	srv := vendortest.NewServer(t, vendortest.Vendors())
	c := New(srv.BaseURL(), nil)

	updated, err := c.BulkSetStatus(context.Background(), []string{"A", "ghost", "B"}, vendor.StatusSuspended)
	require.NoError(t, err)
	require.Len(t, updated, 2)
	assert.Equal(t, "A", updated[0].ID)
	assert.Equal(t, "B", updated[1].ID)
}

func TestClient_BulkSetStatusUnknownIDs(t *testing.T) {
	srv := vendortest.NewServer(t, vendortest.Vendors())
	c := New(srv.BaseURL(), nil)

	updated, err := c.BulkSetStatus(context.Background(), []string{"nonexistent"}, vendor.StatusActive)
	require.NoError(t, err)
	assert.Empty(t, updated)
	assert.NotNil(t, updated)
}

func TestClient_EmptyBulkInputMakesNoRequest(t *testing.T) {
	srv := vendortest.NewServer(t, vendortest.Vendors())
	c := New(srv.BaseURL(), nil)

	_, err := c.BulkSetStatus(context.Background(), nil, vendor.StatusActive)
	assert.True(t, IsValidation(err))
	assert.ErrorIs(t, err, ErrEmptyIDs)

	_, err = c.BulkDelete(context.Background(), []string{})
	assert.True(t, IsValidation(err))

	assert.Zero(t, srv.Requests())
}

func TestClient_BulkDelete(t *testing.T) {
	srv := vendortest.NewServer(t, vendortest.Vendors())
	c := New(srv.BaseURL(), nil)

	deleted, err := c.BulkDelete(context.Background(), []string{"A", "ghost"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, deleted)

	vendors, err := c.List(context.Background())
	require.NoError(t, err)
	for _, v := range vendors {
		assert.NotEqual(t, "A", v.ID)
	}
}

func TestClient_BulkDeleteWithoutIDsInResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/vendors/bulk", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()
	c := New(srv.URL+"/api", nil)

	deleted, err := c.BulkDelete(context.Background(), []string{"A", "B"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, deleted)
}

func TestClient_ValidationErrorCarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Status is required"}`))
	}))
	defer srv.Close()
	c := New(srv.URL, nil)

	_, err := c.BulkSetStatus(context.Background(), []string{"A"}, "")
	require.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "Status is required")
}

func TestClient_TransportFailureIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url, nil).List(context.Background())
	assert.True(t, IsTransient(err))
}

func TestClient_Orders(t *testing.T) {
	srv := vendortest.NewServer(t, vendortest.Vendors())
	c := New(srv.BaseURL(), nil)

	orders, err := c.Orders(context.Background(), "C", 4)
	require.NoError(t, err)
	assert.Len(t, orders, 4)
}
