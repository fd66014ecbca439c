package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/VyomPatel31/Vendor-Dashboard/internal/modules/vendor"
)

// ErrEmptyIDs is returned, without a request, for bulk calls with no ids.
var ErrEmptyIDs = errors.New("at least one vendor id is required")

// Client is a typed client for the /vendors API. It never retries: every
// failure is returned to the caller as an *APIError.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for baseURL (e.g. http://localhost:5000/api). A nil
// httpClient uses http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

// List fetches every vendor.
func (c *Client) List(ctx context.Context) ([]vendor.Vendor, error) {
	var out struct {
		Vendor []vendor.Vendor `json:"vendor"`
	}
	if err := c.do(ctx, http.MethodGet, "/vendors", nil, &out); err != nil {
		return nil, err
	}
	if out.Vendor == nil {
		out.Vendor = []vendor.Vendor{}
	}
	return out.Vendor, nil
}

// Get fetches one vendor.
func (c *Client) Get(ctx context.Context, id string) (*vendor.Vendor, error) {
	var out struct {
		Vendor *vendor.Vendor `json:"vendor"`
	}
	if err := c.do(ctx, http.MethodGet, "/vendors/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return out.Vendor, nil
}

// SetStatus changes one vendor's status and returns the updated record.
func (c *Client) SetStatus(ctx context.Context, id string, status vendor.Status) (*vendor.Vendor, error) {
	var out struct {
		Vendor *vendor.Vendor `json:"vendor"`
	}
	body := vendor.UpdateStatusRequest{Status: status}
	if err := c.do(ctx, http.MethodPatch, "/vendors/"+url.PathEscape(id)+"/status", body, &out); err != nil {
		return nil, err
	}
	return out.Vendor, nil
}

// BulkSetStatus changes the status of every vendor in ids and returns the
// records the server actually matched.
func (c *Client) BulkSetStatus(ctx context.Context, ids []string, status vendor.Status) ([]vendor.Vendor, error) {
	if len(ids) == 0 {
		return nil, &APIError{Kind: KindValidation, Message: ErrEmptyIDs.Error(), Err: ErrEmptyIDs}
	}
	var out struct {
		Vendors []vendor.Vendor `json:"vendors"`
	}
	body := vendor.BulkStatusRequest{IDs: ids, Status: status}
	if err := c.do(ctx, http.MethodPatch, "/vendors/bulk/status", body, &out); err != nil {
		return nil, err
	}
	if out.Vendors == nil {
		out.Vendors = []vendor.Vendor{}
	}
	return out.Vendors, nil
}

// BulkDelete removes every vendor in ids and returns the ids the server
// acknowledged. Servers that only answer {success:true} are taken to have
// removed everything requested.
func (c *Client) BulkDelete(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, &APIError{Kind: KindValidation, Message: ErrEmptyIDs.Error(), Err: ErrEmptyIDs}
	}
	var out struct {
		Success bool      `json:"success"`
		IDs     *[]string `json:"ids"`
	}
	body := vendor.BulkDeleteRequest{IDs: ids}
	if err := c.do(ctx, http.MethodDelete, "/vendors/bulk", body, &out); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, &APIError{Kind: KindTransient, StatusCode: http.StatusOK, Message: "delete was not acknowledged"}
	}
	if out.IDs == nil {
		return append([]string(nil), ids...), nil
	}
	return *out.IDs, nil
}

// Orders fetches count synthetic recent orders for a vendor.
func (c *Client) Orders(ctx context.Context, id string, count int) ([]vendor.Order, error) {
	var out struct {
		Orders []vendor.Order `json:"orders"`
	}
	path := "/vendors/" + url.PathEscape(id) + "/orders?count=" + strconv.Itoa(count)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Orders, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Kind: KindTransient, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Kind: KindTransient, StatusCode: resp.StatusCode, Message: err.Error(), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errorResponse struct {
			Message string `json:"message"`
		}
		msg := http.StatusText(resp.StatusCode)
		if json.Unmarshal(data, &errorResponse) == nil && errorResponse.Message != "" {
			msg = errorResponse.Message
		}
		return &APIError{Kind: kindFor(resp.StatusCode), StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &APIError{Kind: KindTransient, StatusCode: resp.StatusCode, Message: "malformed response", Err: err}
	}
	return nil
}
