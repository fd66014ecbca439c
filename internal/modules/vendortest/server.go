// Package vendortest runs the vendor API against an in-memory store for tests
// of its consumers.
package vendortest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/VyomPatel31/Vendor-Dashboard/internal/logger"
	"github.com/VyomPatel31/Vendor-Dashboard/internal/modules/vendor"
	"github.com/go-chi/chi/v5"
	"github.com/spf13/afero"
)

const StorePath = "data/mockData.json"

// Server is a running vendor API.
type Server struct {
	*httptest.Server
	Repo vendor.Repository
	Fs   afero.Fs

	requests atomic.Int64
}

// NewServer seeds an in-memory store with vendors and serves the API with
// chaos disabled. The server is closed when the test ends.
func NewServer(t testing.TB, vendors []vendor.Vendor) *Server {
	return NewServerWithChaos(t, vendors, vendor.ChaosConfig{})
}

// NewServerWithChaos is NewServer with custom latency and fault injection.
func NewServerWithChaos(t testing.TB, vendors []vendor.Vendor, chaos vendor.ChaosConfig) *Server {
	t.Helper()
	fs := afero.NewMemMapFs()
	data, err := json.Marshal(vendor.Document{Vendors: vendors})
	if err != nil {
		t.Fatalf("encode seed: %v", err)
	}
	if err := afero.WriteFile(fs, StorePath, data, 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	repo, err := vendor.NewJSONFileRepository(fs, vendor.FileStoreConfig{Path: StorePath}, nil, logger.Discard())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	s := &Server{Repo: repo, Fs: fs}
	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s.requests.Add(1)
			next.ServeHTTP(w, r)
		})
	})
	vendor.NewHandler(vendor.NewService(repo, chaos, nil, logger.Discard())).RegisterRoutes(router)
	s.Server = httptest.NewServer(router)
	t.Cleanup(s.Close)
	return s
}

// BaseURL is the API root a client should be pointed at.
func (s *Server) BaseURL() string { return s.URL + "/api" }

// Requests is the number of requests served so far.
func (s *Server) Requests() int64 { return s.requests.Load() }

// Persisted reads the backing document as currently stored.
func (s *Server) Persisted(t testing.TB) []vendor.Vendor {
	t.Helper()
	data, err := afero.ReadFile(s.Fs, StorePath)
	if err != nil {
		t.Fatalf("read store: %v", err)
	}
	var doc vendor.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode store: %v", err)
	}
	return doc.Vendors
}
