package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/VyomPatel31/Vendor-Dashboard/internal/config"
	"github.com/VyomPatel31/Vendor-Dashboard/internal/logger"
	"github.com/VyomPatel31/Vendor-Dashboard/internal/metrics"
	"github.com/VyomPatel31/Vendor-Dashboard/internal/modules/vendor"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func main() {
	var (
		configPath string
		port       int
	)

	rootCmd := &cobra.Command{
		Use:   "api",
		Short: "Vendor Dashboard mock API",
		Long: `Serves the vendor list from a JSON file with artificial latency and
occasional injected failures, so the dashboard's loading and error states
can be exercised.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			return run(cmd.Context(), cfg)
		},
	}
	rootCmd.Flags().StringVar(&configPath, "config", "", "config file (default ./config.yaml if present)")
	rootCmd.Flags().IntVar(&port, "port", 5000, "listen port, overrides config")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	log := logger.New(cfg.Log)
	defer log.Close()

	// ── Metrics ─────────────────────────────────────────────
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	storeMetrics := metrics.NewStoreMetrics(reg)

	// ── Vendor store ────────────────────────────────────────
	vendorRepo, err := vendor.NewJSONFileRepository(afero.NewOsFs(), cfg.Store, storeMetrics, log)
	if err != nil {
		return fmt.Errorf("failed to open vendor store: %w", err)
	}
	vendorService := vendor.NewService(vendorRepo, cfg.Chaos, storeMetrics, log)

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(log.HTTPMiddleware)
	router.Use(middleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	vendor.NewHandler(vendorService).RegisterRoutes(router)

	// ── Start Server ────────────────────────────────────────
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router}
	errCh := make(chan error, 1)
	go func() {
		log.Info("vendor API listening",
			"addr", srv.Addr,
			"store", cfg.Store.Path,
			"list_failure_rate", cfg.Chaos.ListFailureRate,
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
