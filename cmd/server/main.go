package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/billsplit/internal/config"
	"github.com/mmynk/billsplit/internal/metrics"
	"github.com/mmynk/billsplit/internal/middleware"
	"github.com/mmynk/billsplit/internal/service"
	"github.com/mmynk/billsplit/internal/storage/memory"
	"github.com/mmynk/billsplit/pkg/api"
	"github.com/mmynk/billsplit/pkg/logging"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Setup structured logging
	logging.Setup()

	cfg, err := config.LoadServer()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped gracefully")
}

func run(ctx context.Context, cfg config.ServerConfig) error {
	m := metrics.New()

	store := memory.New(memory.Options{
		TTL:           cfg.SessionTTL,
		SweepInterval: cfg.SweepInterval,
		MaxSessions:   cfg.MaxSessions,
		OnExpire: func(n int) {
			m.SessionsExpired.Add(float64(n))
			slog.Info("Expired idle sessions", "count", n)
		},
	})
	defer store.Close()
	m.TrackSessions(store.Len)
	slog.Info("Session store initialized",
		"ttl", cfg.SessionTTL,
		"sweep_interval", cfg.SweepInterval,
		"max_sessions", cfg.MaxSessions,
	)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newHandler(service.NewBillService(store, m), m, cfg.AllowedOrigin),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Connect server starting", "address", srv.Addr, "url", fmt.Sprintf("http://localhost%s", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		slog.Info("Shutting down", "timeout", cfg.ShutdownTimeout)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// newHandler wires the bill service, metrics and health endpoints behind the
// HTTP middleware.
func newHandler(svc api.BillServiceHandler, m *metrics.Metrics, allowedOrigin string) http.Handler {
	mux := http.NewServeMux()

	// Register Connect services
	interceptors := connect.WithInterceptors(
		middleware.LoggingInterceptor(),
		middleware.MetricsInterceptor(m),
	)
	billPath, billHandler := api.NewBillServiceHandler(svc, interceptors)
	mux.Handle(billPath, billHandler)

	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	// Add logging and CORS middleware
	handler := middleware.RequestLogger(middleware.CORS(allowedOrigin)(mux))

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	return h2c.NewHandler(handler, &http2.Server{})
}
