// Command billsplit is the terminal bill-splitting calculator.
//
// It edits a bill in process by default. When BILLSPLIT_SERVER_URL is set it
// opens a session on that server instead and closes it on exit.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mmynk/billsplit/internal/config"
	"github.com/mmynk/billsplit/internal/tui"
	"github.com/mmynk/billsplit/pkg/api"
	"github.com/mmynk/billsplit/pkg/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "billsplit:", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := config.LoadClient()
	if err != nil {
		return err
	}

	// The terminal belongs to the UI, so logs go to a file or nowhere.
	logFile, err := logging.SetupFile(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := newBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := backend.Close(closeCtx); err != nil {
			slog.Warn("Failed to close bill", "error", err)
		}
	}()

	return tui.New(ctx, backend).Run()
}

func newBackend(ctx context.Context, cfg config.ClientConfig) (tui.Backend, error) {
	if cfg.ServerURL == "" {
		slog.Info("Running in process")
		return tui.NewLocalBackend(), nil
	}

	slog.Info("Connecting to server", "url", cfg.ServerURL)
	client := api.NewBillServiceClient(http.DefaultClient, cfg.ServerURL)
	backend, err := tui.NewRemoteBackend(ctx, client, cfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.ServerURL, err)
	}
	return backend, nil
}
