package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/focusflow/internal/config"
	"github.com/ayoisaiah/focusflow/internal/pathutil"
	"github.com/ayoisaiah/focusflow/offline"
	"github.com/ayoisaiah/focusflow/report"
	"github.com/ayoisaiah/focusflow/store"
	"github.com/ayoisaiah/focusflow/web"
)

const shutdownTimeout = 5 * time.Second

// newOrigin returns the asset origin: the embedded dashboard, or a remote
// server when one is configured.
func newOrigin(cfg *config.Config) (offline.Fetcher, error) {
	if cfg.Offline.Origin == "" {
		return web.NewOrigin(), nil
	}

	origin, err := offline.NewHTTPOrigin(cfg.Offline.Origin)
	if err != nil {
		return nil, err
	}

	return origin, nil
}

// dashboardHandler serves the statistics API directly and every other path
// through the offline cache.
func dashboardHandler(st *store.Store, assets http.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/stats", func(w http.ResponseWriter, _ *http.Request) {
		// a fresh Stats picks up sessions recorded by a running timer
		r, err := buildReport(st, statsOptions{History: true})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")

		if err := json.NewEncoder(w).Encode(r); err != nil {
			slog.Warn("unable to write stats response", slog.Any("error", err))
		}
	})

	mux.Handle("/", assets)

	return mux
}

// serve installs the offline cache and serves the dashboard until ctx is
// cancelled or the process is interrupted.
func serve(ctx context.Context, cfg *config.Config, st *store.Store) error {
	origin, err := newOrigin(cfg)
	if err != nil {
		return err
	}

	cache, err := offline.Open(pathutil.OfflineFilePath(), cfg.Offline.CacheName, origin)
	if err != nil {
		return err
	}

	defer cache.Close()

	if err := cache.Install(ctx, web.Manifest); err != nil {
		report.Warn("the dashboard will not be available offline", err)
	}

	if _, err := cache.Activate(); err != nil {
		slog.Warn("unable to delete stale caches", slog.Any("error", err))
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf(":%d", cfg.Offline.Port)

	srv := &http.Server{
		Addr:              addr,
		Handler:           dashboardHandler(st, cache),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		errCh <- srv.ListenAndServe()
	}()

	pterm.Info.Printfln("Serving the dashboard on http://localhost:%d", cfg.Offline.Port)

	slog.Info("dashboard server started",
		slog.String("addr", addr),
		slog.String("cache", cache.Name()),
	)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return errListen.Fmt(addr).Wrap(err)
		}

		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	slog.Info("shutting down dashboard server")

	return srv.Shutdown(shutdownCtx)
}
