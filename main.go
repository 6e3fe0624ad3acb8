package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"auction-dashboard/internal/config"
	dashboard "auction-dashboard/internal/dashboardService"
	"auction-dashboard/internal/gateway"
	"auction-dashboard/internal/notify"
	"auction-dashboard/internal/render"
	"auction-dashboard/internal/scheduler"
	"auction-dashboard/internal/selection"
	"auction-dashboard/internal/server"
	"auction-dashboard/internal/store"
	"auction-dashboard/internal/surface"
	"auction-dashboard/internal/trend"
	"auction-dashboard/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		utils.Fatal("failed to load configuration", map[string]any{"error": err.Error()})
	}
	utils.ConfigureLogger(cfg.LogLevel, nil)
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	client, err := gateway.NewClient(cfg.BackendURL, nil)
	if err != nil {
		utils.Fatal("failed to create backend client", map[string]any{"error": err.Error()})
	}

	loc, err := render.NewLocale(cfg.Locale, cfg.Location, cfg.CurrencySymbol)
	if err != nil {
		utils.Fatal("failed to set up locale", map[string]any{"error": err.Error()})
	}

	surf := surface.New(surface.DefaultMounts...)
	renderer := render.NewRenderer(surf, loc, trend.NewSynthesizer(), cfg.TrendPoints)
	svc := dashboard.NewDashboardService(
		client,
		store.NewMemoryStore(),
		selection.NewSelector(),
		renderer,
		surf,
		notify.NewBoard(cfg.BannerTTL),
	)

	poller := scheduler.New(cfg.PollInterval, func(ctx context.Context, tick uint64) {
		svc.RunTick(ctx, tick)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := poller.Start(ctx); err != nil {
		utils.Fatal("failed to start polling", map[string]any{"error": err.Error()})
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           server.SetupRouter(svc, poller, cfg.PollInterval),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		utils.Info("starting dashboard server", map[string]any{
			"addr":    srv.Addr,
			"backend": cfg.BackendURL,
			"locale":  loc.Tag().String(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Error("failed to start server", map[string]any{"error": err.Error()})
			cancel()
		}
	}()

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		utils.Info("received shutdown signal", map[string]any{"signal": sig.String()})
	case <-ctx.Done():
		utils.Info("context cancelled", nil)
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Error("server shutdown failed", map[string]any{"error": err.Error()})
	}
	poller.Wait()
	utils.Info("shutdown complete", nil)
}
