package commands

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/targetcheck/internal/cmake"
	"git.home.luguber.info/inful/targetcheck/internal/config"
	tcerrors "git.home.luguber.info/inful/targetcheck/internal/errors"
	"git.home.luguber.info/inful/targetcheck/internal/inspect"
	"git.home.luguber.info/inful/targetcheck/internal/layout"
	"git.home.luguber.info/inful/targetcheck/internal/logfields"
	"git.home.luguber.info/inful/targetcheck/internal/metrics"
	"git.home.luguber.info/inful/targetcheck/internal/watch"
)

// WatchCmd implements the 'watch' command: continuous re-inspection driven
// by filesystem changes and an optional fixed interval.
type WatchCmd struct {
	ProjectRoot string        `arg:"" optional:"" help:"Project root directory (default: derived from the executable location)"`
	Interval    time.Duration `help:"Periodic re-inspection interval (overrides config)"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	cfg, err := LoadConfig(root)
	if err != nil {
		return err
	}
	return RunWatch(cfg, w.ProjectRoot, w.Interval)
}

// RunWatch runs a watch session until interrupted. SIGINT/SIGTERM end it
// gracefully; a clean shutdown exits 0.
func RunWatch(cfg *config.Config, projectRoot string, intervalOverride time.Duration) error {
	lay, err := layout.Resolve(projectRoot)
	if err != nil {
		return tcerrors.LayoutError("resolve project root", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	printHeader(ctx, cfg, lay)

	interval := cfg.WatchInterval()
	if intervalOverride > 0 {
		interval = intervalOverride
	}

	runner := &cmake.BinaryRunner{Binary: cfg.CMake.Binary, Timeout: cfg.InspectTimeout()}
	session := watch.NewSession(inspect.NewService(runner), lay).
		WithDebounce(cfg.WatchDebounce()).
		WithInterval(interval).
		WithPaths(cfg.Watch.Paths...)

	if cfg.Watch.Metrics.Enabled {
		registry := prom.NewRegistry()
		session.WithRecorder(metrics.NewPrometheusRecorder(registry))

		server := startMetricsServer(cfg.Watch.Metrics.Listen, registry)
		defer stopMetricsServer(server)
	}

	if err := session.Run(ctx); err != nil {
		return tcerrors.WatchError("watch session failed", err)
	}
	return nil
}

// startMetricsServer serves the Prometheus endpoint in the background.
func startMetricsServer(listen string, registry *prom.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.HTTPHandler(registry))

	server := &http.Server{
		Addr:              listen,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	go func() {
		slog.Info("Metrics endpoint listening", slog.String("addr", listen))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Metrics server error", logfields.Error(err))
		}
	}()

	return server
}

// stopMetricsServer shuts the metrics endpoint down with a bounded grace
// period.
func stopMetricsServer(server *http.Server) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Metrics server shutdown failed", logfields.Error(err))
	}
}
