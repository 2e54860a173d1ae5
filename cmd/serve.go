package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/desertthunder/playaxis/internal/host"
	"github.com/desertthunder/playaxis/internal/playback"
	"github.com/desertthunder/playaxis/internal/server"
	"github.com/urfave/cli/v3"
)

// Serve runs headless playback behind the transport control API.
//
// Selection events go to the log by default; with --host-url (or a
// configured host URL) they are forwarded to the cross-filter endpoint
// through the rate-limited bridge.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	config := r.loadConfig(cmd)
	applyOverrides(config, cmd)

	if cmd.IsSet("host-url") {
		config.Host.URL = cmd.String("host-url")
	}

	vm, err := r.buildViewModel(ctx, config)
	if err != nil {
		return err
	}

	var selection host.SelectionManager
	if config.Host.URL != "" {
		selection = host.NewBridge(host.BridgeOpts{
			URL:       config.Host.URL,
			Timeout:   time.Duration(config.Host.TimeoutSeconds) * time.Second,
			RateLimit: config.Host.RateLimit,
		})
		r.logger.Info("forwarding selection events", "url", config.Host.URL)
	} else {
		selection = host.NewLogSelection(r.logger)
	}

	controller := playback.NewController(playback.ControllerOpts{
		Context:   ctx,
		Selection: selection,
		Logger:    r.logger,
	})
	controller.SetViewModel(vm)

	addr := cmd.String("addr")
	if addr == "" {
		addr = fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port)
	}

	httpServer := &http.Server{
		Addr:    addr,
		Handler: server.NewControlServer(controller, r.logger),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	r.logger.Info("control API listening", "addr", addr, "points", len(vm.DataPoints))
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("control server failed: %w", err)
	}

	controller.Stop()
	return nil
}
