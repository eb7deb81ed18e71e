package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aretw0/countdown"
	httpadapter "github.com/aretw0/countdown/pkg/adapters/http"
	"github.com/aretw0/countdown/pkg/adapters/mcp"
	"github.com/aretw0/countdown/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RunServer serves the widget over HTTP until a signal arrives.
// An empty addr uses the configured http.addr.
func RunServer(opts Options, addr string) error {
	env, err := setup(opts)
	if err != nil {
		return err
	}
	defer env.close()
	if addr == "" {
		addr = env.cfg.HTTP.Addr
	}

	reg := prometheus.NewRegistry()
	metrics, err := observability.NewMetrics(reg)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}
	streams := httpadapter.NewStreamManager(env.logger)

	widget, runner, err := env.newWidget(nil, opts.Debug, metrics.Hooks(), streams.Hooks())
	if err != nil {
		return err
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	if err := widget.Boot(sigCtx); err != nil {
		return fmt.Errorf("failed to start countdown: %w", err)
	}
	defer widget.Close()

	handler := httpadapter.NewHandler(widget,
		httpadapter.WithStreams(streams),
		httpadapter.WithMetrics(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
		httpadapter.WithVersion(countdown.Version),
		httpadapter.WithLogger(env.logger),
	)
	srv := &http.Server{Addr: addr, Handler: handler}

	serverErrors := make(chan error, 1)
	go func() {
		env.logger.Info("Starting countdown server", "address", addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-sigCtx.Done():
		env.logger.Info("Shutting down", "signal", sigCtx.Signal())
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			_ = srv.Close()
			return fmt.Errorf("graceful shutdown did not complete: %w", err)
		}
	}

	if runner != nil {
		runner.Wait()
	}
	return nil
}

// RunMCP serves the widget as MCP tools, over stdio or, when sseAddr is set, SSE.
func RunMCP(opts Options, sseAddr string) error {
	env, err := setup(opts)
	if err != nil {
		return err
	}
	defer env.close()

	widget, _, err := env.newWidget(nil, opts.Debug)
	if err != nil {
		return err
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	if err := widget.Boot(sigCtx); err != nil {
		return fmt.Errorf("failed to start countdown: %w", err)
	}
	defer widget.Close()

	srv := mcp.NewServer(widget, countdown.Version, env.logger)
	if sseAddr != "" {
		return srv.ServeSSE(sigCtx, sseAddr)
	}
	return srv.ServeStdio()
}
