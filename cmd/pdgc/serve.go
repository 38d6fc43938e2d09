package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	web "pdgc/internal/adapters/http"
	"pdgc/internal/adapters/http/metrics"
	"pdgc/internal/adapters/http/middleware"
	"pdgc/internal/adapters/http/perf"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, s, err := setup(false)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Addr
			}
			if !cfg.IsProduction() && os.Getenv("PDGC_CSRF_KEY") == "" {
				slog.Warn("csrf_key_random", "hint", "set PDGC_CSRF_KEY so tokens survive restarts")
			}

			s.Metrics = metrics.New()
			s.Perf = perf.NewCollector(perf.DefaultRingSize)
			limiter := middleware.NewRateLimiter(cfg.RateLimit, time.Second)
			defer limiter.Stop()

			srv := &http.Server{
				Addr: addr,
				Handler: web.NewMux(s, web.Options{
					CSRFKey:        cfg.CSRFKey,
					Secure:         cfg.IsProduction(),
					TrustedOrigins: cfg.TrustedOrigins,
					TrustProxy:     cfg.TrustProxy,
					Limiter:        limiter,
					SlowRequestMs:  cfg.SlowRequestMs,
					Debug:          cfg.Debug,
					Version:        version,
				}),
				ReadHeaderTimeout: 5 * time.Second,
				ReadTimeout:       10 * time.Second,
				WriteTimeout:      15 * time.Second,
				IdleTimeout:       60 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				slog.Info("server_starting", "addr", addr, "env", cfg.Env, "version", version)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			slog.Info("server_stopping")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return err
			}
			if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (default from PDGC_ADDR)")

	return cmd
}
