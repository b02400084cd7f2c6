package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/topodyn/braidkit/internal/api"
	"github.com/topodyn/braidkit/pkg/cache"
	"github.com/topodyn/braidkit/pkg/pipeline"
)

// serveCommand creates the serve command, which runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		redisAddr string
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis API over HTTP",
		Long: `Serve the analysis API over HTTP.

Endpoints:
  POST /v1/act         apply a word to loop coordinates
  POST /v1/eq          decide word equality
  POST /v1/entropy     estimate topological entropy
  POST /v1/complexity  compute geometric complexity
  GET  /healthz        liveness check

Requests are JSON analysis options, responses are JSON results. With
--redis results are cached in redis instead of the local file cache, so
multiple instances can share one cache.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Serve.Addr
			}
			if redisAddr == "" {
				redisAddr = c.Config.Cache.RedisAddr
			}

			cch, err := c.serveCache(cmd.Context(), redisAddr, noCache)
			if err != nil {
				return fmt.Errorf("initialize cache: %w", err)
			}
			runner := pipeline.NewRunner(cch, nil, c.Logger)
			defer runner.Close()

			server := &http.Server{
				Addr:              addr,
				Handler:           api.NewServer(runner, c.Logger).Handler(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				c.Logger.Info("serving analysis API", "addr", addr)
				errCh <- server.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-cmd.Context().Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				c.Logger.Info("shutting down")
				return server.Shutdown(shutdownCtx)
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (config or :8080 if empty)")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address for a shared result cache")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// serveCache picks the cache backend for the API: redis when an address is
// configured, the local file cache otherwise. A redis cache that can't be
// reached at startup is an error rather than a silent fallback, since the
// operator asked for a shared cache.
func (c *CLI) serveCache(ctx context.Context, redisAddr string, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisAddr != "" {
		return cache.NewRedisCache(ctx, redisAddr)
	}
	return c.newCache(false)
}
