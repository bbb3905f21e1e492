package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/fundflow/backend/internal/cache"
	"github.com/fundflow/backend/internal/router"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	err := connect(cfg)
	if err != nil {
		return err
	}

	co, err := newController(cfg, cache.SystemClock)
	if err != nil {
		return err
	}

	r, teardown, err := router.Config(cfg)
	if err != nil {
		return err
	}
	defer teardown()

	router.AttachRoutes(co, r.Group("/"))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(cmd.Context())

	g.Go(func() error {
		log.Info().Str("addr", server.Addr).Str("version", router.Version()).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
