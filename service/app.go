package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"estatehub/app/auth"
	"estatehub/app/config"
	"estatehub/app/logger"
	"estatehub/app/middleware"
	"estatehub/app/routes"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Args:  cobra.NoArgs,
		RunE:  runAppServer,
	}
}

// runAppServer serves the API until SIGINT or SIGTERM, then drains
// in-flight requests.
func runAppServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Logging, cfg.Primary.Env)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stores, closeStores, err := openStores(ctx, cfg, &log)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStores(); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}()

	router := routes.SetupRoutes(routes.Dependencies{
		Stores:         stores,
		Auth:           middleware.NewAuth(auth.NewJWTVerifier(cfg.Auth.JWTSecretKey), cfg.Auth.CookieName),
		Logger:         log,
		Env:            cfg.Primary.Env,
		RequestTimeout: cfg.Server.RequestTimeout,
	})

	return runServer(ctx, newServer(cfg.Server, router), log, cfg.Server.ShutdownTimeout)
}

func newServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

// runServer blocks until ctx is done or the listener fails.
func runServer(ctx context.Context, srv *http.Server, log zerolog.Logger, shutdownTimeout time.Duration) error {
	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}
