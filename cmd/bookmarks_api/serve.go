package main

import (
	"bookmarks_api/internal/auth"
	"bookmarks_api/internal/config"
	"bookmarks_api/internal/handler"
	"bookmarks_api/internal/service"
	"bookmarks_api/internal/storage"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}

			cfg := config.MustLoad(configPath)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	const op = "main.serve"

	lgr := setupLogger(cfg.Env)
	lgr.Info("starting bookmarks api", slog.String("env", cfg.Env), slog.String("address", cfg.Address))

	if cfg.Env == envProd {
		gin.SetMode(gin.ReleaseMode)
	}

	tokens, err := auth.NewTokenIssuer(cfg.Secret, cfg.TokenTTL)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	st, err := storage.NewPostgresStorage(ctx, cfg.DbURL, lgr)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer st.Close()

	if err := st.Migrate(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	srvc := service.NewService(st, tokens, lgr)
	h := handler.NewHandler(srvc, tokens, lgr)

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      h.InitRoutes(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	lgr.Info("server started", slog.String("address", cfg.Address))

	select {
	case err := <-errCh:
		return fmt.Errorf("%s: %w", op, err)
	case <-ctx.Done():
	}

	lgr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	lgr.Info("server stopped")

	return nil
}
