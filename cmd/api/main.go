// @title Stray Pets API
// @version 1.0
// @description Reportes de animales callejeros y perdidos: listado con filtros, publicaciones propias y autocompletado por foto.
// @BasePath /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stray-pets/internal/config"
	"stray-pets/internal/platform/logger"
	"stray-pets/internal/router"

	"github.com/spf13/cobra"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 10 * time.Second

	// las altas multipart extienden su propio plazo (listings.UploadReadTimeout)
	readTimeout  = 30 * time.Second
	writeTimeout = 90 * time.Second // el análisis de imagen puede tardar
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	serve := serveCmd()

	root := &cobra.Command{
		Use:           "stray-pets",
		Short:         "API de reportes de animales callejeros y perdidos",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE, // sin subcomando => serve
	}
	root.AddCommand(serve, migrateCmd())
	return root
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Levanta el servidor HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			opts, cleanup, err := router.OptionsFromConfig(ctx, cfg, log)
			if err != nil {
				return fmt.Errorf("wiring: %w", err)
			}
			defer cleanup()

			srv := newServer(":"+cfg.Port, router.NewRouter(opts))

			errc := make(chan error, 1)
			go func() {
				log.Info("starting server", map[string]any{
					"addr":    srv.Addr,
					"backend": string(cfg.Backend),
					"auth":    string(cfg.AuthMode),
				})
				errc <- srv.ListenAndServe()
			}()

			select {
			case err := <-errc:
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("server error: %w", err)
				}
				return nil
			case <-ctx.Done():
			}

			log.Info("shutting down", nil)
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Crea las tablas del backend SQL (sqlite o postgres)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			if cfg.Backend != config.BackendSQLite && cfg.Backend != config.BackendPostgres {
				return fmt.Errorf("migrate: backend %q has no SQL schema", cfg.Backend)
			}

			db, err := router.OpenSQL(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			defer db.Close()

			log.Info("schema ready", map[string]any{"backend": string(cfg.Backend)})
			return nil
		},
	}
}

func newServer(addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       2 * time.Minute,
	}
}

func bootstrap() (*config.Config, logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
	return cfg, log, nil
}
