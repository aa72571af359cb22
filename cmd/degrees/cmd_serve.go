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

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/persistorai/degrees/internal/api"
	"github.com/persistorai/degrees/internal/config"
	"github.com/persistorai/degrees/internal/service"
	"github.com/persistorai/degrees/internal/store"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve path queries over HTTP",
		Long: "Load the dataset once and serve it over HTTP. Settings come from the\n" +
			"environment (DATASET_SOURCE, DATA_DIR, SQLITE_PATH, DATABASE_URL, PORT, ...);\n" +
			"dataset flags given explicitly on the command line take precedence.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			applyDatasetFlags(cmd.Flags().Changed, cfg)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, config.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat))
		},
	}
}

func applyDatasetFlags(changed func(string) bool, cfg *config.Config) {
	if changed("source") {
		cfg.DatasetSource = flagSource
	}

	if changed("data") {
		cfg.DataDir = flagData
	}

	if changed("sqlite") {
		cfg.SQLitePath = flagSQLite
	}

	if changed("database-url") {
		cfg.DatabaseURL = config.Secret(flagDatabaseURL)
	}

	if changed("max-depth") {
		cfg.SearchMaxDepth = flagMaxDepth
	}
}

func serve(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	loaded, err := store.Load(ctx, store.SourceConfig{
		Kind:        cfg.DatasetSource,
		DataDir:     cfg.DataDir,
		SQLitePath:  cfg.SQLitePath,
		DatabaseURL: cfg.DatabaseURL.Value(),
	}, log)
	if err != nil {
		return err
	}
	defer loaded.Close()

	engine, err := service.NewEngine(loaded.Dataset, cfg.SearchMaxDepth, log)
	if err != nil {
		return err
	}

	people := service.NewPeopleService(loaded.Dataset, log)

	deps := &api.RouterDeps{
		Log:         log,
		Path:        service.NewPathService(loaded.Dataset, engine, people, log, cfg.SearchTimeout),
		People:      people,
		Movies:      people,
		Dataset:     service.NewDatasetService(loaded.Dataset, loaded.Report, log),
		CORSOrigins: cfg.CORSOrigins,
		Version:     config.Version,
		RateLimit:   cfg.RateLimit,
		RateBurst:   cfg.RateBurst,
	}

	if loaded.Pinger != nil {
		deps.Pinger = loaded.Pinger
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           api.NewRouter(ctx, deps),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.SearchTimeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		log.WithFields(logrus.Fields{
			"addr":    srv.Addr,
			"source":  loaded.Report.Source,
			"version": config.Version,
		}).Info("server listening")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}

		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listening on %s: %w", srv.Addr, err)
		}

		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}

	return nil
}
