package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/divscout/divscout-api/internal/config"
	"github.com/divscout/divscout-api/internal/database"
	"github.com/divscout/divscout-api/internal/handler"
	"github.com/divscout/divscout-api/internal/logging"
	"github.com/divscout/divscout-api/internal/query"
	"github.com/divscout/divscout-api/internal/repository"
	"github.com/divscout/divscout-api/internal/server"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "divscout-api",
		Short:         "Read-only HTTP API over the DivScout dividend dataset",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, configPath)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the service version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", handler.ServiceName, handler.ServiceVersion)
		},
	})

	return rootCmd
}

func serve(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "divscout-api: %v\n", err)
		return err
	}

	logger := logging.New(cfg.Log)
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	pool, err := database.Open(cfg.Database, logger)
	if err != nil {
		logger.Error().Err(err).Msg("failed to connect to database")
		return err
	}
	defer pool.Close()

	// --- CQRS read-side wiring ---
	store := repository.NewStore(pool)

	companyQueries := query.NewCompanyQueryService(store)
	dividendQueries := query.NewDividendQueryService(store)
	statsQueries := query.NewStatsQueryService(store, logger)

	router := handler.NewRouter(handler.Handlers{
		Health:    handler.NewHealthHandler(nil),
		Stats:     handler.NewStatsHandler(statsQueries, logger),
		Companies: handler.NewCompanyHandler(companyQueries, logger),
		Dividends: handler.NewDividendHandler(dividendQueries, logger),
	}, cfg.CORS.AllowedOrigins, logger)

	srv := server.New(cfg.Server, router, logger)
	if err := srv.ListenAndRun(ctx); err != nil {
		logger.Error().Err(err).Msg("server failed")
		return err
	}
	return nil
}
