package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/sales-atlas/pkg/server"
	"github.com/de-tools/sales-atlas/pkg/services/agent"
	"github.com/de-tools/sales-atlas/pkg/services/config"
	"github.com/de-tools/sales-atlas/pkg/services/engine"
	"github.com/de-tools/sales-atlas/pkg/store/csvstore"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the sales analytics web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the configuration file (optional)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store := csvstore.NewStore(datasetSource(cfg.Dataset))
	processor := agent.NewProcessor(engine.NewExecutor(store))

	if err := processor.PreloadData(ctx); err != nil {
		logger.Warn().Err(err).Msg("dataset preload failed, will retry on first query")
	} else {
		logger.Info().Int("rows", processor.DataStats().TotalRows).Msg("dataset loaded")
	}

	api := server.NewWebAPI(server.Config{
		Addr:            cfg.Server.Addr(),
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Agent:  processor,
			Logger: logger,
		},
	})

	return api.Start()
}

func datasetSource(dataset config.Dataset) csvstore.Source {
	if dataset.Path != "" {
		return csvstore.FileSource{Path: dataset.Path}
	}
	return csvstore.HTTPSource{URL: dataset.URL}
}
