package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lotto-tools/report-center/pkg/server"
	appconfig "github.com/lotto-tools/report-center/pkg/services/config"
	"github.com/lotto-tools/report-center/pkg/services/fetch"
	"github.com/lotto-tools/report-center/pkg/services/registry"
	"github.com/lotto-tools/report-center/pkg/services/report"
	"github.com/lotto-tools/report-center/pkg/store/dal"
	lambdastore "github.com/lotto-tools/report-center/pkg/store/lambda"
	mongostore "github.com/lotto-tools/report-center/pkg/store/mongo"
	sqlstore "github.com/lotto-tools/report-center/pkg/store/sql"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the report center web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "config.yaml",
		"Path to the server configuration file")

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

	cfg, err := appconfig.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load server config: %w", err)
	}

	bankRegistry, err := registry.NewConfigRegistry(cfg.BankConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load bank config: %w", err)
	}

	profiles, err := bankRegistry.GetProfiles()
	if err != nil {
		return fmt.Errorf("failed to read bank profiles: %w", err)
	}

	logger.Info().Msgf("Bank configuration found at `%s` successfully loaded.", cfg.BankConfigPath)
	for _, profile := range profiles {
		logger.Info().Msgf("Bank: `%s`, Driver: `%s`", profile.Name, profile.Driver)
	}

	factories := fetch.NewFactoryRegistry(map[string]fetch.SourceFactory{
		"mongo":    mongostore.SourceFactory,
		"postgres": sqlstore.SourceFactory,
		"lambda":   lambdastore.SourceFactory,
		"dal":      dal.SourceFactory,
	})

	sources, err := fetch.BuildSources(ctx, factories, profiles)
	if err != nil {
		return fmt.Errorf("failed to build bank sources: %w", err)
	}

	locale := report.LocaleES
	if cfg.Locale == "en" {
		locale = report.LocaleEN
	}

	service := report.NewService(report.ServiceOptions{
		Fetcher:   fetch.NewMerger(sources...),
		Locale:    locale,
		ChartTopN: cfg.ChartTopN,
	})

	api := server.NewWebAPI(logger, server.Config{
		Addr:            cfg.Addr,
		ShutdownTimeout: cfg.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Reports: service,
		},
	})

	return api.Start()
}
