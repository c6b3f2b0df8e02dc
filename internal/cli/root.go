// Package cli provides the marketask command-line interface.
package cli

import (
	"fmt"
	"os"

	"MarketAsk/internal/collector"
	"MarketAsk/internal/config"
	"MarketAsk/internal/dispatcher"
	"MarketAsk/internal/logging"
	"MarketAsk/internal/recorder"
	"MarketAsk/internal/refdata"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version is the build version reported by the MCP server.
const Version = "0.1.0"

const defaultConfigPath = "configs/config.yaml"

// App holds the application dependencies, built once the config is known.
type App struct {
	Config     *config.Config
	Logger     zerolog.Logger
	Registry   *prometheus.Registry
	Collector  *collector.Collector
	Dispatcher *dispatcher.Dispatcher
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd() *cobra.Command {
	app := &App{}

	rootCmd := &cobra.Command{
		Use:   "marketask",
		Short: "MarketAsk - ask plain-English questions about the stock market",
		Long: `MarketAsk answers questions about stocks: prices, charts, comparisons,
trend predictions, financial terms, top companies by sector, learning
resources and an investment roadmap.

It runs as a Telegram bot, an HTTP API, an MCP tool server or a one-shot CLI.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			if path == "" {
				path = defaultConfigPath
				if v := os.Getenv("CONFIG_PATH"); v != "" {
					path = v
				}
			}
			debug, _ := cmd.Flags().GetBool("debug")
			return app.init(path, debug)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "config file, .yaml or .toml (default: $CONFIG_PATH or "+defaultConfigPath+")")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(newBotCmd(app))
	rootCmd.AddCommand(newServeCmd(app))
	rootCmd.AddCommand(newMCPCmd(app))
	rootCmd.AddCommand(newAskCmd(app))
	rootCmd.AddCommand(newManualCmd(app))
	return rootCmd
}

func (a *App) init(path string, debug bool) error {
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	if debug {
		cfg.Logging.Level = "debug"
	}
	a.Config = cfg
	a.Logger = logging.New(cfg.Logging)

	a.Registry = prometheus.NewRegistry()
	a.Registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	rec := recorder.NewPrometheusRecorder(a.Registry)

	fetcher := newFetcher(cfg)
	a.Logger.Info().Str("source", fetcher.Name()).Msg("data source selected")
	a.Collector = collector.NewCollector(fetcher, rec, a.Logger)

	a.Dispatcher = dispatcher.New(a.Collector, refdata.Default(), dispatcher.Options{
		USDToINR:       cfg.Currency.USDToINR,
		DefaultHorizon: cfg.Forecast.DefaultHorizon,
		MaxHorizon:     cfg.Forecast.MaxHorizon,
	}, rec, a.Logger)
	return nil
}

func newFetcher(cfg *config.Config) collector.Fetcher {
	switch cfg.Provider() {
	case config.ProviderREST:
		return collector.NewRESTFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy, cfg.DataTimeout())
	case config.ProviderMock:
		return &collector.MockFetcher{Price: 100}
	default:
		return collector.NewYahooFetcher(cfg.Proxy, cfg.DataTimeout())
	}
}
