package cli

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"MarketAsk/internal/refdata"
	"MarketAsk/internal/server"

	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Example: `  marketask serve
  marketask serve --port 9090
  curl -s localhost:8080/api/ask -d '{"query":"price of AAPL"}' -H 'Content-Type: application/json'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Config
			if port, _ := cmd.Flags().GetInt("port"); port > 0 {
				cfg.HTTP.Port = port
			}

			srv := server.New(app.Dispatcher, refdata.Default().Examples(), app.Registry, cfg.HTTP.Host, cfg.HTTP.Port, app.Logger)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() { errCh <- srv.Start() }()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Stop(shutdownCtx)
		},
	}
	cmd.Flags().Int("port", 0, "listen port (overrides http.port)")
	return cmd
}
