package cli

import (
	"MarketAsk/internal/mcptool"

	"github.com/spf13/cobra"
)

func newMCPCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the ask_market MCP tool over stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			// stdout carries the protocol; logs must stay on stderr or in the file.
			app.Logger.Info().Msg("mcp stdio server starting")
			return mcptool.Serve(mcptool.NewServer("marketask", Version, app.Dispatcher))
		},
	}
}
