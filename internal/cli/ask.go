package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"MarketAsk/internal/model"
	"MarketAsk/internal/render"

	"github.com/spf13/cobra"
)

func newAskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <query...>",
		Short: "Answer one question and exit",
		Example: `  marketask ask price of AAPL
  marketask ask compare MSFT and GOOGL
  marketask ask predict TSLA for 60 days --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()

			resp := app.Dispatcher.Handle(ctx, strings.Join(args, " "))

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}
			style, _ := cmd.Flags().GetString("style")
			width, _ := cmd.Flags().GetInt("width")
			return printResponse(cmd, resp, style, width)
		},
	}
	cmd.Flags().Bool("json", false, "print the raw response as JSON")
	cmd.Flags().String("style", "", "glamour style: dark, light, notty (default: auto)")
	cmd.Flags().Int("width", 80, "word wrap width")
	return cmd
}

func newManualCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manual",
		Short: "Show what you can ask",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := app.Dispatcher.Manual()
			if ex, _ := cmd.Flags().GetBool("examples"); ex {
				text = app.Dispatcher.Examples()
			}
			style, _ := cmd.Flags().GetString("style")
			out, err := render.Terminal(text, style, 80)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().Bool("examples", false, "list example queries only")
	cmd.Flags().String("style", "", "glamour style: dark, light, notty (default: auto)")
	return cmd
}

func printResponse(cmd *cobra.Command, resp model.Response, style string, width int) error {
	out, err := render.Terminal(resp.Text, style, width)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	fmt.Fprint(w, out)
	if resp.Chart != nil {
		fmt.Fprintln(w, render.Sparkline(resp.Chart))
	}
	return nil
}
