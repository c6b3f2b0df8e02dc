package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"MarketAsk/internal/notifier"
	"MarketAsk/internal/scheduler"

	"github.com/spf13/cobra"
)

func newBotCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the Telegram bot",
		Long: `Poll Telegram for messages and answer each one in the chat it came from.

When digest.cron is set, the configured digest queries are also answered on
that schedule and pushed to digest.chat_id.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Config
			if err := cfg.ValidateBot(); err != nil {
				return fmt.Errorf("config validation: %w", err)
			}
			log := app.Logger

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy, log)
			bot := notifier.NewBot(app.Dispatcher)

			if cfg.Digest.Cron != "" {
				sched := scheduler.NewScheduler(ctx, app.Dispatcher, tn, notifier.FormatResponse, cfg.DigestChatID(), cfg.Digest.Queries, log)
				if err := sched.Register(cfg.Digest.Cron); err != nil {
					return fmt.Errorf("register digest: %w", err)
				}
				sched.Start()
				defer sched.Stop()
			}

			go tn.StartPolling(ctx, bot.HandleMessage)
			log.Info().Msg("MarketAsk bot is running. Press Ctrl+C to stop.")

			<-ctx.Done()
			log.Info().Msg("shutdown signal received, stopping...")
			return nil
		},
	}
}
