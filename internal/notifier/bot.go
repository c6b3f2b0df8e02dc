package notifier

import (
	"context"
	"html"
	"strings"

	"MarketAsk/internal/model"
	"MarketAsk/internal/render"
	"MarketAsk/internal/session"
)

// Answerer is the dispatcher as seen by chat surfaces.
type Answerer interface {
	Handle(ctx context.Context, message string) model.Response
	Manual() string
	Examples() string
}

// Bot turns chat messages into Telegram replies.
type Bot struct {
	Answerer Answerer
	Sessions *session.Store
}

// NewBot creates a Bot with a fresh session store.
func NewBot(a Answerer) *Bot {
	return &Bot{Answerer: a, Sessions: session.NewStore()}
}

// HandleMessage is a MessageHandler. Commands:
//
//	/start, /help  the feature manual
//	/examples      example queries
//	/repeat        run the chat's previous query again
//
// Anything else is a query for the dispatcher.
func (b *Bot) HandleMessage(ctx context.Context, chatID, text string) string {
	var cmd string
	if fields := strings.Fields(text); len(fields) > 0 {
		cmd = strings.ToLower(fields[0])
	}
	if i := strings.Index(cmd, "@"); i > 0 {
		cmd = cmd[:i] // "/help@MarketAskBot"
	}

	switch cmd {
	case "/start", "/help":
		return render.TelegramHTML(b.Answerer.Manual())
	case "/examples":
		return render.TelegramHTML(b.Answerer.Examples())
	case "/repeat":
		sess, ok := b.Sessions.Get(chatID)
		if !ok || sess.LastInput == "" {
			return "Nothing to repeat yet. Ask me something first."
		}
		text = sess.LastInput
	default:
		b.Sessions.Remember(chatID, text)
	}

	return FormatResponse(b.Answerer.Handle(ctx, text))
}

// FormatResponse renders a dispatcher response as Telegram HTML. Charts become
// a sparkline summary in a preformatted block.
func FormatResponse(resp model.Response) string {
	out := render.TelegramHTML(resp.Text)
	if resp.Chart != nil {
		out += "\n\n<pre>" + html.EscapeString(strings.TrimSpace(render.Sparkline(resp.Chart))) + "</pre>"
	}
	return out
}
