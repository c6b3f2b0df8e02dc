package scheduler

import (
	"context"
	"fmt"

	"MarketAsk/internal/model"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Answerer runs one query through the dispatcher.
type Answerer interface {
	Handle(ctx context.Context, message string) model.Response
}

// Pusher delivers a rendered digest entry to a chat.
type Pusher interface {
	SendWithRetry(ctx context.Context, chatID, text string, maxRetries int) error
}

// Scheduler runs the configured digest queries on a cron schedule and pushes
// each answer to one chat.
type Scheduler struct {
	Cron     *cron.Cron
	Answerer Answerer
	Pusher   Pusher
	Format   func(model.Response) string
	ChatID   string
	Queries  []string
	Log      zerolog.Logger
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler. format renders a response for the pusher.
func NewScheduler(ctx context.Context, a Answerer, p Pusher, format func(model.Response) string, chatID string, queries []string, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Answerer: a,
		Pusher:   p,
		Format:   format,
		ChatID:   chatID,
		Queries:  queries,
		Log:      log,
		Ctx:      ctx,
	}
}

// Register adds the digest job. The cron expression has a seconds field, e.g. "0 30 8 * * 1-5".
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.RunDigest); err != nil {
		return fmt.Errorf("register digest task: %w", err)
	}
	s.Log.Info().Str("cron", spec).Int("queries", len(s.Queries)).Msg("digest scheduled")
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.Log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler and waits for a running digest to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.Log.Info().Msg("scheduler stopped")
}

// RunDigest answers every configured query in order and pushes the results.
// A failed push is logged and does not stop the remaining queries.
func (s *Scheduler) RunDigest() {
	s.Log.Info().Msg("running digest")
	sent := 0
	for _, q := range s.Queries {
		if s.Ctx.Err() != nil {
			return
		}
		resp := s.Answerer.Handle(s.Ctx, q)
		if err := s.Pusher.SendWithRetry(s.Ctx, s.ChatID, s.Format(resp), 2); err != nil {
			s.Log.Error().Err(err).Str("query", q).Msg("push digest entry")
			continue
		}
		sent++
	}
	s.Log.Info().Int("sent", sent).Int("total", len(s.Queries)).Msg("digest finished")
}
