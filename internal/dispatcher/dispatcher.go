// Package dispatcher answers one message at a time: it classifies the text,
// runs the matching handler and renders the reply.
package dispatcher

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"MarketAsk/internal/calculator"
	"MarketAsk/internal/classifier"
	"MarketAsk/internal/model"
	"MarketAsk/internal/recorder"
	"MarketAsk/internal/refdata"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Gateway is the market data access the handlers need. *collector.Collector implements it.
type Gateway interface {
	Lookup(ctx context.Context, ticker string, period model.Period) model.Lookup
	History(ctx context.Context, ticker string, period model.Period) model.Lookup
}

// Options tunes the handlers.
type Options struct {
	USDToINR       float64
	DefaultHorizon int
	MaxHorizon     int
}

// DefaultOptions mirrors the configuration defaults.
func DefaultOptions() Options {
	return Options{USDToINR: 82.0, DefaultHorizon: 30, MaxHorizon: calculator.MaxHorizonDays}
}

// Dispatcher routes messages to handlers. Handle is safe to call from several
// surfaces at once; messages are processed strictly one after another.
type Dispatcher struct {
	mu   sync.Mutex
	gw   Gateway
	ref  *refdata.Store
	rec  recorder.Recorder
	log  zerolog.Logger
	opts Options
}

// New creates a Dispatcher. A nil ref uses the embedded tables and a nil rec disables metrics.
func New(gw Gateway, ref *refdata.Store, opts Options, rec recorder.Recorder, log zerolog.Logger) *Dispatcher {
	if ref == nil {
		ref = refdata.Default()
	}
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	def := DefaultOptions()
	if opts.USDToINR <= 0 {
		opts.USDToINR = def.USDToINR
	}
	if opts.DefaultHorizon <= 0 {
		opts.DefaultHorizon = def.DefaultHorizon
	}
	if opts.MaxHorizon <= 0 || opts.MaxHorizon > calculator.MaxHorizonDays {
		opts.MaxHorizon = def.MaxHorizon
	}
	return &Dispatcher{gw: gw, ref: ref, rec: rec, log: log, opts: opts}
}

// Handle answers one message. It never fails: every problem becomes a "❌" reply.
func (d *Dispatcher) Handle(ctx context.Context, message string) model.Response {
	d.mu.Lock()
	defer d.mu.Unlock()

	reqID, ok := RequestIDFrom(ctx)
	if !ok {
		reqID = uuid.NewString()
	}
	log := d.log.With().Str("request_id", reqID).Logger()

	resp, reason := d.route(ctx, message)

	outcome := recorder.OutcomeOK
	switch {
	case resp.Intent == model.IntentUnknown:
		outcome = recorder.OutcomeUnknown
	case strings.HasPrefix(resp.Text, failPrefix):
		outcome = recorder.OutcomeFailed
	}
	d.rec.RecordMessage(string(resp.Intent), outcome)
	log.Info().
		AnErr("fallback_reason", reason).
		Str("intent", string(resp.Intent)).
		Str("outcome", outcome).
		Bool("chart", resp.Chart != nil).
		Msg("message handled")

	return resp
}

// route answers one message. When it falls back, the error says why.
func (d *Dispatcher) route(ctx context.Context, message string) (model.Response, error) {
	lower := strings.ToLower(message)
	if classifier.IsManual(lower) {
		return model.Response{Intent: model.IntentManual, Text: d.Manual()}, nil
	}

	tickers := classifier.ExtractTickers(message)
	intent := classifier.Classify(lower)

	switch intent {
	case model.IntentUnknown:
		return Fallback(), model.ErrUnknownIntent
	case model.IntentFinancialTerms:
		return d.financialTerm(lower), nil
	case model.IntentLearningResources:
		return d.learningResources(lower), nil
	case model.IntentInvestmentRoadmap:
		return d.roadmap(), nil
	case model.IntentTopCompanies:
		return d.topCompanies(ctx, lower), nil
	case model.IntentStockPrice:
		if len(tickers) > 0 {
			return d.stockPrice(ctx, tickers[0]), nil
		}
	case model.IntentChart:
		if len(tickers) > 0 {
			return d.chart(ctx, tickers[0], ParsePeriod(lower)), nil
		}
	case model.IntentCompare:
		if len(tickers) > 1 {
			return d.compare(ctx, tickers), nil
		}
		if len(tickers) == 1 {
			return Fallback(), fmt.Errorf("%s needs 2 tickers, have 1: %w", intent, model.ErrNoTicker)
		}
	case model.IntentPrediction:
		if len(tickers) > 0 {
			return d.predict(ctx, tickers[0], lower), nil
		}
	}
	return Fallback(), fmt.Errorf("%s: %w", intent, model.ErrNoTicker)
}

// Fallback is the reply to anything the bot does not understand.
func Fallback() model.Response {
	return model.Response{Intent: model.IntentUnknown, Text: fallbackText}
}
