package collector

import (
	"context"
	"errors"
	"time"

	"MarketAsk/internal/model"
	"MarketAsk/internal/recorder"

	"github.com/rs/zerolog"
)

// Collector wraps a Fetcher and turns every failure into a model.Lookup
// carrying the error, so handlers never see a raw gateway fault.
type Collector struct {
	Fetcher  Fetcher
	Recorder recorder.Recorder
	Log      zerolog.Logger
}

// NewCollector creates a new Collector. A nil rec disables metrics.
func NewCollector(fetcher Fetcher, rec recorder.Recorder, log zerolog.Logger) *Collector {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	return &Collector{Fetcher: fetcher, Recorder: rec, Log: log}
}

// History fetches the closing price series only.
func (c *Collector) History(ctx context.Context, ticker string, period model.Period) model.Lookup {
	l := model.Lookup{Ticker: ticker, Period: period}
	l.History, l.Err = c.fetchHistory(ctx, ticker, period)
	return l
}

// Lookup fetches both the history and the company profile. Either may be nil;
// Err joins whatever went wrong.
func (c *Collector) Lookup(ctx context.Context, ticker string, period model.Period) model.Lookup {
	l := model.Lookup{Ticker: ticker, Period: period}
	var histErr, profErr error
	l.History, histErr = c.fetchHistory(ctx, ticker, period)
	l.Profile, profErr = c.fetchProfile(ctx, ticker)
	l.Err = errors.Join(histErr, profErr)
	return l
}

func (c *Collector) fetchHistory(ctx context.Context, ticker string, period model.Period) (*model.HistorySeries, error) {
	start := time.Now()
	h, err := c.Fetcher.FetchHistory(ctx, ticker, period)
	if err == nil && h.Len() == 0 {
		h, err = nil, &model.DataError{Ticker: ticker, Op: "history", Err: model.ErrDataUnavailable}
	}
	c.observe(err, start)
	if err != nil {
		c.Log.Warn().Err(err).Str("ticker", ticker).Str("period", string(period)).Msg("history lookup failed")
		return nil, err
	}
	c.Log.Debug().Str("ticker", ticker).Str("period", string(period)).Int("points", h.Len()).Msg("history fetched")
	return h, nil
}

func (c *Collector) fetchProfile(ctx context.Context, ticker string) (*model.CompanyProfile, error) {
	start := time.Now()
	p, err := c.Fetcher.FetchProfile(ctx, ticker)
	if err == nil && p == nil {
		err = &model.DataError{Ticker: ticker, Op: "profile", Err: model.ErrDataUnavailable}
	}
	c.observe(err, start)
	if err != nil {
		c.Log.Warn().Err(err).Str("ticker", ticker).Msg("profile lookup failed")
		return nil, err
	}
	return p, nil
}

func (c *Collector) observe(err error, start time.Time) {
	outcome := recorder.OutcomeOK
	if err != nil {
		outcome = recorder.OutcomeFailed
	}
	c.Recorder.RecordLookup(c.Fetcher.Name(), outcome, time.Since(start))
}
