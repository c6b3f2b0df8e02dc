package collector

import (
	"context"
	"strings"
	"sync"
	"time"

	"MarketAsk/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
// Tickers missing from Histories get a generated series when Price is set.
type MockFetcher struct {
	Price     float64
	Histories map[string]*model.HistorySeries
	Profiles  map[string]*model.CompanyProfile
	Fail      map[string]bool

	mu    sync.Mutex
	calls []string
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchHistory(_ context.Context, ticker string, period model.Period) (*model.HistorySeries, error) {
	m.record("history:" + ticker)
	if m.Fail[ticker] {
		return nil, &model.DataError{Ticker: ticker, Op: "history", Err: model.ErrDataUnavailable}
	}
	if h, ok := m.Histories[ticker]; ok {
		return h, nil
	}
	if m.Price > 0 {
		return model.SeriesFromBars(ticker, period, generateMockBars(m.Price, periodDays(period))), nil
	}
	return nil, &model.DataError{Ticker: ticker, Op: "history", Err: model.ErrDataUnavailable}
}

func (m *MockFetcher) FetchProfile(_ context.Context, ticker string) (*model.CompanyProfile, error) {
	m.record("profile:" + ticker)
	if m.Fail[ticker] {
		return nil, &model.DataError{Ticker: ticker, Op: "profile", Err: model.ErrDataUnavailable}
	}
	if p, ok := m.Profiles[ticker]; ok {
		return p, nil
	}
	if m.Price > 0 {
		name := strings.ToUpper(ticker) + " Inc."
		return &model.CompanyProfile{Name: &name}, nil
	}
	return nil, &model.DataError{Ticker: ticker, Op: "profile", Err: model.ErrDataUnavailable}
}

// Calls returns the fetches made so far, as "history:T" or "profile:T".
func (m *MockFetcher) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func (m *MockFetcher) record(call string) {
	m.mu.Lock()
	m.calls = append(m.calls, call)
	m.mu.Unlock()
}

func periodDays(p model.Period) int {
	switch p {
	case model.Period1Month:
		return 21
	case model.Period6Months:
		return 126
	case model.Period2Years:
		return 504
	case model.Period5Years:
		return 1260
	default:
		return 252
	}
}

func generateMockBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	today := time.Now().UTC().Truncate(24 * time.Hour)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   today.AddDate(0, 0, -(count - 1 - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
