package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"MarketAsk/internal/model"
)

// RESTFetcher implements Fetcher against a generic JSON market data API:
//
//	GET {base}/api/v1/bars/daily?symbol=T&range=1y -> [{timestamp, open, high, low, close, volume}]
//	GET {base}/api/v1/profile?symbol=T            -> {name, sector, market_cap, dividend_yield, business_summary}
type RESTFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewRESTFetcher creates a new fetcher with optional proxy support.
func NewRESTFetcher(baseURL, apiKey, proxyURL string, timeout time.Duration) *RESTFetcher {
	return &RESTFetcher{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		Client:  newHTTPClient(proxyURL, timeout),
	}
}

func (f *RESTFetcher) Name() string { return "rest" }

// restBar is the expected JSON shape of one daily bar.
type restBar struct {
	Timestamp int64   `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
}

type restProfile struct {
	Name            *string  `json:"name"`
	Sector          *string  `json:"sector"`
	MarketCap       *float64 `json:"market_cap"`
	DividendYield   *float64 `json:"dividend_yield"`
	BusinessSummary *string  `json:"business_summary"`
}

func (f *RESTFetcher) FetchHistory(ctx context.Context, ticker string, period model.Period) (*model.HistorySeries, error) {
	endpoint := fmt.Sprintf("%s/api/v1/bars/daily?symbol=%s&range=%s",
		f.BaseURL, url.QueryEscape(ticker), url.QueryEscape(string(period)))
	var rb []restBar
	if err := f.getJSON(ctx, endpoint, &rb); err != nil {
		return nil, &model.DataError{Ticker: ticker, Op: "history", Err: err}
	}
	if len(rb) == 0 {
		return nil, &model.DataError{Ticker: ticker, Op: "history", Err: model.ErrDataUnavailable}
	}
	bars := make([]model.OHLCV, len(rb))
	for i, b := range rb {
		bars[i] = model.OHLCV{
			Time:   time.Unix(b.Timestamp, 0).UTC(),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		}
	}
	// Ensure chronological order
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return model.SeriesFromBars(ticker, period, bars), nil
}

func (f *RESTFetcher) FetchProfile(ctx context.Context, ticker string) (*model.CompanyProfile, error) {
	endpoint := fmt.Sprintf("%s/api/v1/profile?symbol=%s", f.BaseURL, url.QueryEscape(ticker))
	var p restProfile
	if err := f.getJSON(ctx, endpoint, &p); err != nil {
		return nil, &model.DataError{Ticker: ticker, Op: "profile", Err: err}
	}
	return &model.CompanyProfile{
		Name:            p.Name,
		Sector:          p.Sector,
		MarketCap:       p.MarketCap,
		DividendYield:   p.DividendYield,
		BusinessSummary: p.BusinessSummary,
	}, nil
}

func (f *RESTFetcher) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return model.ErrDataUnavailable
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status %d, body: %s", resp.StatusCode, truncate(string(body), 200))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
