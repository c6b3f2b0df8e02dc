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

const defaultYahooBaseURL = "https://query1.finance.yahoo.com"

// YahooFetcher implements Fetcher using the Yahoo Finance public API.
type YahooFetcher struct {
	BaseURL   string
	Client    *http.Client
	SymbolMap map[string]string // maps user-facing ticker to Yahoo ticker
}

// NewYahooFetcher creates a Yahoo Finance fetcher with optional proxy support.
func NewYahooFetcher(proxyURL string, timeout time.Duration) *YahooFetcher {
	return &YahooFetcher{
		BaseURL: defaultYahooBaseURL,
		Client:  newHTTPClient(proxyURL, timeout),
		SymbolMap: map[string]string{
			"SPX":   "^GSPC",
			"SP500": "^GSPC",
			"NDX":   "^NDX",
			"DJI":   "^DJI",
		},
	}
}

func newHTTPClient(proxyURL string, timeout time.Duration) *http.Client {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{Timeout: timeout, Transport: transport}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

func (f *YahooFetcher) yahooSymbol(ticker string) string {
	if mapped, ok := f.SymbolMap[ticker]; ok {
		return mapped
	}
	return ticker
}

// yahooChart is the response structure from the v8 chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol    string `json:"symbol"`
				LongName  string `json:"longName"`
				ShortName string `json:"shortName"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *yahooError `json:"error"`
	} `json:"chart"`
}

type yahooError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// yahooSummary is the subset of the v10 quoteSummary response used for profiles.
type yahooSummary struct {
	QuoteSummary struct {
		Result []struct {
			Price struct {
				LongName  string `json:"longName"`
				ShortName string `json:"shortName"`
			} `json:"price"`
			AssetProfile struct {
				Sector              string `json:"sector"`
				LongBusinessSummary string `json:"longBusinessSummary"`
			} `json:"assetProfile"`
			SummaryDetail struct {
				MarketCap     yahooRaw `json:"marketCap"`
				DividendYield yahooRaw `json:"dividendYield"`
			} `json:"summaryDetail"`
		} `json:"result"`
		Error *yahooError `json:"error"`
	} `json:"quoteSummary"`
}

type yahooRaw struct {
	Raw *float64 `json:"raw"`
}

func val(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func (f *YahooFetcher) get(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, truncate(string(body), 200))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("yahoo decode: %w", err)
	}
	return nil
}

func (f *YahooFetcher) fetchChart(ctx context.Context, ticker, interval, rng string) (*yahooChart, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=%s&range=%s",
		f.BaseURL, url.PathEscape(f.yahooSymbol(ticker)), interval, rng)
	var chart yahooChart
	if err := f.get(ctx, u, &chart); err != nil {
		return nil, err
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 {
		return nil, fmt.Errorf("yahoo: no chart result")
	}
	return &chart, nil
}

// FetchHistory returns daily closes over the period. Null bars (holidays,
// halted sessions) are skipped.
func (f *YahooFetcher) FetchHistory(ctx context.Context, ticker string, period model.Period) (*model.HistorySeries, error) {
	chart, err := f.fetchChart(ctx, ticker, "1d", string(period))
	if err != nil {
		return nil, &model.DataError{Ticker: ticker, Op: "history", Err: err}
	}

	result := chart.Chart.Result[0]
	if len(result.Timestamp) == 0 || len(result.Indicators.Quote) == 0 {
		return nil, &model.DataError{Ticker: ticker, Op: "history", Err: model.ErrDataUnavailable}
	}
	quote := result.Indicators.Quote[0]
	bars := make([]model.OHLCV, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] == nil {
			continue
		}
		bar := model.OHLCV{Time: time.Unix(ts, 0).UTC(), Close: *quote.Close[i]}
		if i < len(quote.Open) {
			bar.Open = val(quote.Open[i])
		}
		if i < len(quote.High) {
			bar.High = val(quote.High[i])
		}
		if i < len(quote.Low) {
			bar.Low = val(quote.Low[i])
		}
		if i < len(quote.Volume) {
			bar.Volume = val(quote.Volume[i])
		}
		bars = append(bars, bar)
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })

	return model.SeriesFromBars(ticker, period, bars), nil
}

// FetchProfile reads company metadata from quoteSummary. When that endpoint is
// refused (it often wants a session crumb) the name falls back to chart metadata.
func (f *YahooFetcher) FetchProfile(ctx context.Context, ticker string) (*model.CompanyProfile, error) {
	u := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=price,assetProfile,summaryDetail",
		f.BaseURL, url.PathEscape(f.yahooSymbol(ticker)))
	var summary yahooSummary
	summaryErr := f.get(ctx, u, &summary)
	if summaryErr == nil && summary.QuoteSummary.Error == nil && len(summary.QuoteSummary.Result) > 0 {
		r := summary.QuoteSummary.Result[0]
		return &model.CompanyProfile{
			Name:            optString(firstNonEmpty(r.Price.LongName, r.Price.ShortName)),
			Sector:          optString(r.AssetProfile.Sector),
			MarketCap:       r.SummaryDetail.MarketCap.Raw,
			DividendYield:   r.SummaryDetail.DividendYield.Raw,
			BusinessSummary: optString(r.AssetProfile.LongBusinessSummary),
		}, nil
	}

	chart, err := f.fetchChart(ctx, ticker, "1d", "1d")
	if err != nil {
		if summaryErr != nil {
			err = fmt.Errorf("%w; chart fallback: %w", summaryErr, err)
		}
		return nil, &model.DataError{Ticker: ticker, Op: "profile", Err: err}
	}
	meta := chart.Chart.Result[0].Meta
	name := firstNonEmpty(meta.LongName, meta.ShortName)
	if name == "" {
		return nil, &model.DataError{Ticker: ticker, Op: "profile", Err: model.ErrDataUnavailable}
	}
	return &model.CompanyProfile{Name: &name}, nil
}

func optString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
