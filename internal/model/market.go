package model

import "time"

// Period is a history window understood by the market data gateway.
type Period string

const (
	Period1Month  Period = "1mo"
	Period6Months Period = "6mo"
	Period1Year   Period = "1y"
	Period2Years  Period = "2y"
	Period5Years  Period = "5y"
)

// DefaultPeriod is used when a message names no period.
const DefaultPeriod = Period1Year

// OHLCV represents a single candlestick bar as returned by a provider.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PricePoint is one closing price on one date.
type PricePoint struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}

// HistorySeries holds the closing prices of one ticker over a period, oldest first.
type HistorySeries struct {
	Ticker string
	Period Period
	Points []PricePoint
}

// Len returns the number of points, zero for a nil series.
func (h *HistorySeries) Len() int {
	if h == nil {
		return 0
	}
	return len(h.Points)
}

// Closes returns the closing prices in order.
func (h *HistorySeries) Closes() []float64 {
	closes := make([]float64, h.Len())
	for i, p := range h.Points {
		closes[i] = p.Close
	}
	return closes
}

// Last returns the most recent point. The series must be non-empty.
func (h *HistorySeries) Last() PricePoint {
	return h.Points[len(h.Points)-1]
}

// SeriesFromBars converts provider bars into a closing price series.
func SeriesFromBars(ticker string, period Period, bars []OHLCV) *HistorySeries {
	points := make([]PricePoint, 0, len(bars))
	for _, b := range bars {
		points = append(points, PricePoint{Date: b.Time, Close: b.Close})
	}
	return &HistorySeries{Ticker: ticker, Period: period, Points: points}
}

// CompanyProfile is optional company metadata. Every field may be absent.
type CompanyProfile struct {
	Name            *string  `json:"name,omitempty"`
	Sector          *string  `json:"sector,omitempty"`
	MarketCap       *float64 `json:"market_cap,omitempty"`
	DividendYield   *float64 `json:"dividend_yield,omitempty"`
	BusinessSummary *string  `json:"business_summary,omitempty"`
}

// Lookup is the outcome of one gateway call for one ticker.
// History and Profile are nil when unavailable; Err records why.
type Lookup struct {
	Ticker  string
	Period  Period
	History *HistorySeries
	Profile *CompanyProfile
	Err     error
}

// HasHistory reports whether the lookup produced a usable (non-empty) series.
func (l Lookup) HasHistory() bool {
	return l.History.Len() > 0
}

// Prediction is a forecast of future closing prices, one point per calendar day.
type Prediction struct {
	Ticker string
	Points []PricePoint
}
