package render

import (
	"strings"
	"testing"
	"time"

	"MarketAsk/internal/model"
)

func history(ticker string, closes ...float64) *model.HistorySeries {
	h := &model.HistorySeries{Ticker: ticker, Period: model.Period1Year}
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		h.Points = append(h.Points, model.PricePoint{Date: start.AddDate(0, 0, i), Close: c})
	}
	return h
}

func TestLineChart(t *testing.T) {
	c := LineChart(history("AAPL", 1, 2, 3))
	if c.Kind != model.ChartLine || c.Title != "AAPL Price Chart" {
		t.Errorf("unexpected chart: %s %q", c.Kind, c.Title)
	}
	if c.XLabel != "Date" || c.YLabel != "Price (USD)" || c.LegendTitle != "Ticker" {
		t.Errorf("unexpected labels: %q %q %q", c.XLabel, c.YLabel, c.LegendTitle)
	}
	if len(c.Series) != 1 || c.Series[0].Name != "AAPL" || len(c.Series[0].Points) != 3 {
		t.Errorf("unexpected series: %+v", c.Series)
	}
}

func TestComparisonChart(t *testing.T) {
	c := ComparisonChart([]model.ChartSeries{
		SeriesOf("AAPL", history("AAPL", 100, 110).Points),
		SeriesOf("MSFT", history("MSFT", 100, 90).Points),
	})
	if c.Title != "Stock Comparison: AAPL, MSFT" {
		t.Errorf("unexpected title %q", c.Title)
	}
	if c.YLabel != "Normalized Price (Start=100)" {
		t.Errorf("unexpected y label %q", c.YLabel)
	}
}

func TestPredictionChart(t *testing.T) {
	h := history("NVDA", 1, 2)
	p := model.Prediction{Ticker: "NVDA", Points: history("NVDA", 3, 4, 5).Points}
	c := PredictionChart(h, p)
	if c.Title != "NVDA Price Prediction" || c.LegendTitle != "Type" {
		t.Errorf("unexpected chart: %q %q", c.Title, c.LegendTitle)
	}
	if len(c.Series) != 2 || c.Series[0].Name != "Historical" || c.Series[1].Name != "Prediction" {
		t.Fatalf("unexpected series: %+v", c.Series)
	}
	if len(c.Series[1].Points) != 3 {
		t.Errorf("expected 3 prediction points, got %d", len(c.Series[1].Points))
	}
}

func TestSparkline(t *testing.T) {
	out := Sparkline(LineChart(history("AAPL", 1, 2, 3, 4, 5, 6, 7, 8)))
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || lines[0] != "AAPL Price Chart" {
		t.Fatalf("unexpected sparkline output: %q", out)
	}
	if !strings.HasPrefix(lines[1], "AAPL ▁▂▃▄▅▆▇█ 1.00 → 8.00") {
		t.Errorf("unexpected series line: %q", lines[1])
	}
	if !strings.Contains(lines[1], "(2024-03-01 to 2024-03-08)") {
		t.Errorf("missing date range: %q", lines[1])
	}
	if Sparkline(nil) != "" {
		t.Error("nil chart should render empty")
	}
}

func TestSparkline_Downsamples(t *testing.T) {
	closes := make([]float64, 250)
	for i := range closes {
		closes[i] = float64(i)
	}
	line := strings.Split(Sparkline(LineChart(history("SPY", closes...))), "\n")[1]
	cells := strings.Fields(line)[1]
	if n := len([]rune(cells)); n != SparklineWidth {
		t.Errorf("expected %d cells, got %d", SparklineWidth, n)
	}
}

func TestSparkline_FlatSeries(t *testing.T) {
	line := strings.Split(Sparkline(LineChart(history("KO", 5, 5, 5))), "\n")[1]
	if !strings.Contains(line, "▅▅▅") {
		t.Errorf("flat series should sit mid-ramp, got %q", line)
	}
}
