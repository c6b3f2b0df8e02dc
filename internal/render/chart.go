package render

import (
	"fmt"
	"strings"

	"MarketAsk/internal/model"
)

const (
	axisDate       = "Date"
	axisPriceUSD   = "Price (USD)"
	axisNormalized = "Normalized Price (Start=100)"
)

// SeriesOf converts price points into a named chart series.
func SeriesOf(name string, points []model.PricePoint) model.ChartSeries {
	out := make([]model.ChartPoint, len(points))
	for i, p := range points {
		out[i] = model.ChartPoint{X: p.Date, Y: p.Close}
	}
	return model.ChartSeries{Name: name, Points: out}
}

// LineChart plots the closing prices of one ticker.
func LineChart(h *model.HistorySeries) *model.ChartSpec {
	return &model.ChartSpec{
		Kind:        model.ChartLine,
		Title:       fmt.Sprintf("%s Price Chart", h.Ticker),
		XLabel:      axisDate,
		YLabel:      axisPriceUSD,
		LegendTitle: "Ticker",
		Series:      []model.ChartSeries{SeriesOf(h.Ticker, h.Points)},
	}
}

// ComparisonChart overlays already normalized series, one per ticker.
func ComparisonChart(series []model.ChartSeries) *model.ChartSpec {
	names := make([]string, len(series))
	for i, s := range series {
		names[i] = s.Name
	}
	return &model.ChartSpec{
		Kind:        model.ChartComparison,
		Title:       "Stock Comparison: " + strings.Join(names, ", "),
		XLabel:      axisDate,
		YLabel:      axisNormalized,
		LegendTitle: "Ticker",
		Series:      series,
	}
}

// PredictionChart overlays the history and its extrapolation.
func PredictionChart(h *model.HistorySeries, p model.Prediction) *model.ChartSpec {
	return &model.ChartSpec{
		Kind:        model.ChartPrediction,
		Title:       fmt.Sprintf("%s Price Prediction", h.Ticker),
		XLabel:      axisDate,
		YLabel:      axisPriceUSD,
		LegendTitle: "Type",
		Series: []model.ChartSeries{
			SeriesOf("Historical", h.Points),
			SeriesOf("Prediction", p.Points),
		},
	}
}
