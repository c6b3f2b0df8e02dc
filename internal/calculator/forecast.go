package calculator

import (
	"fmt"
	"time"

	"MarketAsk/internal/model"
)

// MaxHorizonDays bounds how far PredictTrend extrapolates.
const MaxHorizonDays = 3650

// DayOrdinal maps the calendar day of t to a day count since 1970-01-01.
func DayOrdinal(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

// PredictTrend fits closing price against day ordinal and extrapolates horizon
// consecutive calendar days after the last date of the series.
// On error the returned prediction has no points; callers must not treat that as a flat price.
func PredictTrend(h *model.HistorySeries, horizon int) (model.Prediction, error) {
	empty := model.Prediction{Points: []model.PricePoint{}}
	if h != nil {
		empty.Ticker = h.Ticker
	}
	if horizon < 1 || horizon > MaxHorizonDays {
		return empty, fmt.Errorf("horizon %d outside 1..%d: %w", horizon, MaxHorizonDays, model.ErrInvalidHorizon)
	}
	if h.Len() == 0 {
		return empty, fmt.Errorf("predict: %w", model.ErrInsufficientHistory)
	}

	xs := make([]float64, h.Len())
	for i, p := range h.Points {
		xs[i] = float64(DayOrdinal(p.Date))
	}
	line, err := FitLinear(xs, h.Closes())
	if err != nil {
		return empty, fmt.Errorf("fit trend: %w", err)
	}

	last := h.Last().Date
	points := make([]model.PricePoint, horizon)
	for i := 1; i <= horizon; i++ {
		d := last.AddDate(0, 0, i)
		points[i-1] = model.PricePoint{Date: d, Close: line.At(float64(DayOrdinal(d)))}
	}
	return model.Prediction{Ticker: h.Ticker, Points: points}, nil
}
