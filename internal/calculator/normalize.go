package calculator

import (
	"errors"

	"MarketAsk/internal/model"
)

// Normalize rescales a series so that its first close equals 100.
func Normalize(h *model.HistorySeries) ([]model.PricePoint, error) {
	if h.Len() == 0 {
		return nil, model.ErrInsufficientHistory
	}
	base := h.Points[0].Close
	if base == 0 {
		return nil, errors.New("cannot normalize a series starting at zero")
	}
	out := make([]model.PricePoint, len(h.Points))
	for i, p := range h.Points {
		out[i] = model.PricePoint{Date: p.Date, Close: p.Close / base * 100}
	}
	return out, nil
}
