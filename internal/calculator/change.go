package calculator

import (
	"fmt"

	"MarketAsk/internal/model"
)

// Change is the move between the last two closes of a series.
type Change struct {
	Current  float64
	Previous float64
	Absolute float64
	Percent  float64
}

// DailyChange compares the last two closing prices. It needs at least two points.
func DailyChange(h *model.HistorySeries) (Change, error) {
	n := h.Len()
	if n < 2 {
		return Change{}, fmt.Errorf("daily change needs 2 closes, have %d: %w", n, model.ErrInsufficientHistory)
	}
	cur := h.Points[n-1].Close
	prev := h.Points[n-2].Close
	if prev == 0 {
		return Change{}, fmt.Errorf("previous close is zero: %w", model.ErrInvalidPrice)
	}
	abs := cur - prev
	return Change{
		Current:  cur,
		Previous: prev,
		Absolute: abs,
		Percent:  abs / prev * 100,
	}, nil
}
