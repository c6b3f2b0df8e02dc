package calculator

import (
	"errors"
	"math"
	"testing"
	"time"

	"MarketAsk/internal/model"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func series(start time.Time, closes ...float64) *model.HistorySeries {
	h := &model.HistorySeries{Ticker: "TEST", Period: model.Period1Year}
	for i, c := range closes {
		h.Points = append(h.Points, model.PricePoint{Date: start.AddDate(0, 0, i), Close: c})
	}
	return h
}

var day0 = time.Date(2024, 1, 1, 16, 0, 0, 0, time.UTC)

func TestDailyChange_TwoPoints(t *testing.T) {
	ch, err := DailyChange(series(day0, 100, 105))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ch.Absolute != 5 {
		t.Errorf("expected change 5, got %.4f", ch.Absolute)
	}
	if math.Abs(ch.Percent-5) > 1e-9 {
		t.Errorf("expected 5%%, got %.4f", ch.Percent)
	}
	if ch.Current != 105 || ch.Previous != 100 {
		t.Errorf("unexpected closes: %+v", ch)
	}
}

func TestDailyChange_UsesLastTwo(t *testing.T) {
	ch, err := DailyChange(series(day0, 1, 2, 50, 40))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ch.Absolute != -10 || ch.Percent != -20 {
		t.Errorf("expected -10 / -20%%, got %.2f / %.2f", ch.Absolute, ch.Percent)
	}
}

func TestDailyChange_InsufficientHistory(t *testing.T) {
	for _, h := range []*model.HistorySeries{nil, series(day0), series(day0, 100)} {
		if _, err := DailyChange(h); !errors.Is(err, model.ErrInsufficientHistory) {
			t.Errorf("expected ErrInsufficientHistory for %d points, got %v", h.Len(), err)
		}
	}
}

func TestDailyChange_ZeroPreviousClose(t *testing.T) {
	_, err := DailyChange(series(day0, 0, 190))
	if !errors.Is(err, model.ErrInvalidPrice) {
		t.Errorf("expected ErrInvalidPrice, got %v", err)
	}
	if errors.Is(err, model.ErrInsufficientHistory) {
		t.Error("a zero close is not a history length problem")
	}
}

func TestNormalize(t *testing.T) {
	pts, err := Normalize(series(day0, 50, 75, 25))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{100, 150, 50}
	for i, p := range pts {
		if p.Close != want[i] {
			t.Errorf("point %d: expected %.1f, got %.1f", i, want[i], p.Close)
		}
	}
	if _, err := Normalize(series(day0)); err == nil {
		t.Error("expected error for empty series")
	}
	if _, err := Normalize(series(day0, 0, 1)); err == nil {
		t.Error("expected error for zero base")
	}
}

func TestFitLinear(t *testing.T) {
	line, err := FitLinear([]float64{1, 2, 3, 4}, []float64{3, 5, 7, 9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(line.Slope-2) > 1e-9 || math.Abs(line.Intercept-1) > 1e-9 {
		t.Errorf("expected y=2x+1, got %+v", line)
	}
}

func TestFitLinear_Degenerate(t *testing.T) {
	line, err := FitLinear([]float64{10}, []float64{42})
	if err != nil {
		t.Fatalf("single point: unexpected error: %v", err)
	}
	if line.Slope != 0 || line.At(1000) != 42 {
		t.Errorf("single point: expected flat line at 42, got %+v", line)
	}

	if _, err := FitLinear(nil, nil); err == nil {
		t.Error("expected error for empty input")
	}
	if _, err := FitLinear([]float64{1, 2}, []float64{1}); err == nil {
		t.Error("expected error for length mismatch")
	}
	if _, err := FitLinear([]float64{1, 2}, []float64{1, math.NaN()}); err == nil {
		t.Error("expected error for NaN")
	}
}

func TestPredictTrend_Horizon30(t *testing.T) {
	h := series(day0, 10, 11, 12, 13, 14)
	pred, err := PredictTrend(h, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pred.Points) != 30 {
		t.Fatalf("expected 30 points, got %d", len(pred.Points))
	}
	last := h.Last().Date
	for i, p := range pred.Points {
		if DayOrdinal(p.Date) != DayOrdinal(last)+int64(i+1) {
			t.Errorf("point %d: expected day %d after last, got %s", i, i+1, p.Date.Format("2006-01-02"))
		}
		want := 15 + float64(i)
		if math.Abs(p.Close-want) > 1e-6 {
			t.Errorf("point %d: expected %.2f, got %.4f", i, want, p.Close)
		}
	}
}

func TestPredictTrend_SinglePointIsFlat(t *testing.T) {
	pred, err := PredictTrend(series(day0, 99), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range pred.Points {
		if p.Close != 99 {
			t.Errorf("expected 99, got %.4f", p.Close)
		}
	}
}

func TestPredictTrend_Failures(t *testing.T) {
	tests := []struct {
		name    string
		h       *model.HistorySeries
		horizon int
		want    error
	}{
		{"empty history", series(day0), 30, model.ErrInsufficientHistory},
		{"nil history", nil, 30, model.ErrInsufficientHistory},
		{"zero horizon", series(day0, 1, 2), 0, model.ErrInvalidHorizon},
		{"huge horizon", series(day0, 1, 2), MaxHorizonDays + 1, model.ErrInvalidHorizon},
	}
	for _, tt := range tests {
		pred, err := PredictTrend(tt.h, tt.horizon)
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
		if len(pred.Points) != 0 {
			t.Errorf("%s: expected empty prediction, got %d points", tt.name, len(pred.Points))
		}
	}
}

func TestProperty_PredictionDatesStrictlyDaily(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("dates step by one calendar day from the last history date", prop.ForAll(
		func(horizon int, n int, offset int) bool {
			closes := make([]float64, n)
			for i := range closes {
				closes[i] = 100 + float64(i%7)
			}
			h := series(day0.AddDate(0, 0, offset), closes...)
			pred, err := PredictTrend(h, horizon)
			if err != nil || len(pred.Points) != horizon {
				return false
			}
			prev := DayOrdinal(h.Last().Date)
			for _, p := range pred.Points {
				cur := DayOrdinal(p.Date)
				if cur != prev+1 {
					return false
				}
				prev = cur
			}
			return true
		},
		gen.IntRange(1, 400),
		gen.IntRange(1, 60),
		gen.IntRange(0, 2000),
	))

	properties.TestingRun(t)
}

func TestRange(t *testing.T) {
	high, low, err := Range([]float64{3, 9, -1, 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if high != 9 || low != -1 {
		t.Errorf("expected 9/-1, got %.1f/%.1f", high, low)
	}
	if _, _, err := Range(nil); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestPosition(t *testing.T) {
	tests := []struct {
		v, high, low, want float64
	}{
		{5, 10, 0, 0.5},
		{12, 10, 0, 1},
		{-3, 10, 0, 0},
		{7, 7, 7, 0.5},
	}
	for _, tt := range tests {
		got, err := Position(tt.v, tt.high, tt.low)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != tt.want {
			t.Errorf("Position(%.1f, %.1f, %.1f): expected %.2f, got %.2f", tt.v, tt.high, tt.low, tt.want, got)
		}
	}
	if _, err := Position(1, 0, 5); err == nil {
		t.Error("expected error when high < low")
	}
}
