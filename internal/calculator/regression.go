package calculator

import (
	"errors"
	"math"
)

// Line is a fitted y = Slope*x + Intercept.
type Line struct {
	Slope     float64
	Intercept float64
}

// At evaluates the line at x.
func (l Line) At(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// FitLinear fits an ordinary least-squares line through (xs[i], ys[i]).
// When every x is identical (one point included) the slope is zero and the line
// passes through the mean of ys.
func FitLinear(xs, ys []float64) (Line, error) {
	if len(xs) == 0 {
		return Line{}, errors.New("no data to fit")
	}
	if len(xs) != len(ys) {
		return Line{}, errors.New("x and y lengths differ")
	}
	n := float64(len(xs))
	var sumX, sumY float64
	for i := range xs {
		if !finite(xs[i]) || !finite(ys[i]) {
			return Line{}, errors.New("non-finite value in input")
		}
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var sxx, sxy float64
	for i := range xs {
		dx := xs[i] - meanX
		sxx += dx * dx
		sxy += dx * (ys[i] - meanY)
	}
	if sxx == 0 {
		return Line{Slope: 0, Intercept: meanY}, nil
	}
	slope := sxy / sxx
	line := Line{Slope: slope, Intercept: meanY - slope*meanX}
	if !finite(line.Slope) || !finite(line.Intercept) {
		return Line{}, errors.New("fit produced a non-finite coefficient")
	}
	return line, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
