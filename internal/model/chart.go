package model

import "time"

// ChartKind is the shape of a chart specification.
type ChartKind string

const (
	ChartLine       ChartKind = "line"
	ChartComparison ChartKind = "comparison"
	ChartPrediction ChartKind = "prediction"
)

// ChartPoint is one (x, y) sample of a series.
type ChartPoint struct {
	X time.Time `json:"x"`
	Y float64   `json:"y"`
}

// ChartSeries is a named line on a chart.
type ChartSeries struct {
	Name   string       `json:"name"`
	Points []ChartPoint `json:"points"`
}

// ChartSpec describes a chart for a rendering surface. It is built per request and not kept.
type ChartSpec struct {
	Kind        ChartKind     `json:"kind"`
	Title       string        `json:"title"`
	XLabel      string        `json:"x_label"`
	YLabel      string        `json:"y_label"`
	LegendTitle string        `json:"legend_title"`
	Series      []ChartSeries `json:"series"`
}

// Response is the answer to one message.
type Response struct {
	Intent Intent     `json:"intent"`
	Text   string     `json:"text"`
	Chart  *ChartSpec `json:"chart,omitempty"`
}
