package render

import (
	"fmt"
	"math"
	"strings"

	"MarketAsk/internal/calculator"
	"MarketAsk/internal/model"
)

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// SparklineWidth is the number of cells per series.
const SparklineWidth = 24

// Sparkline summarises a chart for text-only surfaces: one line per series with
// a block sparkline, the first and last value and the date range.
func Sparkline(c *model.ChartSpec) string {
	if c == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", c.Title)
	for _, s := range c.Series {
		if len(s.Points) == 0 {
			continue
		}
		values := make([]float64, len(s.Points))
		for i, p := range s.Points {
			values[i] = p.Y
		}
		first, last := s.Points[0], s.Points[len(s.Points)-1]
		fmt.Fprintf(&b, "%s %s %.2f → %.2f (%s to %s)\n",
			s.Name, spark(values, SparklineWidth),
			first.Y, last.Y,
			first.X.Format("2006-01-02"), last.X.Format("2006-01-02"))
	}
	return b.String()
}

// spark downsamples values to at most width cells by bucket mean and maps each
// cell onto the block ramp.
func spark(values []float64, width int) string {
	cells := downsample(values, width)
	high, low, err := calculator.Range(cells)
	if err != nil {
		return ""
	}
	out := make([]rune, len(cells))
	for i, v := range cells {
		pos, err := calculator.Position(v, high, low)
		if err != nil {
			pos = 0.5
		}
		idx := int(math.Round(pos * float64(len(sparkBlocks)-1)))
		out[i] = sparkBlocks[idx]
	}
	return string(out)
}

func downsample(values []float64, width int) []float64 {
	if len(values) <= width {
		return values
	}
	out := make([]float64, width)
	for i := 0; i < width; i++ {
		start := i * len(values) / width
		end := (i + 1) * len(values) / width
		sum := 0.0
		for _, v := range values[start:end] {
			sum += v
		}
		out[i] = sum / float64(end-start)
	}
	return out
}
