package dispatcher

import (
	"regexp"
	"strconv"
	"strings"

	"MarketAsk/internal/model"
)

// periodKeywords is checked in order; the first group with a hit decides.
var periodKeywords = []struct {
	period   model.Period
	keywords []string
}{
	{model.Period5Years, []string{"5y", "five year", "five years"}},
	{model.Period2Years, []string{"2y", "two year", "two years"}},
	{model.Period6Months, []string{"6m", "six month", "six months"}},
	{model.Period1Month, []string{"1m", "one month"}},
}

var horizonPattern = regexp.MustCompile(`(\d+)\s*days?`)

// ParsePeriod picks the chart period named in lower-cased text, defaulting to one year.
func ParsePeriod(lower string) model.Period {
	for _, pk := range periodKeywords {
		for _, kw := range pk.keywords {
			if strings.Contains(lower, kw) {
				return pk.period
			}
		}
	}
	return model.DefaultPeriod
}

// ParseHorizon returns the first "<n> day(s)" in lower-cased text, or def when
// there is none. Numbers too large for an int come back as -1 so that horizon
// validation rejects them.
func ParseHorizon(lower string, def int) int {
	m := horizonPattern.FindStringSubmatch(lower)
	if m == nil {
		return def
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return -1
	}
	return n
}
