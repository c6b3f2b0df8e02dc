// Package render turns answers into text: markdown for the core, Telegram HTML,
// terminal output, and chart specifications.
package render

import (
	"fmt"
	"strings"
	"unicode"

	"MarketAsk/internal/model"

	"github.com/shopspring/decimal"
)

const notAvailable = "N/A"

// FormatUSD renders an amount as "$X.XX".
func FormatUSD(usd float64) string {
	return "$" + decimal.NewFromFloat(usd).StringFixed(2)
}

// FormatINR converts and renders an amount as "₹Y.YY".
func FormatINR(usd, rate float64) string {
	inr := decimal.NewFromFloat(usd).Mul(decimal.NewFromFloat(rate))
	return "₹" + inr.StringFixed(2)
}

// FormatCurrency renders "$X.XX (₹Y.YY)".
func FormatCurrency(usd, rate float64) string {
	return fmt.Sprintf("%s (%s)", FormatUSD(usd), FormatINR(usd, rate))
}

// FormatPercent renders a percentage with two decimals, e.g. "1.25%".
func FormatPercent(p float64) string {
	return decimal.NewFromFloat(p).StringFixed(2) + "%"
}

// FormatMarketCap renders billions, e.g. "$2950.00B". Absent or zero is N/A.
func FormatMarketCap(marketCap *float64) string {
	if marketCap == nil || *marketCap == 0 {
		return notAvailable
	}
	billions := decimal.NewFromFloat(*marketCap).Div(decimal.New(1, 9))
	return "$" + billions.StringFixed(2) + "B"
}

// FormatDividendYield renders a fractional yield as a percentage. Absent or zero is N/A.
func FormatDividendYield(yield *float64) string {
	if yield == nil || *yield == 0 {
		return notAvailable
	}
	return decimal.NewFromFloat(*yield).Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

// FormatCompanyInfo renders the labelled company block of a price answer.
func FormatCompanyInfo(p *model.CompanyProfile) string {
	if p == nil {
		p = &model.CompanyProfile{}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "**Company Name:** %s\n\n", orNA(p.Name))
	fmt.Fprintf(&b, "**Sector:** %s\n\n", orNA(p.Sector))
	fmt.Fprintf(&b, "**Market Cap:** %s\n\n", FormatMarketCap(p.MarketCap))
	fmt.Fprintf(&b, "**Dividend Yield:** %s\n\n", FormatDividendYield(p.DividendYield))
	summary := "No company bio available."
	if p.BusinessSummary != nil && *p.BusinessSummary != "" {
		summary = *p.BusinessSummary
	}
	fmt.Fprintf(&b, "**Business Summary:**\n%s\n", summary)
	return b.String()
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return notAvailable
	}
	return *s
}

// TitleCase upper-cases every letter that follows a non-letter and lower-cases
// the rest: "p/e ratio" becomes "P/E Ratio".
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}
