package render

import (
	"strings"
	"testing"

	"MarketAsk/internal/model"
)

func ptr[T any](v T) *T { return &v }

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		usd, rate float64
		want      string
	}{
		{100, 82, "$100.00 (₹8200.00)"},
		{189.954, 82, "$189.95 (₹15576.23)"},
		{0.5, 82.5, "$0.50 (₹41.25)"},
		{0, 82, "$0.00 (₹0.00)"},
	}
	for _, tt := range tests {
		if got := FormatCurrency(tt.usd, tt.rate); got != tt.want {
			t.Errorf("FormatCurrency(%v, %v) = %q, want %q", tt.usd, tt.rate, got, tt.want)
		}
	}
}

func TestFormatUSD_Negative(t *testing.T) {
	if got := FormatUSD(-1.234); got != "$-1.23" {
		t.Errorf("expected $-1.23, got %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(5); got != "5.00%" {
		t.Errorf("expected 5.00%%, got %q", got)
	}
	if got := FormatPercent(-0.456); got != "-0.46%" {
		t.Errorf("expected -0.46%%, got %q", got)
	}
}

func TestFormatMarketCap(t *testing.T) {
	if got := FormatMarketCap(ptr(2.95e12)); got != "$2950.00B" {
		t.Errorf("expected $2950.00B, got %q", got)
	}
	if got := FormatMarketCap(ptr(1234567890.0)); got != "$1.23B" {
		t.Errorf("expected $1.23B, got %q", got)
	}
	if got := FormatMarketCap(nil); got != "N/A" {
		t.Errorf("expected N/A, got %q", got)
	}
	if got := FormatMarketCap(ptr(0.0)); got != "N/A" {
		t.Errorf("expected N/A for zero, got %q", got)
	}
}

func TestFormatDividendYield(t *testing.T) {
	if got := FormatDividendYield(ptr(0.0055)); got != "0.55%" {
		t.Errorf("expected 0.55%%, got %q", got)
	}
	if got := FormatDividendYield(nil); got != "N/A" {
		t.Errorf("expected N/A, got %q", got)
	}
}

func TestFormatCompanyInfo(t *testing.T) {
	p := &model.CompanyProfile{
		Name:          ptr("Apple Inc."),
		Sector:        ptr("Technology"),
		MarketCap:     ptr(2.95e12),
		DividendYield: ptr(0.0055),
	}
	want := "**Company Name:** Apple Inc.\n\n" +
		"**Sector:** Technology\n\n" +
		"**Market Cap:** $2950.00B\n\n" +
		"**Dividend Yield:** 0.55%\n\n" +
		"**Business Summary:**\nNo company bio available.\n"
	if got := FormatCompanyInfo(p); got != want {
		t.Errorf("unexpected company info:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatCompanyInfo_AllAbsent(t *testing.T) {
	got := FormatCompanyInfo(&model.CompanyProfile{})
	if strings.Count(got, "N/A") != 4 {
		t.Errorf("expected 4 N/A fields, got:\n%s", got)
	}
	if got != FormatCompanyInfo(nil) {
		t.Error("nil profile should render like an empty one")
	}
}

func TestTitleCase(t *testing.T) {
	tests := map[string]string{
		"p/e ratio":   "P/E Ratio",
		"real estate": "Real Estate",
		"etf":         "Etf",
		"beginners":   "Beginners",
		"ALL CAPS":    "All Caps",
		"":            "",
	}
	for in, want := range tests {
		if got := TitleCase(in); got != want {
			t.Errorf("TitleCase(%q) = %q, want %q", in, got, want)
		}
	}
}
