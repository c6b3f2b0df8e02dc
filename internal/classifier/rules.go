package classifier

import (
	"strings"

	"MarketAsk/internal/model"
)

// Rule binds an intent to its trigger keywords.
type Rule struct {
	Intent   model.Intent
	Keywords []string
}

// Rules is evaluated top to bottom. The first intent with a keyword contained in the
// message wins, so a message with keywords of two intents resolves to the earlier one
// ("compare price of AAPL" is a stock_price query).
var Rules = []Rule{
	{model.IntentStockPrice, []string{"price", "stock price", "share price", "current price", "latest price", "quote", "cost"}},
	{model.IntentChart, []string{"chart", "graph", "history", "historical", "plot", "trend"}},
	{model.IntentCompare, []string{"compare", "vs", "versus", "comparison", "relative performance"}},
	{model.IntentFinancialTerms, []string{"explain", "definition", "meaning", "what is", "define", "term", "financial term"}},
	{model.IntentPrediction, []string{"predict", "forecast", "estimate", "future price", "price prediction", "price forecast"}},
	{model.IntentTopCompanies, []string{"top companies", "recommend", "best companies", "leading companies", "top stocks", "sector leaders"}},
	{model.IntentLearningResources, []string{"learning", "resources", "tutorial", "course", "guide", "education", "study"}},
	{model.IntentInvestmentRoadmap, []string{"roadmap", "how to start", "begin investing", "investment steps", "investment guide", "start investing"}},
}

const manualKeyword = "manual"

// Classify maps lower-cased text to an intent using plain substring matching.
func Classify(lower string) model.Intent {
	for _, r := range Rules {
		for _, kw := range r.Keywords {
			if strings.Contains(lower, kw) {
				return r.Intent
			}
		}
	}
	return model.IntentUnknown
}

// IsManual reports whether the message asks for the feature manual.
// It takes precedence over every intent.
func IsManual(text string) bool {
	return strings.Contains(strings.ToLower(text), manualKeyword)
}

// Keywords returns the trigger keywords of an intent, nil for unknown intents.
func Keywords(intent model.Intent) []string {
	for _, r := range Rules {
		if r.Intent == intent {
			return append([]string(nil), r.Keywords...)
		}
	}
	return nil
}
