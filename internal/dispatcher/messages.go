package dispatcher

const (
	failPrefix = "❌"

	fallbackText     = "❌ Sorry, I couldn't understand your request. Try asking about stock prices, charts, comparison, or type 'manual' for help."
	termNotFoundText = "❌ Sorry, financial term not found. Try another term."
	priceFailedFmt   = "❌ Could not retrieve price data for %s."
	changeFailedFmt  = "❌ Not enough price history for %s to compute a daily change."
	chartFailedFmt   = "❌ Could not retrieve chart data for %s."
	compareFailedFmt = "❌ Could not compare stocks %s."
	predictFailedFmt = "❌ Prediction failed for %s."
	predictNoDataFmt = "❌ Could not retrieve data for %s."

	chartReadyFmt   = "Here's the %s chart for %s:"
	compareReadyFmt = "Here's a comparison of %s:"
	predictReadyFmt = "Here's the %d-day price prediction for %s:"

	priceUnavailable = "Price unavailable"
	trendUp          = "📈"
	trendDown        = "📉"
)
