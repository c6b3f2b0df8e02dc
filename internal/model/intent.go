package model

// Intent is the classified purpose of a message.
type Intent string

const (
	IntentStockPrice        Intent = "stock_price"
	IntentChart             Intent = "chart"
	IntentCompare           Intent = "compare"
	IntentFinancialTerms    Intent = "financial_terms"
	IntentPrediction        Intent = "prediction"
	IntentTopCompanies      Intent = "top_companies"
	IntentLearningResources Intent = "learning_resources"
	IntentInvestmentRoadmap Intent = "investment_roadmap"
	IntentUnknown           Intent = "unknown"

	// IntentManual is not classified by keyword tables; it is the help short-circuit.
	IntentManual Intent = "manual"
)
