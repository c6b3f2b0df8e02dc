package server

import "MarketAsk/internal/model"

// APIResponse represents the standard API envelope.
type APIResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ValidationError represents one rejected request field.
type ValidationError struct {
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message,omitempty"`
}

// AskRequest is the body of POST /api/ask.
type AskRequest struct {
	Query  string `json:"query" validate:"required,max=500"`
	Format string `json:"format" default:"markdown" validate:"oneof=markdown html"`
}

// AskResponse carries one answer.
type AskResponse struct {
	RequestID string           `json:"request_id"`
	Intent    model.Intent     `json:"intent"`
	Text      string           `json:"text"`
	Chart     *model.ChartSpec `json:"chart,omitempty"`
}

// ManualResponse carries the feature manual.
type ManualResponse struct {
	Text     string   `json:"text"`
	Examples []string `json:"examples"`
}
