package dto

import "time"

type PingResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// ProcessOrdersRequest - параметры запуска пакета. Для REST user_id берется из пути,
// для kafka - из тела сообщения orders.process.requested.
type ProcessOrdersRequest struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}

type ProcessOrdersResponse struct {
	UserID int64            `json:"user_id"`
	Total  int              `json:"total"`
	Counts map[string]int   `json:"counts"`
	Orders []*OrderResponse `json:"orders"`
}

type OrderResponse struct {
	ID          *string      `json:"id"`
	Type        string       `json:"type"`
	Amount      *float64     `json:"amount"`
	Flag        any          `json:"flag"`
	Status      string       `json:"status"`
	Priority    string       `json:"priority"`
	APIResponse *APIResponse `json:"api_response,omitempty"`
	Notes       string       `json:"notes,omitempty"`
	ProcessedAt *time.Time   `json:"processed_at,omitempty"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`
	ExportedAt  *time.Time   `json:"exported_at,omitempty"`
}

type APIResponse struct {
	Value float64 `json:"value"`
}
