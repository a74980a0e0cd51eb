package entities

import "time"

type Order struct {
	ID          OrderID
	UserID      int64
	Type        string
	Amount      *float64
	Flag        Flag
	Status      OrderStatusType
	Priority    OrderPriorityType
	APIResponse *APIResponseValue
	Notes       string
	ProcessedAt *time.Time
	CompletedAt *time.Time
	ExportedAt  *time.Time
}

// NewOrder создает заказ в исходном состоянии: pending / low.
func NewOrder(id OrderID, orderType string, amount *float64, flag Flag) *Order {
	return &Order{
		ID:       id,
		Type:     orderType,
		Amount:   amount,
		Flag:     flag,
		Status:   OrderPending,
		Priority: PriorityLow,
	}
}

type OrderStatusType string

const (
	OrderPending      OrderStatusType = "pending"
	OrderProcessed    OrderStatusType = "processed"
	OrderError        OrderStatusType = "error"
	OrderExported     OrderStatusType = "exported"
	OrderExportFailed OrderStatusType = "export_failed"
	OrderCompleted    OrderStatusType = "completed"
	OrderInProgress   OrderStatusType = "in_progress"
	OrderAPIError     OrderStatusType = "api_error"
	OrderAPIFailure   OrderStatusType = "api_failure"
	OrderUnknownType  OrderStatusType = "unknown_type"
	OrderDBError      OrderStatusType = "db_error"
)

func (s OrderStatusType) String() string {
	return string(s)
}

type OrderPriorityType string

const (
	PriorityLow  OrderPriorityType = "low"
	PriorityHigh OrderPriorityType = "high"
)

// HighPriorityThreshold - сумма, строго выше которой заказ получает высокий приоритет.
const HighPriorityThreshold = 200.0

func (p OrderPriorityType) String() string {
	return string(p)
}

// PriorityForAmount вычисляет приоритет по сумме заказа. Пустая сумма дает low.
func PriorityForAmount(amount *float64) OrderPriorityType {
	if amount != nil && *amount > HighPriorityThreshold {
		return PriorityHigh
	}
	return PriorityLow
}

// Order type tags understood by the processor factory.
const (
	OrderTypeExport   = "A"
	OrderTypeRemote   = "B"
	OrderTypeInMemory = "C"
)

type OrderStatusUpdate struct {
	ID       OrderID
	Status   OrderStatusType
	Priority OrderPriorityType
}
