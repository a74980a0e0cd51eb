package processor

import (
	"context"
	"time"

	"orderprocessing/internal/apperrors"
	"orderprocessing/internal/entities"
)

// InMemory обрабатывает заказ без внешних вызовов.
type InMemory struct{}

func NewInMemory() *InMemory {
	return &InMemory{}
}

func (p *InMemory) Process(_ context.Context, order *entities.Order) error {
	if err := validateInMemory(order); err != nil {
		return err
	}
	order.Priority = entities.PriorityForAmount(order.Amount)

	now := time.Now()
	if order.Flag.IsTrue() {
		order.Status = entities.OrderCompleted
		order.CompletedAt = &now
		return nil
	}

	order.Status = entities.OrderInProgress
	order.ProcessedAt = &now
	return nil
}

func validateInMemory(order *entities.Order) error {
	if order.ID.IsAbsent() || order.Amount == nil {
		return apperrors.NewValidationError(msgInvalidOrderData)
	}
	if !order.Flag.IsNull() && !order.Flag.IsBool() {
		return apperrors.NewValidationError(msgFlagMustBeBoolean)
	}
	return nil
}
