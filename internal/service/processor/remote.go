package processor

import (
	"context"
	"time"

	"orderprocessing/internal/apperrors"
	"orderprocessing/internal/entities"
)

const (
	remoteDataThreshold   = 50.0
	remoteAmountThreshold = 100.0
)

// Remote классифицирует заказ по ответу сервиса вычислений.
type Remote struct {
	gateway ComputationGateway
}

func NewRemote(gateway ComputationGateway) *Remote {
	return &Remote{
		gateway: gateway,
	}
}

func (p *Remote) Process(ctx context.Context, order *entities.Order) error {
	if err := validateRemote(order); err != nil {
		return err
	}
	order.Priority = entities.PriorityForAmount(order.Amount)

	response, err := p.gateway.Invoke(ctx, order.ID)
	if err != nil {
		if apperrors.IsRemote(err) {
			order.Status = entities.OrderAPIFailure
		}
		return err
	}

	data, ok := response.NumericData()
	if !ok {
		order.Status = entities.OrderAPIError
		return apperrors.NewValidationError(msgInvalidResponseData)
	}
	order.APIResponse = &entities.APIResponseValue{Value: data}

	if !response.IsSuccess() {
		order.Status = entities.OrderAPIError
		return nil
	}

	amount := *order.Amount
	switch {
	case order.Flag.IsTrue():
		order.Status = entities.OrderPending
	case data >= remoteDataThreshold && amount < remoteAmountThreshold:
		processedAt := time.Now()
		order.Status = entities.OrderProcessed
		order.Priority = entities.PriorityForAmount(order.Amount)
		order.ProcessedAt = &processedAt
	case data < remoteDataThreshold:
		order.Status = entities.OrderPending
	default:
		order.Status = entities.OrderError
	}

	return nil
}

func validateRemote(order *entities.Order) error {
	if order.ID.IsAbsent() || order.Amount == nil {
		return apperrors.NewValidationError(msgInvalidOrderData)
	}
	if id, ok := order.ID.Numeric(); !ok || id <= 0 {
		return apperrors.NewValidationError(msgOrderIDNotPositive)
	}
	return nil
}
