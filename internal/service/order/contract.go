//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"orderprocessing/internal/entities"
)

type Repository interface {
	GetOrdersByUser(ctx context.Context, userID int64) ([]*entities.Order, error)
	UpdateStatus(ctx context.Context, update entities.OrderStatusUpdate) error
	GetUserIDsWithPendingOrders(ctx context.Context) ([]int64, error)
}

// Processor меняет заказ на месте и может вернуть типизированную ошибку из apperrors.
type Processor interface {
	Process(ctx context.Context, order *entities.Order) error
}

type ProcessorFactory interface {
	CreateProcessor(orderType string) (Processor, error)
}
