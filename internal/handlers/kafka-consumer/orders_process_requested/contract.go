//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_process_requested_test
package orders_process_requested

import (
	"context"

	"orderprocessing/internal/entities"
	"orderprocessing/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ProcessUserOrders(ctx context.Context, userID int64) ([]*entities.Order, error)
}
