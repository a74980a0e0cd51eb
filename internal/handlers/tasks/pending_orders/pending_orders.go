//go:generate mockgen -source=pending_orders.go -destination=./pending_orders_mocks_test.go -package=pending_orders_test
package pending_orders

import (
	"context"
	"time"

	"orderprocessing/pkg/logger"
)

type Service interface {
	ProcessPendingOrders(ctx context.Context) (int, error)
}

// PendingOrders периодически обрабатывает заказы в статусе pending.
type PendingOrders struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewPendingOrders(log logger.Logger, service Service, interval time.Duration) *PendingOrders {
	return &PendingOrders{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (p *PendingOrders) TTL() time.Duration {
	return p.interval
}

// Do ограничивает проход одним интервалом, чтобы запуски не накладывались друг на друга.
func (p *PendingOrders) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	users, err := p.service.ProcessPendingOrders(ctxWithTimeout)

	if users > 0 {
		p.log.With(
			logger.NewField("users", users),
		).Info("pending orders processed")
	}

	return err
}

func (p *PendingOrders) Info() string {
	return "pending orders"
}
