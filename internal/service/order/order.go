package order

import (
	"context"
	"fmt"
	"time"

	"orderprocessing/internal/apperrors"
	"orderprocessing/internal/entities"
	"orderprocessing/pkg/logger"
)

type Service struct {
	log        logger.Logger
	repository Repository
	factory    ProcessorFactory
}

func New(log logger.Logger, repository Repository, factory ProcessorFactory) *Service {
	return &Service{
		log:        log,
		repository: repository,
		factory:    factory,
	}
}

// ProcessUserOrders - точка входа для REST и kafka: проверяет идентификатор и запускает пакет.
// Если контекст запроса уже истек, пакет не запускается.
func (s *Service) ProcessUserOrders(ctx context.Context, userID int64) ([]*entities.Order, error) {
	if userID <= 0 {
		return nil, ErrInvalidUserID
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("process user %d orders: %w", userID, err)
	}
	return s.ProcessOrders(ctx, userID), nil
}

// ProcessOrders обрабатывает заказы пользователя по одному, в порядке выборки.
// Ошибка одного заказа не прерывает пакет. Если заказы не удалось получить, возвращается пустой список.
func (s *Service) ProcessOrders(ctx context.Context, userID int64) []*entities.Order {
	orders, ok := s.fetchOrders(ctx, userID)
	if !ok {
		return []*entities.Order{}
	}

	for _, order := range orders {
		s.processOrder(ctx, order)
	}

	return orders
}

func (s *Service) fetchOrders(ctx context.Context, userID int64) ([]*entities.Order, bool) {
	orders, err := s.repository.GetOrdersByUser(ctx, userID)
	if err != nil {
		BatchFetchFailuresTotal.Inc()
		s.log.Error("fetch orders for user",
			logger.NewField("user_id", userID),
			logger.NewField("error", err),
		)
		return nil, false
	}
	return orders, true
}

// ProcessPendingOrders обходит пользователей с заказами в ожидании и обрабатывает только заказы в статусе pending.
// Уже выгруженные и завершенные заказы не трогаются.
func (s *Service) ProcessPendingOrders(ctx context.Context) (int, error) {
	userIDs, err := s.repository.GetUserIDsWithPendingOrders(ctx)
	if err != nil {
		return 0, fmt.Errorf("get users with pending orders: %w", err)
	}

	processed := 0
	for _, userID := range userIDs {
		if err := ctx.Err(); err != nil {
			return processed, err
		}
		s.processPending(ctx, userID)
		processed++
	}
	return processed, nil
}

func (s *Service) processPending(ctx context.Context, userID int64) {
	orders, ok := s.fetchOrders(ctx, userID)
	if !ok {
		return
	}

	for _, order := range orders {
		if order.Status != entities.OrderPending {
			continue
		}
		s.processOrder(ctx, order)
	}
}

func (s *Service) processOrder(ctx context.Context, order *entities.Order) {
	start := time.Now()
	log := s.log.With(
		logger.NewField("order", order.ID.String()),
		logger.NewField("type", order.Type),
	)
	defer func() {
		label := typeLabel(order.Type)
		OrderProcessingDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())
		OrdersProcessedTotal.WithLabelValues(label, order.Status.String()).Inc()
	}()

	processor, err := s.factory.CreateProcessor(order.Type)
	if err != nil {
		if !classifyFactoryError(order, err) {
			log.Error("create processor", logger.NewField("status", order.Status.String()), logger.NewField("error", err))
			return
		}
		log.Warn("create processor", logger.NewField("status", order.Status.String()), logger.NewField("error", err))
		s.persist(ctx, log, order)
		return
	}

	if err := processor.Process(ctx, order); err != nil {
		order.Status = classifyProcessError(order.Status, err)
		log.Warn("process order", logger.NewField("status", order.Status.String()), logger.NewField("error", err))
	}

	s.persist(ctx, log, order)
}

// classifyFactoryError проставляет статус по ошибке фабрики и сообщает, нужно ли сохранять заказ.
// Порядок проверки: сначала валидация, затем ошибки хранилища.
func classifyFactoryError(order *entities.Order, err error) bool {
	switch {
	case apperrors.IsValidation(err):
		order.Status = entities.OrderUnknownType
		order.Priority = entities.PriorityLow
		return true
	case apperrors.IsPersistence(err):
		order.Status = entities.OrderDBError
		return false
	default:
		return true
	}
}

func classifyProcessError(current entities.OrderStatusType, err error) entities.OrderStatusType {
	switch {
	case apperrors.IsRemote(err):
		return entities.OrderAPIError
	case apperrors.IsFileOperation(err):
		return entities.OrderExportFailed
	case apperrors.IsValidation(err):
		return entities.OrderUnknownType
	default:
		return current
	}
}

func (s *Service) persist(ctx context.Context, log logger.Logger, order *entities.Order) {
	err := s.repository.UpdateStatus(ctx, entities.OrderStatusUpdate{
		ID:       order.ID,
		Status:   order.Status,
		Priority: order.Priority,
	})
	if err == nil {
		return
	}

	OrderPersistFailuresTotal.Inc()
	if apperrors.IsPersistence(err) {
		log.Error("persist order status", logger.NewField("status", order.Status.String()), logger.NewField("error", err))
		return
	}
	log.Warn("persist order status: unexpected error", logger.NewField("status", order.Status.String()), logger.NewField("error", err))
}
