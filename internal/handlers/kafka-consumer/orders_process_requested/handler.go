package orders_process_requested

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"orderprocessing/internal/handlers/dto"
	"orderprocessing/internal/pkg/validation"
	orderservice "orderprocessing/internal/service/order"
	"orderprocessing/pkg/logger"
)

type Handler struct {
	orderService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, orderService Service, timeout time.Duration) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "orders.process.requested"),
	)

	return &Handler{
		orderService:             orderService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("orders.process.requested: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			if shouldExit := h.messageProcessing(sess, message); shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("orders.process.requested: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing запускает пакет заказов для пользователя из сообщения.
// Возвращает true, если ConsumeClaim нужно прервать: сообщение не помечено и будет прочитано снова.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	msgLog := h.log.With(
		logger.NewField("partition", message.Partition),
		logger.NewField("offset", message.Offset),
	)

	var request dto.ProcessOrdersRequest
	if err := json.Unmarshal(message.Value, &request); err != nil {
		msgLog.With(
			logger.NewField("error", err),
		).Error("orders.process.requested handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	if err := validation.Struct(request); err != nil {
		msgLog.With(
			logger.NewField("fields", validation.FieldMessages(err)),
		).Error("orders.process.requested handler received invalid message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog = msgLog.With(logger.NewField("user_id", request.UserID))
	msgLog.Info("orders.process.requested processing")

	orders, err := h.orderService.ProcessUserOrders(ctx, request.UserID)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("orders.process.requested handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, orderservice.ErrInvalidUserID):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("orders.process.requested handler rejected user id")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("orders.process.requested handler failed to process orders")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("orders", len(orders)),
		logger.NewField("counts", dto.FromOrders(request.UserID, orders).Counts),
	).Info("orders.process.requested: processed")

	sess.MarkMessage(message, "")
	return false
}
