package orders_process_post

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"orderprocessing/internal/handlers/dto"
	"orderprocessing/internal/pkg/validation"
	orderservice "orderprocessing/internal/service/order"
	"orderprocessing/pkg/logger"
)

const (
	validationErrorType = "validation_failed"
	serviceErrorType    = "service_error"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "orders_process_post"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP обрабатывает POST /users/{id}/orders/process: прогоняет пакет заказов
// пользователя и возвращает итоговые статусы.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rawID := mux.Vars(r)["id"]
	userID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			Error:   validationErrorType,
			Message: "user id must be an integer",
			Fields:  map[string]string{"user_id": "Invalid value"},
		})
		return
	}

	request := dto.ProcessOrdersRequest{UserID: userID}
	if err := validation.Struct(request); err != nil {
		h.writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			Error:   validationErrorType,
			Message: "Request validation failed",
			Fields:  validation.FieldMessages(err),
		})
		return
	}

	orders, err := h.service.ProcessUserOrders(r.Context(), request.UserID)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, orderservice.ErrInvalidUserID):
			status = http.StatusBadRequest
		case errors.Is(err, context.DeadlineExceeded):
			status = http.StatusGatewayTimeout
		}

		h.log.With(
			logger.NewField("user_id", request.UserID),
			logger.NewField("error", err),
		).Error("process user orders")

		h.writeJSON(w, status, dto.ErrorResponse{
			Error:   serviceErrorType,
			Message: err.Error(),
		})
		return
	}

	h.writeJSON(w, http.StatusOK, dto.FromOrders(request.UserID, orders))
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
