package app

import (
	orderService "orderprocessing/internal/service/order"
	"orderprocessing/pkg/background"
)

// Application - зависимости HTTP сервиса (cmd/service).
type Application struct {
	OrderService      *orderService.Service
	BackgroundWorkers *background.Worker
}

// KafkaWorkerApp - зависимости kafka воркера (cmd/worker-orders-process).
type KafkaWorkerApp struct {
	OrderService *orderService.Service
}
