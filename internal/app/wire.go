//go:build wireinject
// +build wireinject

package app

import (
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
	"orderprocessing/internal/gateway/grpc/computation"
	"orderprocessing/internal/handlers/tasks/pending_orders"
	"orderprocessing/internal/pkg/config"
	"orderprocessing/internal/pkg/factory/order_processor"
	orderRepo "orderprocessing/internal/repository/order"
	orderService "orderprocessing/internal/service/order"
	"orderprocessing/internal/service/processor"
	"orderprocessing/pkg/logger"
	"orderprocessing/pkg/querier"
	"orderprocessing/pkg/tx"
)

var orderServiceSet = wire.NewSet(
	provideTxManager,
	provideQuerier,
	provideOrderRepository,
	provideFileSystem,
	provideComputationGateway,
	provideProcessorFactory,
	provideOrderService,

	wire.Bind(new(orderRepo.Querier), new(*querier.Querier)),
	wire.Bind(new(orderRepo.TxManager), new(*tx.Manager)),
	wire.Bind(new(processor.ComputationGateway), new(*computation.ComputationGateway)),
	wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
	wire.Bind(new(orderService.ProcessorFactory), new(*order_processor.ProcessorFactory)),
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	conn *grpc.ClientConn,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		orderServiceSet,

		providePendingOrdersTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Bind(new(pending_orders.Service), new(*orderService.Service)),

		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-orders-process)
func InitializeKafkaWorkerApp(
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	conn *grpc.ClientConn,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		orderServiceSet,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
