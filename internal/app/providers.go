package app

import (
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
	"orderprocessing/internal/gateway/grpc/computation"
	"orderprocessing/internal/handlers/tasks/pending_orders"
	"orderprocessing/internal/pkg/config"
	"orderprocessing/internal/pkg/factory/order_processor"
	"orderprocessing/internal/pkg/filesystem"
	orderRepo "orderprocessing/internal/repository/order"
	orderService "orderprocessing/internal/service/order"
	"orderprocessing/internal/service/processor"
	"orderprocessing/pkg/background"
	"orderprocessing/pkg/logger"
	"orderprocessing/pkg/querier"
	"orderprocessing/pkg/tx"
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(q orderRepo.Querier, txManager orderRepo.TxManager) *orderRepo.Repository {
	return orderRepo.New(q, txManager)
}

// exportFileSystem отдает процессору выгрузки файлы локального диска через его интерфейс.
type exportFileSystem struct {
	*filesystem.Local
}

func (f exportFileSystem) Create(path string) (processor.CSVFile, error) {
	file, err := f.Local.Create(path)
	if err != nil {
		return nil, err
	}
	return file, nil
}

func provideFileSystem() processor.FileSystem {
	return exportFileSystem{Local: filesystem.New()}
}

func provideComputationGateway(conn *grpc.ClientConn, cfg *config.Config) *computation.ComputationGateway {
	return computation.New(conn, cfg.ComputationService.RequestTimeout)
}

func provideProcessorFactory(
	fileSystem processor.FileSystem,
	gateway processor.ComputationGateway,
	cfg *config.Config,
) *order_processor.ProcessorFactory {
	return order_processor.New(fileSystem, cfg.Export.OutputDir, gateway)
}

func provideOrderService(
	log logger.Logger,
	repository orderService.Repository,
	factory orderService.ProcessorFactory,
) *orderService.Service {
	return orderService.New(log, repository, factory)
}

func providePendingOrdersTask(
	log logger.Logger,
	service pending_orders.Service,
	cfg *config.Config,
) *pending_orders.PendingOrders {
	return pending_orders.NewPendingOrders(log, service, cfg.Tasks.PendingOrdersInterval)
}

func provideTaskList(pendingOrdersTask *pending_orders.PendingOrders) []background.Task {
	return []background.Task{
		pendingOrdersTask,
	}
}

func provideBackgroundWorkers(log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(log, tasks)
}
