//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=processor_test
package processor

import (
	"context"

	"orderprocessing/internal/entities"
)

// FileSystem - файловый приемник для выгрузки заказов типа A.
type FileSystem interface {
	IsDir(path string) bool
	Mkdir(path string) error
	IsWritable(path string) bool
	Create(path string) (CSVFile, error)
}

// CSVFile - открытый на запись файл. Закрывается вызывающей стороной.
type CSVFile interface {
	WriteRow(fields []string) error
	Flush() error
	Close() error
}

type ComputationGateway interface {
	Invoke(ctx context.Context, orderID entities.OrderID) (*entities.APIResponse, error)
}
