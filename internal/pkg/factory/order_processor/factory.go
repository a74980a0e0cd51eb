package order_processor

import (
	"fmt"

	"orderprocessing/internal/apperrors"
	"orderprocessing/internal/entities"
	"orderprocessing/internal/service/order"
	"orderprocessing/internal/service/processor"
)

// ProcessorFactory сопоставляет тип заказа с процессором. Процессоры без состояния,
// поэтому создаются один раз и переиспользуются.
type ProcessorFactory struct {
	export   *processor.Export
	remote   *processor.Remote
	inMemory *processor.InMemory
}

func New(fileSystem processor.FileSystem, outputDir string, gateway processor.ComputationGateway) *ProcessorFactory {
	return &ProcessorFactory{
		export:   processor.NewExport(fileSystem, outputDir),
		remote:   processor.NewRemote(gateway),
		inMemory: processor.NewInMemory(),
	}
}

func (f *ProcessorFactory) CreateProcessor(orderType string) (order.Processor, error) {
	switch orderType {
	case entities.OrderTypeExport:
		return f.export, nil
	case entities.OrderTypeRemote:
		return f.remote, nil
	case entities.OrderTypeInMemory:
		return f.inMemory, nil
	default:
		return nil, apperrors.NewValidationError(fmt.Sprintf("Unknown order type: %s", orderType))
	}
}
