package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"orderprocessing/internal/apperrors"
	"orderprocessing/internal/entities"
)

const (
	highValueNotesThreshold = 150.0
	highValueNotes          = "High value order"
)

var (
	csvHeaders = []string{"ID", "Type", "Amount", "Flag", "Status", "Priority", "Notes"}

	unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9-]`)
)

// Export выгружает заказ в CSV-файл в outputDir.
type Export struct {
	fileSystem FileSystem
	outputDir  string
}

func NewExport(fileSystem FileSystem, outputDir string) *Export {
	return &Export{
		fileSystem: fileSystem,
		outputDir:  outputDir,
	}
}

func (p *Export) Process(_ context.Context, order *entities.Order) error {
	if err := validateExport(order); err != nil {
		return err
	}
	order.Priority = entities.PriorityForAmount(order.Amount)

	if err := p.export(order); err != nil {
		order.Status = entities.OrderExportFailed
		return err
	}

	exportedAt := time.Now()
	order.Status = entities.OrderExported
	order.Priority = entities.PriorityForAmount(order.Amount)
	order.ExportedAt = &exportedAt
	return nil
}

func validateExport(order *entities.Order) error {
	if _, ok := order.ID.Numeric(); !ok || order.Amount == nil {
		return apperrors.NewValidationError(msgInvalidOrderData)
	}
	return nil
}

func (p *Export) export(order *entities.Order) error {
	if err := p.ensureDirectory(); err != nil {
		return err
	}
	return p.writeCSV(p.filename(order), order)
}

func (p *Export) ensureDirectory() error {
	if !p.fileSystem.IsDir(p.outputDir) {
		if err := p.fileSystem.Mkdir(p.outputDir); err != nil {
			return apperrors.NewFileOperationError(msgCannotCreateDir, p.outputDir, err)
		}
	}
	if !p.fileSystem.IsWritable(p.outputDir) {
		return apperrors.NewFileOperationError(msgCannotCreateDir, p.outputDir, nil)
	}
	return nil
}

// filename: orders_type_A_<id>_<unix>.csv, все кроме [A-Za-z0-9-] в id заменяется на "_".
func (p *Export) filename(order *entities.Order) string {
	safeID := unsafeFilenameChars.ReplaceAllString(order.ID.String(), "_")
	name := fmt.Sprintf("orders_type_A_%s_%d.csv", safeID, time.Now().Unix())
	return filepath.Join(p.outputDir, name)
}

func (p *Export) writeCSV(path string, order *entities.Order) error {
	file, err := p.fileSystem.Create(path)
	if err != nil || file == nil {
		return apperrors.NewFileOperationError(msgCannotOpenFile, path, err)
	}
	// файл закрывается на любом пути выхода, ошибка закрытия на статус не влияет
	defer func() {
		_ = file.Close()
	}()

	if err := file.WriteRow(csvHeaders); err != nil {
		return apperrors.NewFileOperationError(msgFailedWriteHeader, path, err)
	}
	if err := file.WriteRow(exportRow(order)); err != nil {
		return apperrors.NewFileOperationError(msgFailedWriteData, path, err)
	}
	if err := file.Flush(); err != nil {
		return apperrors.NewFileOperationError(msgFailedFlush, path, err)
	}
	return nil
}

// exportRow пишет статус, который заказ получит при успешной выгрузке.
func exportRow(order *entities.Order) []string {
	amount := *order.Amount

	notes := ""
	if amount > highValueNotesThreshold {
		notes = highValueNotes
	}
	if order.Notes != "" {
		notes = order.Notes
	}

	return []string{
		order.ID.String(),
		order.Type,
		strconv.FormatFloat(amount, 'f', -1, 64),
		strconv.FormatBool(order.Flag.Truthy()),
		entities.OrderExported.String(),
		order.Priority.String(),
		notes,
	}
}
