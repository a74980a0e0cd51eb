package filesystem

import (
	"encoding/csv"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// Local - файловый приемник выгрузки на локальном диске.
type Local struct{}

func New() *Local {
	return &Local{}
}

func (l *Local) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (l *Local) Mkdir(path string) error {
	if err := os.MkdirAll(path, dirPerm); err != nil {
		return fmt.Errorf("mkdir %s: %w", path, err)
	}
	return nil
}

// IsWritable проверяет право записи для текущего процесса через access(2).
func (l *Local) IsWritable(path string) bool {
	return unix.Access(path, unix.W_OK) == nil
}

// Create открывает файл на запись, существующий файл обрезается.
func (l *Local) Create(path string) (*CSVFile, error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &CSVFile{
		file:   file,
		writer: csv.NewWriter(file),
	}, nil
}

// CSVFile - открытый csv файл. Закрывается вызывающей стороной.
type CSVFile struct {
	file   *os.File
	writer *csv.Writer
}

func (c *CSVFile) WriteRow(fields []string) error {
	return c.writer.Write(fields)
}

// Flush сбрасывает буфер csv и синхронизирует файл с диском.
func (c *CSVFile) Flush() error {
	c.writer.Flush()
	if err := c.writer.Error(); err != nil {
		return err
	}
	return c.file.Sync()
}

func (c *CSVFile) Close() error {
	return c.file.Close()
}
