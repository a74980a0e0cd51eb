package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// ErrNoEnvFile возвращается, если файла нет: тогда конфигурация берется только из окружения.
var ErrNoEnvFile = errors.New("env file not found")

// Load читает файл окружения и применяет флаги командной строки поверх него.
// Переменные, уже заданные в окружении, файлом не перетираются.
func Load(path string, args []string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		err = ErrNoEnvFile
	}

	flagErr := applyFlags(args)
	if flagErr != nil {
		return flagErr
	}
	return err
}

func applyFlags(args []string) error {
	flags := flag.NewFlagSet("orderprocessing", flag.ContinueOnError)

	var port, exportDir string
	flags.StringVar(&port, "port", "", "Server port (overrides PORT environment variable)")
	flags.StringVar(&exportDir, "export-dir", "", "CSV export directory (overrides EXPORT_OUTPUT_DIR environment variable)")

	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	overrides := map[string]string{
		"PORT":              port,
		"EXPORT_OUTPUT_DIR": exportDir,
	}
	for key, value := range overrides {
		if value == "" {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to set %s environment variable: %w", key, err)
		}
	}
	return nil
}
