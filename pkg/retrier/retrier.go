package retrier

import (
	"context"
	"time"
)

// Retrier повторяет fn до успеха, отмены ctx или исчерпания времени.
// Используется только для ожидания зависимостей на старте (postgres, grpc, kafka).
type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// nil - повторяются все ошибки
	ShouldRetry ShouldRetryFunc

	// Notify вызывается перед каждой паузой между попытками
	Notify NotifyFunc
}

type NotifyFunc func(err error, next time.Duration)

// StartupConfig - общие параметры ожидания зависимостей при запуске сервиса.
func StartupConfig() Config {
	return Config{
		InitialInterval: 1 * time.Second,
		MaxInterval:     30 * time.Second,
		MaxElapsedTime:  2 * time.Minute,
		Randomization:   0.5,
		Multiplier:      2,
	}
}
