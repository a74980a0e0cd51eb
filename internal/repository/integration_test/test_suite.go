package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"orderprocessing/internal/pkg/config"
	"orderprocessing/internal/pkg/migrations"
	"orderprocessing/internal/pkg/postgres"
	"orderprocessing/pkg/logger/zap_adapter"
	"orderprocessing/pkg/querier"
	"orderprocessing/pkg/tx"
)

const (
	containerImage    = "postgres:17-alpine"
	containerDB       = "orders-test"
	containerUser     = "orders"
	containerPassword = "pwd"
)

var (
	poolInstance *pgxpool.Pool
	poolOnce     sync.Once
)

// getPool подключается к POSTGRES_* из окружения (Makefile подгружает .env.test),
// а если POSTGRES_HOST не задан, поднимает postgres в testcontainers.
func getPool() *pgxpool.Pool {
	poolOnce.Do(func() {
		ctx := context.Background()
		zapLogger := zap_adapter.NewNop()

		cfg := &config.Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		}
		if cfg.Host == "" {
			cfg = startContainer(ctx)
		}

		pool, err := postgres.NewConnPool(ctx, zapLogger, cfg)
		if err != nil {
			log.Fatalf("connect to test database: %v", err)
		}

		if err := migrations.Up(ctx, zapLogger, pool); err != nil {
			log.Fatalf("migrate test database: %v", err)
		}

		poolInstance = pool
	})

	return poolInstance
}

// Контейнер живет до конца процесса тестов, ryuk testcontainers удаляет его сам.
func startContainer(ctx context.Context) *config.Database {
	container, err := tcpostgres.Run(ctx,
		containerImage,
		tcpostgres.WithDatabase(containerDB),
		tcpostgres.WithUsername(containerUser),
		tcpostgres.WithPassword(containerPassword),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Fatalf("start postgres container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = testcontainers.TerminateContainer(container)
		log.Fatalf("postgres container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		_ = testcontainers.TerminateContainer(container)
		log.Fatalf("postgres container port: %v", err)
	}

	return &config.Database{
		Host:     host,
		Port:     port.Port(),
		User:     containerUser,
		Password: containerPassword,
		DBName:   containerDB,
		SSLMode:  "disable",
	}
}

func GetQuerier() *querier.Querier {
	return querier.New(getPool(), pgxv5.DefaultCtxGetter)
}

func GetTxManager() *tx.Manager {
	return tx.New(getPool())
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE order_status_log, orders RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}
