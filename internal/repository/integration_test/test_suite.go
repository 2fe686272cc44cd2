package integration_test

import (
	"context"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgpool "quickparcel/internal/pkg/postgres"
	"quickparcel/pkg/logger/zap_adapter"
	"quickparcel/pkg/querier"
)

var (
	querierInstance *querier.Querier
	querierOnce     sync.Once
)

// GetQuerier поднимает один контейнер Postgres на пакет тестов и накатывает миграции.
// Контейнер убирает ryuk после завершения процесса.
func GetQuerier() *querier.Querier {
	querierOnce.Do(func() {
		ctx := context.Background()

		zapLogger, err := zap_adapter.NewZapAdapter("warn")
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		defer func() {
			if err := zapLogger.Sync(); err != nil {
				log.Printf("failed to sync logger: %v", err)
			}
		}()

		container, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("quickparcel"),
			postgres.WithUsername("quickparcel"),
			postgres.WithPassword("quickparcel"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second),
			),
		)
		if err != nil {
			log.Fatalf("failed to start postgres container: %v", err)
		}

		dsn, err := container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			log.Fatalf("failed to get postgres dsn: %v", err)
		}

		connPool, err := pgpool.NewConnPoolFromDSN(ctx, zapLogger, dsn)
		if err != nil {
			log.Fatalf("failed to connect to postgres: %v", err)
		}

		if err := pgpool.Migrate(ctx, zapLogger, connPool); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}

		querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
	})

	return querierInstance
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	q := GetQuerier()
	if setupSql == "" {
		return
	}

	_, err := q.Exec(ctx, setupSql)
	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE delivery_stops, deliveries, partners RESTART IDENTITY CASCADE;
		ALTER SEQUENCE delivery_id_seq RESTART WITH 1;
		ALTER SEQUENCE partner_id_seq RESTART WITH 1;
	`)
	require.NoError(t, err)
}
