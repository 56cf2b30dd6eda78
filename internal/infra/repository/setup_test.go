//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Atsu2017-hub/web-ramen/internal/infra/db"
	"github.com/Atsu2017-hub/web-ramen/internal/pkg/config"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "test"
	testPassword = "testpass"
)

var (
	containerOnce sync.Once
	pgContainer   testcontainers.Container
	pgHost        string
	pgPort        nat.Port
)

func startPostgres(t *testing.T) {
	t.Helper()

	containerOnce.Do(func() {
		ctx := context.Background()
		req := testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       "postgres",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
		}

		container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		require.NoError(t, err, "failed to start postgres container")
		pgContainer = container

		pgHost, err = container.Host(ctx)
		require.NoError(t, err)
		pgPort, err = container.MappedPort(ctx, "5432/tcp")
		require.NoError(t, err)
	})
	require.NotNil(t, pgContainer)
}

// setupTestPool creates a throwaway database on the shared container, applies
// the schema and seeds, and returns a pool bound to it.
func setupTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	startPostgres(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbName := "testdb_" + uuid.New().String()[:8]

	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, pgHost, pgPort.Port())
	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err)
	defer adminPool.Close()

	_, err = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
	require.NoError(t, err)

	cfg := config.DBConfig{
		Host:     pgHost,
		Port:     pgPort.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "Asia/Tokyo",
	}

	pool, cleanup, err := db.Connect(cfg)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	require.NoError(t, db.InitSchema(ctx, pool))
	return pool
}

func createTestUser(t *testing.T, pool *pgxpool.Pool, email string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	_, err := pool.Exec(context.Background(),
		"INSERT INTO users (id, email, password_hash, name) VALUES ($1, $2, $3, $4)",
		userID, email, "$2a$10$testhashvalue", "テストユーザー")
	require.NoError(t, err)
	return userID
}

func seededMenuIDs(t *testing.T, pool *pgxpool.Pool) []uuid.UUID {
	t.Helper()

	rows, err := pool.Query(context.Background(), "SELECT id FROM menus ORDER BY price DESC")
	require.NoError(t, err)
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		require.NoError(t, rows.Scan(&id))
		ids = append(ids, id)
	}
	require.NoError(t, rows.Err())
	require.NotEmpty(t, ids, "InitSchema should seed menus")
	return ids
}
