//go:build e2e

package e2e

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"mrbs/cmd/bootstrap"
	"mrbs/cmd/bootstrap/components"
	"mrbs/internal/infra/db"
	"mrbs/internal/pkg/config"
	"mrbs/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

const (
	pgUser     = "mrbs"
	pgPassword = "mrbs"
	pgPort     = nat.Port("5432/tcp")
	schemaFile = "migrations/schema.sql"
	testTZ     = "Asia/Singapore"
)

// One Postgres container serves every suite in the process; each suite gets
// its own database inside it.
var (
	pgOnce sync.Once
	pgAddr struct {
		host string
		port string
		err  error
	}
)

func postgresAddr(t *testing.T) (string, string) {
	pgOnce.Do(func() {
		pgAddr.host, pgAddr.port, pgAddr.err = startPostgres()
	})
	require.NoError(t, pgAddr.err, "postgres container did not start")
	return pgAddr.host, pgAddr.port
}

// startPostgres trades durability for speed: data lives on tmpfs and fsync is off.
// Ryuk reaps the container when the test binary exits.
func startPostgres() (string, string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{string(pgPort)},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=256m"},
			Cmd: []string{"postgres",
				"-c", "fsync=off",
				"-c", "synchronous_commit=off",
				"-c", "full_page_writes=off",
				"-c", "max_connections=200",
			},
			WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
				return adminDSN(host, port.Port())
			}).WithStartupTimeout(time.Minute),
			Labels: map[string]string{"purpose": "mrbs-e2e"},
		},
		Started: true,
	})
	if err != nil {
		return "", "", err
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", "", err
	}
	port, err := container.MappedPort(ctx, pgPort)
	if err != nil {
		return "", "", err
	}
	return host, port.Port(), nil
}

func adminDSN(host, port string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port)
}

// createDatabase makes a throwaway database and drops it when t finishes.
// CREATE DATABASE is retried because parallel packages race on template1.
func createDatabase(t *testing.T, host, port string) config.DBConfig {
	t.Helper()
	name := "mrbs_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	admin, err := pgxpool.New(ctx, adminDSN(host, port))
	require.NoError(t, err)
	defer admin.Close()

	for attempt := 1; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
		if err == nil || attempt == 5 {
			break
		}
		slog.Warn("create database failed, retrying", "attempt", attempt, "error", err.Error())
		time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
	}
	require.NoError(t, err, "create test database")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, adminDSN(host, port))
		if err != nil {
			slog.Warn("drop database skipped", "database", name, "error", err.Error())
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("drop database failed", "database", name, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:             host,
		Port:             port,
		User:             pgUser,
		Password:         pgPassword,
		DBName:           name,
		SSLMode:          "disable",
		TimeZone:         testTZ,
		MaxConns:         20,
		StatementTimeout: 5 * time.Second,
		ConnectTimeout:   5 * time.Second,
	}
}

// readSchema walks up from the package directory to the module root.
func readSchema() ([]byte, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	for {
		sql, err := os.ReadFile(filepath.Join(dir, schemaFile))
		if err == nil {
			return sql, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, errors.New(schemaFile + " not found above the working directory")
		}
		dir = parent
	}
}

func prepareDatabase(t *testing.T) (*pgxpool.Pool, config.DBConfig) {
	t.Helper()
	host, port := postgresAddr(t)
	dbConfig := createDatabase(t, host, port)

	pool, _, err := db.Connect(dbConfig)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	schema, err := readSchema()
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	_, err = pool.Exec(ctx, string(schema))
	require.NoError(t, err, "apply schema")

	require.NoError(t, dbtest.SeedReferenceData(pool), "seed rooms")
	return pool, dbConfig
}

// startApp wires the production modules around the test pool and config.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()
	var router *gin.Engine

	app := fxtest.New(t,
		fx.Supply(pool, cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		fx.Provide(bootstrap.NewOperatingHours),
		bootstrap.LoggerModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)
	app.RequireStart()
	t.Cleanup(app.RequireStop)

	return router
}

// SharedSuite gives each e2e suite a migrated database and a running router.
// Subtests start from an empty, reseeded database.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	t := s.T()

	pool, dbConfig := prepareDatabase(t)
	cfg := config.NewTestConfig()
	cfg.DB = dbConfig

	s.DB = pool
	s.Config = cfg
	s.Router = startApp(t, pool, cfg)
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "reset database")
}
