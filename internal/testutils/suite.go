package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"testing"
	"time"

	"cargodeploy-backend/internal/config"
	"cargodeploy-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "testuser"
	pgPassword = "testpass"
	pgDatabase = "testdb"
)

var (
	sharedDB     *gorm.DB
	sharedConfig *config.Config
)

// BaseTestSuite gives a suite the migrated shared database and a config
// pointing at it.
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts (once) the shared Postgres container, migrates it and
// returns a per-suite wrapper.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	err := pgContainer.start(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, "5432/tcp", 2*time.Minute, connectPostgres)
	if err != nil {
		t.Fatalf("failed to initialize shared test container: %v", err)
	}
	return &BaseTestSuite{DB: sharedDB, Config: sharedConfig}
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite only empties the tables; the container lives until the process ends.
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB empties every table the service migrates
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	tables, err := tableNames(s.DB)
	if err != nil {
		log.Printf("WARN: could not resolve table names: %v", err)
		return
	}
	if err := s.DB.Exec(`TRUNCATE TABLE ` + strings.Join(tables, ", ") + ` RESTART IDENTITY CASCADE`).Error; err != nil {
		log.Printf("WARN: could not truncate tables: %v", err)
	}
}

func tableNames(db *gorm.DB) ([]string, error) {
	names := make([]string, 0, len(database.Models()))
	for _, model := range database.Models() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, err
		}
		names = append(names, `"`+stmt.Schema.Table+`"`)
	}
	return names, nil
}

// connectPostgres pings the fresh container, then migrates it through database.Initialize
func connectPostgres(hostPort string) error {
	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable", pgUser, pgPassword, hostPort, pgDatabase)

	std, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer std.Close()
	if err := std.Ping(); err != nil {
		return err
	}

	gdb, err := database.Initialize(dsn, nil)
	if err != nil {
		return err
	}
	sharedDB = gdb
	sharedConfig = &config.Config{
		DatabaseURL:       dsn,
		Port:              "8080",
		LogLevel:          "debug",
		Environment:       "test",
		JWTSecret:         "integration-test-secret",
		CallbackAPIKey:    "integration-test-key",
		AllowedOrigins:    []string{"*"},
		DefaultQuotaLimit: 3,
	}
	return nil
}

func closeSharedDB() {
	if sharedDB == nil {
		return
	}
	if sqlDB, err := sharedDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	sharedDB = nil
}
