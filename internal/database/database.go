package database

import (
	"fmt"
	"time"

	"cargodeploy-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipMigrate     bool
}

// Models lists every table owned by the service, in dependency order
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Project{},
		&models.EnvironmentVariable{},
		&models.Deployment{},
		&models.Log{},
	}
}

// Initialize opens a Postgres connection and creates the schema from GORM models.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}

	// Open DB
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(opts.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	if !opts.SkipMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// Migrate creates tables and the indexes GORM tags cannot express
func Migrate(db *gorm.DB) error {
	// Ensure required extension for UUID generation (used by BaseModel default gen_random_uuid())
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error

	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	// At most one IN_PROGRESS deployment per project
	if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_deployments_one_in_progress
		ON deployments (project_id) WHERE status = 'IN_PROGRESS'`).Error; err != nil {
		return fmt.Errorf("create in-progress index: %w", err)
	}

	// FIFO lookup of the oldest pending deployment
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_deployments_project_pending_created
		ON deployments (project_id, created_at) WHERE status = 'PENDING'`).Error; err != nil {
		return fmt.Errorf("create pending index: %w", err)
	}

	return nil
}
