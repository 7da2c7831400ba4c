// Package repositories provides the data access layer over PostgreSQL.
package repositories

import (
	"fmt"
	stdlog "log"
	"os"
	"time"

	"storeadmin/internal/config"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the PostgreSQL connection and applies the pool settings from cfg.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	// Only warnings and errors, without "record not found" noise
	gormLogger := logger.New(
		stdlog.New(os.Stdout, "\r\n", stdlog.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  !cfg.IsProduction(),
		},
	)

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info().
		Int("max_idle", cfg.MaxIdleConns).
		Int("max_open", cfg.MaxOpenConns).
		Msg("[db] PostgreSQL connected with connection pooling")
	return db, nil
}

// LogPoolStats writes one line with the current connection pool statistics.
func LogPoolStats(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error().Err(err).Msg("[db] failed to get database instance")
		return
	}
	stats := sqlDB.Stats()
	log.Info().
		Int("open", stats.OpenConnections).
		Int("idle", stats.Idle).
		Int("in_use", stats.InUse).
		Int64("wait_count", stats.WaitCount).
		Dur("wait_duration", stats.WaitDuration).
		Msg("[db] pool stats")
}
