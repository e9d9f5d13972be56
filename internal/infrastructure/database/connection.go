package database

import (
	"context"
	"fmt"
	"time"

	"github.com/winning-appliances/service-automation/internal/config"
	"github.com/winning-appliances/service-automation/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const pingTimeout = 5 * time.Second

// gormConfig logs queries slower than cfg.SlowQueryThreshold and stamps rows
// in UTC.
func gormConfig(cfg *config.DatabaseConfig, log *zap.Logger) *gorm.Config {
	return &gorm.Config{
		Logger:      logger.NewGormLogger(log, gormlogger.Warn, cfg.SlowQueryThreshold, true),
		PrepareStmt: true,
		NowFunc:     func() time.Time { return time.Now().UTC() },
	}
}

// NewConnection opens the service request store and verifies it is reachable.
func NewConnection(cfg *config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig(cfg, log))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database %s:%d: %w", cfg.Host, cfg.Port, err)
	}

	log.Info("Request store connected",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Name),
		zap.Int("max_open_conns", cfg.MaxOpenConns),
		zap.Duration("slow_query_threshold", cfg.SlowQueryThreshold),
	)

	return db, nil
}

func Close(db *gorm.DB, log *zap.Logger) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	log.Info("Request store connection closed")
	return nil
}
