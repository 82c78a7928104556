package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Behyna/common/pkg/mysql"
	"github.com/Behyna/payout-services/internal/config"
	"github.com/Behyna/payout-services/internal/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

const (
	defaultMaxIdleConns    = 10
	defaultMaxOpenConns    = 50
	defaultConnMaxLifetime = time.Hour
)

func NewConnection(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := mysql.NewConnection(context.Background(), cfg.Database.Config, logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Failed to get underlying DB", zap.Error(err))
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	applyPool(sqlDB, cfg.Database)

	db.Logger = db.Logger.LogMode(logLevel(cfg.Database.LogLevel))

	return db, nil
}

func applyPool(sqlDB *sql.DB, cfg config.Database) {
	sqlDB.SetMaxIdleConns(orDefault(cfg.MaxIdleConns, defaultMaxIdleConns))
	sqlDB.SetMaxOpenConns(orDefault(cfg.MaxOpenConns, defaultMaxOpenConns))

	lifetime := cfg.ConnMaxLifetime
	if lifetime <= 0 {
		lifetime = defaultConnMaxLifetime
	}
	sqlDB.SetConnMaxLifetime(lifetime)
}

// Migrate creates or alters the payout tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Beneficiary{},
		&model.BulkPayment{},
		&model.BulkPaymentLine{},
		&model.SendMoneyHistory{},
		&model.WalletBalance{},
	)
}

func logLevel(level string) gormLogger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return gormLogger.Silent
	case "error":
		return gormLogger.Error
	case "info":
		return gormLogger.Info
	default:
		return gormLogger.Warn
	}
}

func orDefault(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}
