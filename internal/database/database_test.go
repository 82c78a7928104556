package database

import (
	"database/sql"
	"testing"

	"github.com/Behyna/payout-services/internal/config"
	_ "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormLogger "gorm.io/gorm/logger"
)

func TestLogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected gormLogger.LogLevel
	}{
		{"silent", gormLogger.Silent},
		{"ERROR", gormLogger.Error},
		{"info", gormLogger.Info},
		{"", gormLogger.Warn},
		{"verbose", gormLogger.Warn},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, logLevel(tt.level))
		})
	}
}

func TestApplyPool(t *testing.T) {
	t.Run("configured limits", func(t *testing.T) {
		sqlDB, err := sql.Open("mysql", "payout:secret@tcp(localhost:3306)/payout")
		require.NoError(t, err)
		defer sqlDB.Close()

		applyPool(sqlDB, config.Database{MaxOpenConns: 7, MaxIdleConns: 3})

		assert.Equal(t, 7, sqlDB.Stats().MaxOpenConnections)
	})

	t.Run("zero values fall back to defaults", func(t *testing.T) {
		sqlDB, err := sql.Open("mysql", "payout:secret@tcp(localhost:3306)/payout")
		require.NoError(t, err)
		defer sqlDB.Close()

		applyPool(sqlDB, config.Database{})

		assert.Equal(t, defaultMaxOpenConns, sqlDB.Stats().MaxOpenConnections)
	})
}
