package metrics

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	queryStartKey      = "payout:query_start"
	slowQueryThreshold = 100 * time.Millisecond
)

// DatabaseCollector times every gorm statement, samples the connection pool and
// answers the /health ping.
type DatabaseCollector struct {
	metrics *Metrics
	logger  *zap.Logger
	sqlDB   *sql.DB
	cancel  context.CancelFunc
	done    chan struct{}
}

func NewDatabaseCollector(metrics *Metrics, logger *zap.Logger, db *gorm.DB) *DatabaseCollector {
	dc := &DatabaseCollector{metrics: metrics, logger: logger}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Failed to get sql.DB from gorm.DB", zap.Error(err))
		metrics.RecordDBConnectionError()
	}
	dc.sqlDB = sqlDB

	if err := dc.registerCallbacks(db); err != nil {
		logger.Error("Failed to register query metrics callbacks", zap.Error(err))
	}

	return dc
}

func (dc *DatabaseCollector) registerCallbacks(db *gorm.DB) error {
	cb := db.Callback()

	return errors.Join(
		cb.Create().Before("gorm:create").Register("payout:metrics_before_create", dc.startQuery),
		cb.Create().After("gorm:create").Register("payout:metrics_after_create", dc.finishQuery("create")),
		cb.Query().Before("gorm:query").Register("payout:metrics_before_query", dc.startQuery),
		cb.Query().After("gorm:query").Register("payout:metrics_after_query", dc.finishQuery("query")),
		cb.Update().Before("gorm:update").Register("payout:metrics_before_update", dc.startQuery),
		cb.Update().After("gorm:update").Register("payout:metrics_after_update", dc.finishQuery("update")),
		cb.Delete().Before("gorm:delete").Register("payout:metrics_before_delete", dc.startQuery),
		cb.Delete().After("gorm:delete").Register("payout:metrics_after_delete", dc.finishQuery("delete")),
		cb.Row().Before("gorm:row").Register("payout:metrics_before_row", dc.startQuery),
		cb.Row().After("gorm:row").Register("payout:metrics_after_row", dc.finishQuery("row")),
		cb.Raw().Before("gorm:raw").Register("payout:metrics_before_raw", dc.startQuery),
		cb.Raw().After("gorm:raw").Register("payout:metrics_after_raw", dc.finishQuery("raw")),
	)
}

func (dc *DatabaseCollector) startQuery(db *gorm.DB) {
	db.InstanceSet(queryStartKey, time.Now())
}

func (dc *DatabaseCollector) finishQuery(operation string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		value, ok := db.InstanceGet(queryStartKey)
		if !ok {
			return
		}
		start, ok := value.(time.Time)
		if !ok {
			return
		}

		duration := time.Since(start)
		table := statementTable(db)
		dc.metrics.RecordDBQuery(operation, table, queryStatus(db.Error), duration)

		if duration > slowQueryThreshold {
			dc.logger.Warn("Slow database query",
				zap.String("operation", operation),
				zap.String("table", table),
				zap.Duration("duration", duration),
				zap.Error(db.Error),
			)
		}
	}
}

func statementTable(db *gorm.DB) string {
	if db.Statement == nil || db.Statement.Table == "" {
		return "unknown"
	}
	return db.Statement.Table
}

func queryStatus(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, gorm.ErrRecordNotFound):
		return "not_found"
	default:
		return "error"
	}
}

// Start samples pool usage every interval until Stop.
func (dc *DatabaseCollector) Start(interval time.Duration) {
	if dc.sqlDB == nil {
		dc.logger.Warn("Cannot start database collector: sqlDB is nil")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	dc.cancel = cancel
	dc.done = make(chan struct{})

	go func() {
		defer close(dc.done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			dc.samplePool()

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()

	dc.logger.Info("Database collector started", zap.Duration("interval", interval))
}

func (dc *DatabaseCollector) Stop() {
	if dc.cancel == nil {
		return
	}
	dc.cancel()
	<-dc.done
}

func (dc *DatabaseCollector) samplePool() {
	stats := dc.sqlDB.Stats()

	dc.metrics.DBConnectionsInUse.Set(float64(stats.InUse))
	dc.metrics.DBConnectionsIdle.Set(float64(stats.Idle))
}

func (dc *DatabaseCollector) HealthCheck(ctx context.Context) error {
	if dc.sqlDB == nil {
		dc.metrics.RecordDBConnectionError()
		return sql.ErrConnDone
	}

	start := time.Now()
	err := dc.sqlDB.PingContext(ctx)
	dc.metrics.RecordDBQuery("ping", "health_check", queryStatus(err), time.Since(start))
	if err != nil {
		dc.metrics.RecordDBConnectionError()
	}

	return err
}
