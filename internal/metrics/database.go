package metrics

import (
	"database/sql"
	"sync"
	"time"

	"go.uber.org/zap"
)

type StatsProvider interface {
	Stats() sql.DBStats
}

// DatabaseCollector publishes connection pool statistics at a fixed interval.
type DatabaseCollector struct {
	metrics *Metrics
	logger  *zap.Logger
	stats   StatsProvider
	stopCh  chan struct{}
	once    sync.Once
}

func NewDatabaseCollector(metrics *Metrics, logger *zap.Logger, stats StatsProvider) *DatabaseCollector {
	return &DatabaseCollector{
		metrics: metrics,
		logger:  logger,
		stats:   stats,
		stopCh:  make(chan struct{}),
	}
}

func (dc *DatabaseCollector) Start(interval time.Duration) {
	dc.Collect()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				dc.Collect()
			case <-dc.stopCh:
				return
			}
		}
	}()

	dc.logger.Info("Database metrics collector started", zap.Duration("interval", interval))
}

func (dc *DatabaseCollector) Stop() {
	dc.once.Do(func() {
		close(dc.stopCh)
		dc.logger.Info("Database metrics collector stopped")
	})
}

func (dc *DatabaseCollector) Collect() {
	stats := dc.stats.Stats()

	dc.metrics.DBConnectionsInUse.Set(float64(stats.InUse))
	dc.metrics.DBConnectionsIdle.Set(float64(stats.Idle))

	dc.logger.Debug("Database connection stats",
		zap.Int("open_connections", stats.OpenConnections),
		zap.Int("in_use", stats.InUse),
		zap.Int("idle", stats.Idle),
		zap.Int64("wait_count", stats.WaitCount),
		zap.Duration("wait_duration", stats.WaitDuration),
	)
}
