package metrics_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/Behyna/e24-payment-pipe/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fixedStats sql.DBStats

func (f fixedStats) Stats() sql.DBStats {
	return sql.DBStats(f)
}

func TestDatabaseCollector_Collect(t *testing.T) {
	m := metrics.NewMetrics(prometheus.NewRegistry())
	collector := metrics.NewDatabaseCollector(m, zap.NewNop(), fixedStats{InUse: 3, Idle: 7})

	collector.Collect()

	assert.Equal(t, 3.0, testutil.ToFloat64(m.DBConnectionsInUse))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.DBConnectionsIdle))
}

func TestDatabaseCollector_StartStop(t *testing.T) {
	m := metrics.NewMetrics(prometheus.NewRegistry())
	collector := metrics.NewDatabaseCollector(m, zap.NewNop(), fixedStats{InUse: 1})

	collector.Start(time.Hour)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBConnectionsInUse))

	assert.NotPanics(t, func() {
		collector.Stop()
		collector.Stop()
	})
}

func TestMetrics_RecordDBQuery(t *testing.T) {
	m := metrics.NewMetrics(prometheus.NewRegistry())

	m.RecordDBQuery("create", "success", 2*time.Millisecond)
	m.RecordDBQuery("get_by_track_id", "not_found", time.Millisecond)

	assert.Equal(t, 2, testutil.CollectAndCount(m.DBQueryDuration))
}
