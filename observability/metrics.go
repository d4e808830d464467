package observability

import (
	"database/sql"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.mongodb.org/mongo-driver/event"
)

var (
	MongoPoolEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mongo_pool_events_total",
			Help: "Total MongoDB connection pool events by type",
		},
		[]string{"event"},
	)
	MongoOpenConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "mongo_open_connections",
			Help: "Current number of open MongoDB connections",
		},
	)
	MongoCheckedOutConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "mongo_checked_out_connections",
			Help: "MongoDB connections currently checked out of the pool",
		},
	)
)

// InitMetrics registers the datastore metric set. Call once from main;
// registering twice panics, the same as any duplicate collector.
func InitMetrics() {
	prometheus.MustRegister(MongoPoolEventsTotal)
	prometheus.MustRegister(MongoOpenConnections)
	prometheus.MustRegister(MongoCheckedOutConnections)
}

// RegisterDBStats exposes the SQL pool's internal counters (open, idle,
// in-use, wait counts) as go_sql_stats_* metrics for the given handle.
func RegisterDBStats(db *sql.DB, dbName string) error {
	return prometheus.Register(collectors.NewDBStatsCollector(db, dbName))
}

// NewMongoPoolMonitor returns a driver pool monitor feeding the mongo_*
// metrics above. Wire it into the client options at connect time.
func NewMongoPoolMonitor() *event.PoolMonitor {
	return &event.PoolMonitor{
		Event: func(e *event.PoolEvent) {
			MongoPoolEventsTotal.WithLabelValues(e.Type).Inc()
			switch e.Type {
			case event.ConnectionCreated:
				MongoOpenConnections.Inc()
			case event.ConnectionClosed:
				MongoOpenConnections.Dec()
			case event.GetSucceeded:
				MongoCheckedOutConnections.Inc()
			case event.ConnectionReturned:
				MongoCheckedOutConnections.Dec()
			}
		},
	}
}
