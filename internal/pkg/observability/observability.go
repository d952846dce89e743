package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "stridebackend"
)

var (
	SyncRunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "sync", "run_duration_seconds"),
		Help:    "Duration of a full sync run in seconds",
		Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
	}, []string{})
	SyncRecords = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "sync", "records_total"),
		Help: "Outcome distribution of individual activity records during sync",
	}, []string{"outcome"})
	SyncLaps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "sync", "laps_total"),
		Help: "Outcome distribution of individual lap rows during split reconciliation",
	}, []string{"outcome"})
)
