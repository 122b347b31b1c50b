package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterGoalsCreated      prometheus.Counter
	CounterGoalsDeleted      prometheus.Counter
	CounterGoalsReloads      prometheus.Counter
	CounterProgressRefreshes prometheus.Counter
	CounterProgressCacheHit  prometheus.Counter
	CounterProgressCacheMiss prometheus.Counter

	// gauges
	GaugeActiveGoals prometheus.Gauge
	GaugeLifeSignal  prometheus.Gauge

	// histograms
	HistProgressRefreshDuration prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("macrotrack", "test_engine", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("macrotrack", "test_engine", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterGoalsCreated := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "goals_created",
		Help:      "The total number of created goals",
	})
	counterGoalsDeleted := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "goals_deleted",
		Help:      "The total number of deleted goals",
	})
	counterGoalsReloads := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "goals_reloads",
		Help:      "The total number of full goal list reloads",
	})
	counterProgressRefreshes := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "progress_refreshes",
		Help:      "The total number of goal progress refresh runs",
	})
	counterProgressCacheHit := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "progress_cache_hit",
		Help:      "The total number of progress cache hits",
	})
	counterProgressCacheMiss := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "progress_cache_miss",
		Help:      "The total number of progress cache misses",
	})

	gaugeActiveGoals := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "active_goals",
		Help:      "Current number of active goals",
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Shows whether the service is alive",
	})

	histProgressRefreshDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "progress_refresh_duration_seconds",
		Help:      "Total duration of a single progress refresh run in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	})

	return &Manager{
		CounterGoalsCreated:         counterGoalsCreated,
		CounterGoalsDeleted:         counterGoalsDeleted,
		CounterGoalsReloads:         counterGoalsReloads,
		CounterProgressRefreshes:    counterProgressRefreshes,
		CounterProgressCacheHit:     counterProgressCacheHit,
		CounterProgressCacheMiss:    counterProgressCacheMiss,
		GaugeActiveGoals:            gaugeActiveGoals,
		GaugeLifeSignal:             gaugeLifeSignal,
		HistProgressRefreshDuration: histProgressRefreshDuration,
	}
}
