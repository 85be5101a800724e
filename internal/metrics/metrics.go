package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	ItemsBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsBought,
			Help: HelpTextItemsBought,
		},
		[]string{LabelItem},
	)

	ItemsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsSold,
			Help: HelpTextItemsSold,
		},
		[]string{LabelItem},
	)

	UpgradesBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUpgradesBought,
			Help: HelpTextUpgradesBought,
		},
		[]string{LabelUpgrade},
	)

	UpgradesSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUpgradesSold,
			Help: HelpTextUpgradesSold,
		},
		[]string{LabelUpgrade},
	)

	SearchesPerformed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSearchesPerformed,
			Help: HelpTextSearchesPerformed,
		},
	)

	SessionsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSessionsCreated,
			Help: HelpTextSessionsCreated,
		},
	)

	SessionResets = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSessionResets,
			Help: HelpTextSessionResets,
		},
	)

	SnapshotExports = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSnapshotExports,
			Help: HelpTextSnapshotExports,
		},
	)

	SnapshotImports = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSnapshotImports,
			Help: HelpTextSnapshotImports,
		},
		[]string{LabelSource},
	)
)

// Storage Metrics
var (
	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStoreErrors,
			Help: HelpTextStoreErrors,
		},
		[]string{LabelBackend, LabelOperation},
	)

	CatalogItems = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameCatalogItems,
			Help: HelpTextCatalogItems,
		},
		[]string{LabelCategory},
	)
)
