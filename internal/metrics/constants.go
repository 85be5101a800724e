package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameItemsBought       = "planner_items_bought_total"
	MetricNameItemsSold         = "planner_items_sold_total"
	MetricNameUpgradesBought    = "planner_upgrades_bought_total"
	MetricNameUpgradesSold      = "planner_upgrades_sold_total"
	MetricNameSearchesPerformed = "planner_searches_performed_total"
	MetricNameSessionsCreated   = "planner_sessions_created_total"
	MetricNameSessionResets     = "planner_session_resets_total"
	MetricNameSnapshotExports   = "planner_snapshot_exports_total"
	MetricNameSnapshotImports   = "planner_snapshot_imports_total"
)

// Storage metric names
const (
	MetricNameStoreErrors  = "planner_store_errors_total"
	MetricNameCatalogItems = "planner_catalog_items"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextItemsBought       = "Total number of items added to a build"
	HelpTextItemsSold         = "Total number of items removed from a build"
	HelpTextUpgradesBought    = "Total number of upgrades added to a build"
	HelpTextUpgradesSold      = "Total number of upgrades removed from a build"
	HelpTextSearchesPerformed = "Total number of non-empty searches"
	HelpTextSessionsCreated   = "Total number of planner sessions created"
	HelpTextSessionResets     = "Total number of planner sessions reset"
	HelpTextSnapshotExports   = "Total number of share URLs exported"
	HelpTextSnapshotImports   = "Total number of sessions hydrated, by source"
)

// Storage metric help text
const (
	HelpTextStoreErrors  = "Total number of session store failures"
	HelpTextCatalogItems = "Number of catalog items loaded, by category"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelItem      = "item"
	LabelUpgrade   = "upgrade"
	LabelSource    = "source"
	LabelBackend   = "backend"
	LabelOperation = "operation"
	LabelCategory  = "category"
)

// Snapshot import sources
const (
	SourceURL     = "url"
	SourceStore   = "store"
	SourceDefault = "default"
)

// Store operations
const (
	OperationLoad   = "load"
	OperationSave   = "save"
	OperationDelete = "delete"
)

// PathUnmatched labels requests that no route matched
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
