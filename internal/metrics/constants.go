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

// Planner metric names
const (
	MetricNameCalculationsTotal   = "planner_calculations_total"
	MetricNameScanResultsTotal    = "planner_scan_results_total"
	MetricNameProfileCacheLookups = "planner_profile_cache_lookups_total"
	MetricNameProfileOperations   = "planner_profile_operations_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being processed"
)

// Planner metric help text
const (
	HelpTextCalculationsTotal   = "Total number of planner calculations by calculator"
	HelpTextScanResultsTotal    = "Total number of parsed screenshot scans by result"
	HelpTextProfileCacheLookups = "Total number of profile cache lookups by result"
	HelpTextProfileOperations   = "Total number of profile operations by operation and status"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod     = "method"
	LabelPath       = "path"
	LabelStatus     = "status"
	LabelCalculator = "calculator"
	LabelResult     = "result"
	LabelOperation  = "operation"
)

// Calculator label values
const (
	CalculatorSenseiPlan       = "sensei_plan"
	CalculatorSenseiDays       = "sensei_days"
	CalculatorSenseiCapacity   = "sensei_capacity"
	CalculatorStudentReports   = "student_reports"
	CalculatorStudentCost      = "student_cost"
	CalculatorRelationshipExp  = "relationship_exp"
	CalculatorRelationshipRank = "relationship_rank"
	CalculatorGiftSearch       = "gift_search"
	CalculatorGiftPreferences  = "gift_preferences"
)

// Result label values
const (
	ResultSuccess    = "success"
	ResultUnreadable = "unreadable"
	ResultError      = "error"
	ResultHit        = "hit"
	ResultMiss       = "miss"
)

// UnmatchedRoute labels requests that matched no route
const UnmatchedRoute = "unmatched"

// ============================================================================
// Buckets
// ============================================================================

// HTTPLatencyBuckets are histogram buckets for HTTP request latency (in seconds)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}
