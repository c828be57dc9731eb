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

// Planner Metrics
var (
	CalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCalculationsTotal,
			Help: HelpTextCalculationsTotal,
		},
		[]string{LabelCalculator},
	)

	ScanResultsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameScanResultsTotal,
			Help: HelpTextScanResultsTotal,
		},
		[]string{LabelResult},
	)

	ProfileCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameProfileCacheLookups,
			Help: HelpTextProfileCacheLookups,
		},
		[]string{LabelResult},
	)

	ProfileOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameProfileOperations,
			Help: HelpTextProfileOperations,
		},
		[]string{LabelOperation, LabelStatus},
	)
)

// RecordCalculation counts one run of a calculator
func RecordCalculation(calculator string) {
	CalculationsTotal.WithLabelValues(calculator).Inc()
}

// RecordScanResult counts one parsed scan by outcome
func RecordScanResult(result string) {
	ScanResultsTotal.WithLabelValues(result).Inc()
}

// RecordCacheLookup counts a profile cache hit or miss
func RecordCacheLookup(hit bool) {
	if hit {
		ProfileCacheLookups.WithLabelValues(ResultHit).Inc()
		return
	}
	ProfileCacheLookups.WithLabelValues(ResultMiss).Inc()
}

// RecordProfileOperation counts a profile operation and whether it failed
func RecordProfileOperation(operation string, err error) {
	status := ResultSuccess
	if err != nil {
		status = ResultError
	}
	ProfileOperations.WithLabelValues(operation, status).Inc()
}
