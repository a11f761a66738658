// Package metrics provides Prometheus metrics for the volunteer matching service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric label values for match directions.
const (
	DirectionEvents     = "events"
	DirectionVolunteers = "volunteers"
)

// Metric label values for registration outcomes.
const (
	RegistrationAccepted = "accepted"
	RegistrationFull     = "full"
	RegistrationClosed   = "closed"
)

var defaultLatencyBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25, 50, 100, 250}

// Manager owns every metric the service exports.
type Manager struct {
	namespace      string
	subsystem      string
	latencyBuckets []float64
	registry       prometheus.Registerer

	// Matching
	matchRequests    *prometheus.CounterVec
	matchLatency     *prometheus.HistogramVec
	candidatesScored *prometheus.CounterVec
	matchesReturned  *prometheus.HistogramVec
	subjectsNotFound *prometheus.CounterVec
	scoresCalculated prometheus.Counter
	urgentAlerts     *prometheus.GaugeVec
	activeVolunteers prometheus.Gauge
	upcomingEvents   prometheus.Gauge
	registrations    *prometheus.CounterVec

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpErrors          *prometheus.CounterVec
}

var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // metrics registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:      "vmatch",
		subsystem:      "matching",
		latencyBuckets: defaultLatencyBuckets,
		registry:       prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.matchRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "requests_total",
		Help:      "Total number of match ranking requests",
	}, []string{"direction"})

	m.matchLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "latency_milliseconds",
		Help:      "Time spent scoring and ranking a candidate pool",
		Buckets:   m.latencyBuckets,
	}, []string{"direction"})

	m.candidatesScored = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "candidates_scored_total",
		Help:      "Total number of candidates scored",
	}, []string{"direction"})

	m.matchesReturned = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "matches_returned",
		Help:      "Number of matches returned per request",
		Buckets:   prometheus.LinearBuckets(0, 5, 11),
	}, []string{"direction"})

	m.subjectsNotFound = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "subject_not_found_total",
		Help:      "Total number of requests for an unknown volunteer or event",
	}, []string{"kind"})

	m.scoresCalculated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scores_calculated_total",
		Help:      "Total number of single pair score calculations",
	})

	m.urgentAlerts = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "urgent_alerts",
		Help:      "Urgent alerts found by the last scan, by urgency",
	}, []string{"urgency"})

	m.activeVolunteers = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "active_volunteers",
		Help:      "Active volunteers seen by the last stats call",
	})

	m.upcomingEvents = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "upcoming_events",
		Help:      "Upcoming events seen by the last stats call",
	})

	m.registrations = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "registrations_total",
		Help:      "Total number of event registration attempts by outcome",
	}, []string{"outcome"})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_milliseconds",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.latencyBuckets,
	}, []string{"endpoint", "method", "status_code"})

	m.httpErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "errors_total",
		Help:      "Total number of HTTP error responses by type",
	}, []string{"endpoint", "error_type"})
}

// RecordMatchRequest records one ranking request for direction.
func (m *Manager) RecordMatchRequest(direction string, candidates, returned int, latencyMs float64) {
	m.matchRequests.WithLabelValues(direction).Inc()
	m.candidatesScored.WithLabelValues(direction).Add(float64(candidates))
	m.matchesReturned.WithLabelValues(direction).Observe(float64(returned))
	m.matchLatency.WithLabelValues(direction).Observe(latencyMs)
}

// RecordNotFound counts a lookup for an unknown subject of kind.
func (m *Manager) RecordNotFound(kind string) {
	m.subjectsNotFound.WithLabelValues(kind).Inc()
}

// RecordScoreCalculated counts one pair score.
func (m *Manager) RecordScoreCalculated() {
	m.scoresCalculated.Inc()
}

// UpdateUrgentAlerts sets the alert gauges from the last scan.
func (m *Manager) UpdateUrgentAlerts(high, medium int) {
	m.urgentAlerts.WithLabelValues("high").Set(float64(high))
	m.urgentAlerts.WithLabelValues("medium").Set(float64(medium))
}

// UpdatePools sets the candidate pool gauges.
func (m *Manager) UpdatePools(activeVolunteers, upcomingEvents int) {
	m.activeVolunteers.Set(float64(activeVolunteers))
	m.upcomingEvents.Set(float64(upcomingEvents))
}

// RecordRegistration counts one registration attempt with outcome.
func (m *Manager) RecordRegistration(outcome string) {
	m.registrations.WithLabelValues(outcome).Inc()
}

// RecordHTTPRequest records one HTTP request and its duration.
func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordHTTPError counts an error response.
func (m *Manager) RecordHTTPError(endpoint, errorType string) {
	m.httpErrors.WithLabelValues(endpoint, errorType).Inc()
}

// Package-level helpers delegate to the global manager.

// RecordMatchRequest records a ranking request on the global manager.
func RecordMatchRequest(direction string, candidates, returned int, latencyMs float64) {
	globalManager.RecordMatchRequest(direction, candidates, returned, latencyMs)
}

// RecordNotFound counts an unknown subject on the global manager.
func RecordNotFound(kind string) {
	globalManager.RecordNotFound(kind)
}

// RecordScoreCalculated counts a pair score on the global manager.
func RecordScoreCalculated() {
	globalManager.RecordScoreCalculated()
}

// UpdateUrgentAlerts sets alert gauges on the global manager.
func UpdateUrgentAlerts(high, medium int) {
	globalManager.UpdateUrgentAlerts(high, medium)
}

// UpdatePools sets pool gauges on the global manager.
func UpdatePools(activeVolunteers, upcomingEvents int) {
	globalManager.UpdatePools(activeVolunteers, upcomingEvents)
}

// RecordRegistration counts a registration attempt on the global manager.
func RecordRegistration(outcome string) {
	globalManager.RecordRegistration(outcome)
}

// RecordHTTPRequest records an HTTP request on the global manager.
func RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	globalManager.RecordHTTPRequest(endpoint, method, statusCode, durationMs)
}

// RecordHTTPError counts an HTTP error on the global manager.
func RecordHTTPError(endpoint, errorType string) {
	globalManager.RecordHTTPError(endpoint, errorType)
}

// GetRegistry returns the custom registry backing the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
