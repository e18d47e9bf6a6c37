package metrics

import (
	"bytes"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/common/expfmt"
)

var requestLabels = []string{"method", "route", "status_code"}

// Registry owns every series the service exposes. All methods are safe for
// concurrent use.
type Registry struct {
	registry *prometheus.Registry

	requestsTotal     *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
	connectionsActive prometheus.Gauge
	appInfo           *prometheus.GaugeVec
	userOperations    *prometheus.CounterVec
	errorsTotal       *prometheus.CounterVec
}

func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			requestLabels,
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds.",
				Buckets: DurationBuckets,
			},
			requestLabels,
		),
		connectionsActive: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_connections_active",
				Help: "Number of currently active HTTP connections.",
			},
		),
		appInfo: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "app_info",
				Help: "Application build information.",
			},
			[]string{"version", "environment", "build_date"},
		),
		userOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "user_operations_total",
				Help: "Total number of user operations.",
			},
			[]string{"operation", "status"},
		),
		errorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "app_errors_total",
				Help: "Errors reported to the monitoring sink, by error name.",
			},
			[]string{"name"},
		),
	}

	r.registry.MustRegister(
		r.requestsTotal,
		r.requestDuration,
		r.connectionsActive,
		r.appInfo,
		r.userOperations,
		r.errorsTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

func (r *Registry) RecordRequest(method, route string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	r.requestsTotal.WithLabelValues(method, route, code).Inc()
	r.requestDuration.WithLabelValues(method, route, code).Observe(duration.Seconds())
}

func (r *Registry) RecordHTTP(m HTTPMetric) {
	r.RecordRequest(m.Method, m.Route, m.StatusCode, m.Duration)
}

// SetBuildInfo replaces any previous app_info series so only one exists.
func (r *Registry) SetBuildInfo(version, environment, buildDate string) {
	r.appInfo.Reset()
	r.appInfo.WithLabelValues(version, environment, buildDate).Set(1)
}

func (r *Registry) RecordUserOperation(operation, status string) {
	r.userOperations.WithLabelValues(operation, status).Inc()
}

// FireErrorMetric counts an error by name.
func (r *Registry) FireErrorMetric(name string) {
	r.errorsTotal.WithLabelValues(name).Inc()
}

// ConnStateHook keeps http_connections_active in step with the server's
// connections. Install it as http.Server.ConnState.
func (r *Registry) ConnStateHook(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		r.connectionsActive.Inc()
	case http.StateHijacked, http.StateClosed:
		r.connectionsActive.Dec()
	}
}

// Snapshot renders every registered series in the Prometheus text format.
func (r *Registry) Snapshot() ([]byte, string, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return nil, "", err
	}

	format := expfmt.NewFormat(expfmt.TypeTextPlain)
	var buf bytes.Buffer
	enc := expfmt.NewEncoder(&buf, format)
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return nil, "", err
		}
	}
	return buf.Bytes(), string(format), nil
}

func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
