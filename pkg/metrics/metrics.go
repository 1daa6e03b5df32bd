package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "lldap_gateway"

// Auth gate results.
const (
	AuthAdmitted     = "admitted"
	AuthMissing      = "missing"
	AuthInvalid      = "invalid"
	AuthExpired      = "expired"
	AuthForbidden    = "forbidden"
	AuthBadCookie    = "bad_cookie"
	IssueSuccess     = "issued"
	IssueBindFailed  = "bind_failed"
	IssueBackendFail = "backend_error"
)

// Metrics holds the collectors of the gateway. A nil *Metrics records nothing.
type Metrics struct {
	gatherer prometheus.Gatherer

	// HTTPRequests counts served requests by method, route and status
	HTTPRequests *prometheus.CounterVec
	// HTTPDuration tracks request latency by method and route
	HTTPDuration *prometheus.HistogramVec
	// AuthDecisions counts auth gate outcomes
	AuthDecisions *prometheus.CounterVec
	// TokenIssuance counts /authorize outcomes
	TokenIssuance *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		gatherer: reg,
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
			},
			[]string{"method", "route"},
		),
		AuthDecisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "auth_decisions_total",
				Help:      "Total number of auth gate decisions by result",
			},
			[]string{"result"},
		),
		TokenIssuance: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "token_issuance_total",
				Help:      "Total number of token issuance attempts by result",
			},
			[]string{"result"},
		),
	}

	reg.MustRegister(m.HTTPRequests, m.HTTPDuration, m.AuthDecisions, m.TokenIssuance)
	return m
}

// NewDefault builds Metrics on a fresh registry that also exports Go and process collectors.
func NewDefault() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return New(reg)
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, status).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(seconds)
}

func (m *Metrics) AuthDecision(result string) {
	if m == nil {
		return
	}
	m.AuthDecisions.WithLabelValues(result).Inc()
}

func (m *Metrics) TokenIssued(result string) {
	if m == nil {
		return
	}
	m.TokenIssuance.WithLabelValues(result).Inc()
}
