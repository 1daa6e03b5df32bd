package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.AuthDecision(AuthExpired)
	m.AuthDecision(AuthExpired)
	m.TokenIssued(IssueSuccess)
	m.ObserveRequest(http.MethodPost, "/api/users", "200", 0.01)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.AuthDecisions.WithLabelValues(AuthExpired)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.TokenIssuance.WithLabelValues(IssueSuccess)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodPost, "/api/users", "200")))
}

func TestMetrics_Nil(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.AuthDecision(AuthAdmitted)
		m.TokenIssued(IssueBindFailed)
		m.ObserveRequest(http.MethodGet, "/health", "200", 0)
	})
}

func TestHandler(t *testing.T) {
	m := NewDefault()
	m.AuthDecision(AuthAdmitted)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `lldap_gateway_auth_decisions_total{result="admitted"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
