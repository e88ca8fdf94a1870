package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"examadda/config"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromConfig(t *testing.T) {
	assert.Nil(t, NewFromConfig(&config.Config{}))
	assert.Nil(t, NewFromConfig(&config.Config{Metrics: &config.MetricsConfig{Enabled: false}}))
	assert.NotNil(t, NewFromConfig(&config.Config{Metrics: &config.MetricsConfig{Enabled: true}}))
}

func TestObserveAuth(t *testing.T) {
	m := New()

	m.ObserveAuth("login", OutcomeRejected)
	m.ObserveAuth("login", OutcomeRejected)
	m.ObserveAuth("login", OutcomeSuccess)

	assert.InDelta(t, 2, testutil.ToFloat64(m.AuthAttempts.WithLabelValues("login", OutcomeRejected)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.AuthAttempts.WithLabelValues("login", OutcomeSuccess)), 0)

	var disabled *Metrics
	assert.NotPanics(t, func() { disabled.ObserveAuth("login", OutcomeSuccess) })
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveAuth("register", OutcomeSuccess)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `examadda_auth_attempts_total{operation="register",outcome="success"} 1`))
}
