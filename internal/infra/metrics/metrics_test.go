package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"addressbook/config"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Disabled(t *testing.T) {
	assert.Nil(t, New(Params{Config: &config.Config{}}))
	assert.Nil(t, New(Params{Config: &config.Config{Metrics: &config.MetricsConfig{Enabled: false}}}))
}

func TestNewSearchRecorder_NilMetrics(t *testing.T) {
	recorder := NewSearchRecorder(nil)

	assert.NotPanics(t, func() { recorder.ObserveSearch(3, 1) })
}

func TestMetrics_ObserveSearch(t *testing.T) {
	m := NewWithNamespace("test")

	NewSearchRecorder(m).ObserveSearch(3, 2)
	m.ObserveSearch(5, 0)

	count, err := testutil.GatherAndCount(m.Gatherer(), "test_search_candidates", "test_search_matches")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMetrics_Handler(t *testing.T) {
	m := NewWithNamespace("")
	m.RequestsTotal.WithLabelValues("GET", "/addresses", "200").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `addressbook_http_requests_total{method="GET",path="/addresses",status="200"} 1`)
}
