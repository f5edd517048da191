package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"morrison/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMetrics_Counts(t *testing.T) {
	registry := NewRegistry()
	m := NewAuthMetrics(registry).(*authMetrics)

	m.Registration(service.OutcomeSuccess)
	m.Registration(service.OutcomeConflict)
	m.Registration(service.OutcomeConflict)
	m.Login(service.OutcomeRejected)
	m.Moderation("banned", service.OutcomeSuccess)

	assert.InDelta(t, 1, testutil.ToFloat64(m.registrations.WithLabelValues(service.OutcomeSuccess)), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.registrations.WithLabelValues(service.OutcomeConflict)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.logins.WithLabelValues(service.OutcomeRejected)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.moderation.WithLabelValues("banned", service.OutcomeSuccess)), 0)
}

func TestHandler_ExposesCounters(t *testing.T) {
	registry := NewRegistry()
	NewAuthMetrics(registry).Login(service.OutcomeSuccess)

	rec := httptest.NewRecorder()
	Handler(registry).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `morrison_logins_total{outcome="success"} 1`)
}
