package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/yanqian/support-qa/internal/domain/faq"
)

func TestCollectorObserveMatch(t *testing.T) {
	c := NewCollector()
	c.ObserveMatch(faq.LanguageZh, true, 3.2)
	c.ObserveMatch(faq.LanguageZh, false, 0)
	c.ObserveMatch(faq.LanguageJa, true, 7)

	require.Equal(t, 1.0, testutil.ToFloat64(c.matchesTotal.WithLabelValues("zh", "matched")))
	require.Equal(t, 1.0, testutil.ToFloat64(c.matchesTotal.WithLabelValues("zh", "fallback")))
	require.Equal(t, 1.0, testutil.ToFloat64(c.matchesTotal.WithLabelValues("ja", "matched")))
}

func TestCollectorObserveReload(t *testing.T) {
	c := NewCollector()
	c.ObserveReload("file", 12, nil)
	c.ObserveReload("", 0, errors.New("boom"))

	require.Equal(t, 1.0, testutil.ToFloat64(c.reloadsTotal.WithLabelValues("file", "ok")))
	require.Equal(t, 1.0, testutil.ToFloat64(c.reloadsTotal.WithLabelValues("unknown", "error")))
	require.Equal(t, 12.0, testutil.ToFloat64(c.kbEntries))
}

func TestCollectorHandlerExposesMetrics(t *testing.T) {
	c := NewCollector()
	c.ObserveRequest(http.MethodGet, "/api/v1/faq", http.StatusOK, 5*time.Millisecond)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `supportqa_http_requests_total{method="GET",path="/api/v1/faq",status="200"} 1`)
}
