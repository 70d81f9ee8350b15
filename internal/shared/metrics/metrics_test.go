package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveCounters(t *testing.T) {
	beforeOK := testutil.ToFloat64(resumeSaves.WithLabelValues("ok"))
	beforeErr := testutil.ToFloat64(resumeSaves.WithLabelValues("error"))

	ObserveResumeSave(nil)
	ObserveResumeSave(errors.New("boom"))
	ObserveAuth("login", "failed")

	if got := testutil.ToFloat64(resumeSaves.WithLabelValues("ok")); got != beforeOK+1 {
		t.Fatalf("expected ok saves %v, got %v", beforeOK+1, got)
	}
	if got := testutil.ToFloat64(resumeSaves.WithLabelValues("error")); got != beforeErr+1 {
		t.Fatalf("expected error saves %v, got %v", beforeErr+1, got)
	}
	if got := testutil.ToFloat64(authEvents.WithLabelValues("login", "failed")); got < 1 {
		t.Fatalf("expected login failure counted, got %v", got)
	}
}

func TestHandlerExposesRouteMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GinMiddleware())
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	r.GET("/metrics", Handler())

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/health", nil))

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	if !strings.Contains(body, `career_http_requests_total{method="GET",route="/api/health",status="200"}`) {
		t.Fatalf("expected request counter in output:\n%s", body)
	}
}
