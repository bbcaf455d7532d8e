package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddlewareCountsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	Init()
	Init() // second call must not panic on duplicate registration

	r := gin.New()
	r.Use(Middleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", Handler())

	before := testutil.ToFloat64(RequestCounter.WithLabelValues("GET", "/ping", "200"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	after := testutil.ToFloat64(RequestCounter.WithLabelValues("GET", "/ping", "200"))
	if after-before != 1 {
		t.Fatalf("counter delta = %v, want 1", after-before)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(w.Body.String(), "studynest_http_requests_total") {
		t.Error("metrics endpoint does not expose the request counter")
	}
}
