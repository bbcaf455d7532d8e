package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studynest_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "studynest_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5, 15, 60},
		},
		[]string{"method", "endpoint"},
	)

	// OracleCalls counts LLM round trips by capability and outcome
	// (ok, error, unparsable).
	OracleCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studynest_oracle_calls_total",
			Help: "LLM oracle calls by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	ExamScores = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "studynest_exam_score",
			Help:    "Final scores of submitted exams",
			Buckets: []float64{20, 40, 60, 70, 80, 90, 100},
		},
	)
)

var registerOnce sync.Once

// Init registers the collectors with the default registry. Safe to call
// more than once.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCounter, RequestDuration, OracleCalls, ExamScores)
	})
}

func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		RequestCounter.WithLabelValues(c.Request.Method, endpoint, strconv.Itoa(c.Writer.Status())).Inc()
		RequestDuration.WithLabelValues(c.Request.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}

func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
