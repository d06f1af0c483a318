package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	QuizRunsStarted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quiz_runs_started_total",
			Help: "Number of quiz runs started, by category",
		},
		[]string{"category"},
	)

	QuizRunsCompleted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quiz_runs_completed_total",
			Help: "Number of quiz runs completed, by category",
		},
		[]string{"category"},
	)

	QuizHistoryWriteFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "quiz_history_write_failures_total",
			Help: "Number of failed quiz history inserts",
		},
	)
)

func Init() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(QuizRunsStarted)
	prometheus.MustRegister(QuizRunsCompleted)
	prometheus.MustRegister(QuizHistoryWriteFailures)
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
