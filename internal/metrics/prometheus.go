package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal tracks total HTTP requests
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// RequestDuration tracks HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// TransactionTokens tracks Snap token requests by outcome
	TransactionTokens = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transaction_tokens_total",
			Help: "Total number of Snap transaction token requests",
		},
		[]string{"outcome"},
	)

	// GrossAmount tracks gross amounts of accepted carts
	GrossAmount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "transaction_gross_amount",
			Help:    "Gross amounts of carts sent to the payment gateway",
			Buckets: []float64{10000, 50000, 100000, 500000, 1000000, 5000000},
		},
	)

	// NotificationsSent tracks FCM sends by outcome
	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_sent_total",
			Help: "Total number of FCM notification sends",
		},
		[]string{"outcome"},
	)
)

// Middleware records request count and duration for every route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		RequestsTotal.WithLabelValues(c.Request.Method, c.FullPath(), status).Inc()
		RequestDuration.WithLabelValues(c.Request.Method, c.FullPath()).Observe(duration)
	}
}
