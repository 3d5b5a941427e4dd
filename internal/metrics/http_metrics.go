package metrics

import (
	"strconv"
	"time"

	"github.com/dashcommerce/admin-service/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPMetrics интерфейс для метрик HTTP-трафика
type HTTPMetrics interface {
	Middleware() gin.HandlerFunc
}

type httpMetrics struct {
	log             *logger.Logger
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewHTTPMetrics создает метрики HTTP-запросов
func NewHTTPMetrics(registry *prometheus.Registry, log *logger.Logger) HTTPMetrics {
	requestsTotal := promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "The total number of handled HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	requestDuration := promauto.With(registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency distribution",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	return &httpMetrics{
		log:             log,
		requestsTotal:   requestsTotal,
		requestDuration: requestDuration,
	}
}

// Middleware записывает счетчик и длительность для каждого запроса.
// В качестве пути используется шаблон маршрута, а не конкретный URL,
// чтобы не раздувать кардинальность меток.
func (m *httpMetrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		m.requestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		m.requestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(startTime).Seconds())
	}
}
