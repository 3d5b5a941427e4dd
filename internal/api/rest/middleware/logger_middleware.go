package middleware

import (
	"time"

	"github.com/dashcommerce/admin-service/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestIDHeader заголовок, в котором запросу возвращается его идентификатор
const requestIDHeader = "X-Request-ID"

// LoggerMiddleware создает middleware для логирования запросов.
// Каждому запросу присваивается идентификатор, который попадает
// в лог и в ответный заголовок.
func LoggerMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Writer.Header().Set(requestIDHeader, requestID)

		// Обработка запроса
		c.Next()

		latency := time.Since(startTime)
		statusCode := c.Writer.Status()

		// Уровень лога зависит от кода статуса
		switch {
		case statusCode >= 500:
			log.Error("[%s] %s %d %s %s %s",
				c.Request.Method,
				c.Request.RequestURI,
				statusCode,
				latency.String(),
				c.ClientIP(),
				requestID,
			)
		case statusCode >= 400:
			log.Warn("[%s] %s %d %s %s %s",
				c.Request.Method,
				c.Request.RequestURI,
				statusCode,
				latency.String(),
				c.ClientIP(),
				requestID,
			)
		default:
			log.Info("[%s] %s %d %s %s %s",
				c.Request.Method,
				c.Request.RequestURI,
				statusCode,
				latency.String(),
				c.ClientIP(),
				requestID,
			)
		}
	}
}
