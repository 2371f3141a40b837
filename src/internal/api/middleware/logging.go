package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xiangzhu626/jifen/src/internal/api/response"
	"go.uber.org/zap"
)

// AccessLog 記錄每個請求（5xx 為 error，4xx 為 warn）
func AccessLog(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("trace_id", c.GetString(response.TraceIDKey)),
		}

		switch {
		case status >= http.StatusInternalServerError:
			logger.Error("http request", fields...)
		case status >= http.StatusBadRequest:
			logger.Warn("http request", fields...)
		default:
			logger.Info("http request", fields...)
		}
	}
}

// Recovery panic 時回應 500 並記錄堆疊
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered interface{}) {
		logger.Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("trace_id", c.GetString(response.TraceIDKey)),
			zap.Stack("stack"),
		)
		response.Fail(c, http.StatusInternalServerError, response.InternalErrorMessage)
		c.Abort()
	})
}
