package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/xiangzhu626/jifen/src/internal/infrastructure/metrics"
)

// Metrics 記錄請求數量與耗時；路由標籤使用 gin 的路由樣板，避免高基數
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		done := m.RequestStarted()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		done(c.Request.Method, route, c.Writer.Status())
	}
}
