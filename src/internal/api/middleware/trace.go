package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xiangzhu626/jifen/src/internal/api/response"
)

// TraceIDHeader 請求追蹤 ID 的 header
const TraceIDHeader = "X-Trace-ID"

// TraceID 為每個請求指派追蹤 ID（沿用上游傳入的值）
func TraceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(TraceIDHeader)
		if traceID == "" || len(traceID) > 64 {
			traceID = uuid.NewString()
		}
		c.Set(response.TraceIDKey, traceID)
		c.Writer.Header().Set(TraceIDHeader, traceID)
		c.Next()
	}
}
