package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/xiangzhu626/jifen/src/internal/api/response"
	"github.com/xiangzhu626/jifen/src/internal/infrastructure/metrics"
	"golang.org/x/time/rate"
)

// RateLimitedMessage 超過限流時的訊息
const RateLimitedMessage = "请求过于频繁，请稍后再试"

// maxTrackedClients 超過此數量時清空，避免記憶體無限增長
const maxTrackedClients = 10000

// RateLimiter 依用戶端 IP 限流
type RateLimiter struct {
	name     string
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
	metrics  *metrics.Metrics
}

// NewRateLimiter 創建限流器（name 用於指標標籤）
func NewRateLimiter(name string, requestsPerSecond float64, burst int, m *metrics.Metrics) *RateLimiter {
	return &RateLimiter{
		name:     name,
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
		metrics:  m,
	}
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, exists := rl.limiters[key]
	if !exists {
		if len(rl.limiters) >= maxTrackedClients {
			rl.limiters = make(map[string]*rate.Limiter)
		}
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters[key] = limiter
	}
	return limiter
}

// Handler gin middleware，超過限流回應 429
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.getLimiter(c.ClientIP()).Allow() {
			rl.metrics.RateLimited(rl.name)
			response.Fail(c, http.StatusTooManyRequests, RateLimitedMessage)
			c.Abort()
			return
		}
		c.Next()
	}
}
