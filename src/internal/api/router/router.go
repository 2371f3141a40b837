package router

import (
	"github.com/gin-gonic/gin"
	"github.com/xiangzhu626/jifen/src/internal/api/handler"
	"github.com/xiangzhu626/jifen/src/internal/api/middleware"
	"github.com/xiangzhu626/jifen/src/internal/application/auth"
	"github.com/xiangzhu626/jifen/src/internal/infrastructure/metrics"
	"go.uber.org/zap"
)

// Handlers 路由需要的所有 handler
type Handlers struct {
	Auth   *handler.AuthHandler
	Member *handler.MemberHandler
	Points *handler.PointsHandler
	System *handler.SystemHandler
}

// RateLimits 公開路由與登入的限流設定
//
// 限流以 gin 的 ClientIP 分桶；只有 TrustedProxies 內的連線
// 才會採用 X-Forwarded-For，其餘一律取 RemoteAddr。
type RateLimits struct {
	PublicRPS      float64
	PublicBurst    int
	LoginRPS       float64
	LoginBurst     int
	TrustedProxies []string
}

// New 建立 gin engine 並註冊所有路由
//
// 公開：/api、/api/auth/login、排行榜、星球 ID 查詢、交易記錄
// 需登入：會員管理、積分餘額、增減積分、統計、管理員帳號
func New(
	h Handlers,
	verify auth.VerifyTokenUseCase,
	limits RateLimits,
	m *metrics.Metrics,
	logger *zap.Logger,
) *gin.Engine {
	r := gin.New()
	if err := r.SetTrustedProxies(limits.TrustedProxies); err != nil {
		logger.Error("invalid trusted proxies, trusting none", zap.Error(err))
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(
		middleware.TraceID(),
		middleware.Recovery(logger),
		middleware.AccessLog(logger),
		middleware.Metrics(m),
	)

	r.GET("/healthz", h.System.Health)
	r.GET("/metrics", gin.WrapH(m.Handler()))

	public := middleware.NewRateLimiter("public", limits.PublicRPS, limits.PublicBurst, m).Handler()
	login := middleware.NewRateLimiter("login", limits.LoginRPS, limits.LoginBurst, m).Handler()
	bearer := middleware.JWTAuth(verify, logger)

	api := r.Group("/api")
	api.GET("", h.System.Root)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", login, h.Auth.Login)
		authGroup.GET("/check", bearer, h.Auth.Check)
		authGroup.POST("/change-password", bearer, h.Auth.ChangePassword)
	}

	members := api.Group("/members", bearer)
	{
		members.GET("", h.Member.List)
		members.GET("/:id", h.Member.Get)
		members.POST("", h.Member.Create)
		members.PUT("/:id", h.Member.Update)
		members.DELETE("/:id", h.Member.Delete)
	}

	pointsGroup := api.Group("/points")
	{
		pointsGroup.GET("/ranking", public, h.Points.Ranking)
		pointsGroup.GET("/search", public, h.Points.Search)
		pointsGroup.GET("/transactions", public, h.Points.Transactions)
		pointsGroup.GET("/transactions/:memberId", public, h.Points.Transactions)

		pointsGroup.GET("/statistics", bearer, h.Points.Statistics)
		pointsGroup.GET("/:memberId", bearer, h.Points.Balance)
		pointsGroup.POST("/add", bearer, h.Points.Add)
		pointsGroup.POST("/deduct", bearer, h.Points.Deduct)
	}

	return r
}
