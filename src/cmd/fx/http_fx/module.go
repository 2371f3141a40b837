package http_fx

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xiangzhu626/jifen/src/internal/api/handler"
	"github.com/xiangzhu626/jifen/src/internal/api/router"
	appauth "github.com/xiangzhu626/jifen/src/internal/application/auth"
	apppoints "github.com/xiangzhu626/jifen/src/internal/application/points"
	"github.com/xiangzhu626/jifen/src/internal/infrastructure/config"
	"github.com/xiangzhu626/jifen/src/internal/infrastructure/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Options(
	fx.Provide(
		handler.NewAuthHandler,
		handler.NewMemberHandler,
		handler.NewSystemHandler,
		providePointsHandler,
		provideRouter,
		provideServer,
	),
	fx.Invoke(registerServer),
)

// pointsParams 積分 handler 的依賴
type pointsParams struct {
	fx.In

	Balance      apppoints.GetPointsBalanceUseCase
	Credit       apppoints.CreditPointsUseCase
	Debit        apppoints.DebitPointsUseCase
	Transactions apppoints.ListTransactionsUseCase
	Ranking      apppoints.GetRankingUseCase
	Search       apppoints.SearchByPlanetIDUseCase
	Statistics   apppoints.GetStatisticsUseCase
	Logger       *zap.Logger
}

func providePointsHandler(p pointsParams) *handler.PointsHandler {
	return handler.NewPointsHandler(handler.PointsUseCases{
		Balance:      p.Balance,
		Credit:       p.Credit,
		Debit:        p.Debit,
		Transactions: p.Transactions,
		Ranking:      p.Ranking,
		Search:       p.Search,
		Statistics:   p.Statistics,
	}, p.Logger)
}

type routerParams struct {
	fx.In

	Auth    *handler.AuthHandler
	Member  *handler.MemberHandler
	Points  *handler.PointsHandler
	System  *handler.SystemHandler
	Verify  appauth.VerifyTokenUseCase
	Config  *config.Config
	Metrics *metrics.Metrics
	Logger  *zap.Logger
}

func provideRouter(p routerParams) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	return router.New(
		router.Handlers{
			Auth:   p.Auth,
			Member: p.Member,
			Points: p.Points,
			System: p.System,
		},
		p.Verify,
		router.RateLimits{
			PublicRPS:      p.Config.RateLimit.PublicRPS,
			PublicBurst:    p.Config.RateLimit.PublicBurst,
			LoginRPS:       p.Config.RateLimit.LoginRPS,
			LoginBurst:     p.Config.RateLimit.LoginBurst,
			TrustedProxies: p.Config.Server.TrustedProxies,
		},
		p.Metrics,
		p.Logger,
	)
}

func provideServer(cfg *config.Config, engine *gin.Engine) *http.Server {
	return &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}

// registerServer 啟動時開始監聽；停止時在 shutdown_timeout 內優雅關閉
func registerServer(lc fx.Lifecycle, srv *http.Server, cfg *config.Config, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("http server listening", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			logger.Info("stopping http server")
			return srv.Shutdown(ctx)
		},
	})
}
