package security_fx

import (
	"github.com/xiangzhu626/jifen/src/internal/domain/admin"
	"github.com/xiangzhu626/jifen/src/internal/infrastructure/config"
	"github.com/xiangzhu626/jifen/src/internal/infrastructure/security"
	"go.uber.org/fx"
)

var Module = fx.Provide(provideHasher, provideTokenService)

func provideHasher() admin.PasswordHasher {
	return security.NewBcryptHasher(security.DefaultBcryptCost)
}

func provideTokenService(cfg *config.Config) (admin.TokenService, error) {
	return security.NewJWTTokenService(security.TokenConfig{
		Secret: cfg.Auth.JWTSecret,
		TTL:    cfg.Auth.TokenTTL,
		Issuer: cfg.Auth.Issuer,
	})
}
