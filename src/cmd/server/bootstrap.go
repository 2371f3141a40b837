package main

import (
	"fmt"

	appauth "github.com/xiangzhu626/jifen/src/internal/application/auth"
	appmember "github.com/xiangzhu626/jifen/src/internal/application/member"
	"github.com/xiangzhu626/jifen/src/internal/infrastructure/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type bootstrapParams struct {
	fx.In

	Config      *config.Config
	Logger      *zap.Logger
	EnsureAdmin appauth.EnsureDefaultAdminUseCase
	SeedMembers appmember.SeedSampleMembersUseCase
}

// bootstrap 寫入預設管理員與（可選的）範例會員，可重複執行
func bootstrap(p bootstrapParams) error {
	created, err := p.EnsureAdmin.Execute(appauth.EnsureDefaultAdminCommand{
		Username: p.Config.Seed.AdminUsername,
		Password: p.Config.Seed.AdminPassword,
	})
	if err != nil {
		return fmt.Errorf("ensure default admin: %w", err)
	}
	if created {
		p.Logger.Warn("default admin created, change its password",
			zap.String("username", p.Config.Seed.AdminUsername))
	}

	if !p.Config.Seed.SampleMembers {
		return nil
	}
	if _, err := p.SeedMembers.Execute(appmember.DefaultSampleMembers); err != nil {
		return fmt.Errorf("seed sample members: %w", err)
	}
	return nil
}
