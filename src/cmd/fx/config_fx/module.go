package config_fx

import (
	"github.com/xiangzhu626/jifen/src/internal/infrastructure/config"
	"github.com/xiangzhu626/jifen/src/internal/infrastructure/persistence"
	"go.uber.org/fx"
)

// Paths 設定檔位置（由 main 的命令列參數提供）
type Paths struct {
	ConfigDir string
	EnvFile   string
}

var Module = fx.Provide(provideConfig, provideDatabaseConfig)

func provideConfig(paths Paths) (*config.Config, error) {
	return config.Load(paths.ConfigDir, paths.EnvFile)
}

func provideDatabaseConfig(cfg *config.Config) persistence.DatabaseConfig {
	return cfg.Database
}
