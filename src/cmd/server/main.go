package main

import (
	"flag"

	"github.com/xiangzhu626/jifen/src/cmd/fx/config_fx"
	"github.com/xiangzhu626/jifen/src/cmd/fx/db_fx"
	"github.com/xiangzhu626/jifen/src/cmd/fx/http_fx"
	"github.com/xiangzhu626/jifen/src/cmd/fx/logging_fx"
	"github.com/xiangzhu626/jifen/src/cmd/fx/observability_fx"
	"github.com/xiangzhu626/jifen/src/cmd/fx/repository_fx"
	"github.com/xiangzhu626/jifen/src/cmd/fx/security_fx"
	"github.com/xiangzhu626/jifen/src/cmd/fx/usecase_fx"
	"go.uber.org/fx"
)

func main() {
	configDir := flag.String("config", "configs", "directory containing config.yaml")
	envFile := flag.String("env", ".env", "dotenv file loaded before the environment")
	flag.Parse()

	fx.New(appOptions(config_fx.Paths{ConfigDir: *configDir, EnvFile: *envFile})).Run()
}

// appOptions 組合所有模組；測試以 fx.ValidateApp 驗證依賴圖
func appOptions(paths config_fx.Paths) fx.Option {
	return fx.Options(
		fx.Supply(paths),
		config_fx.Module,
		logging_fx.Module,
		db_fx.Module,
		repository_fx.Module,
		security_fx.Module,
		observability_fx.Module,
		usecase_fx.Module,
		http_fx.Module,
		fx.Invoke(bootstrap),
	)
}
