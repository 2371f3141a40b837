package db_fx

import (
	"context"

	"github.com/xiangzhu626/jifen/src/internal/domain/shared"
	"github.com/xiangzhu626/jifen/src/internal/infrastructure/persistence"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Provide(provideDB, provideTransactionManager)

// provideDB 開啟連線並建立資料表；database.reset 為 true 時先刪除所有資料表
func provideDB(lc fx.Lifecycle, cfg persistence.DatabaseConfig, logger *zap.Logger) (*gorm.DB, error) {
	db, err := persistence.Open(cfg, logger)
	if err != nil {
		return nil, err
	}

	migrate := persistence.AutoMigrate
	if cfg.Reset {
		logger.Warn("database reset requested, dropping all tables")
		migrate = persistence.Reset
	}
	if err := migrate(db); err != nil {
		_ = persistence.Close(db)
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return persistence.Close(db)
		},
	})
	return db, nil
}

func provideTransactionManager(db *gorm.DB) shared.TransactionManager {
	return persistence.NewGORMTransactionManager(db)
}
