package persistence

import (
	"fmt"

	"gorm.io/gorm"
)

// AutoMigrate 建立或更新所有資料表
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Reset 刪除所有資料表後重建（database.reset = true 時使用）
func Reset(db *gorm.DB) error {
	models := AllModels()
	// 反向刪除，交易記錄先於會員
	for i := len(models) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(models[i]); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
	}
	return AutoMigrate(db)
}
