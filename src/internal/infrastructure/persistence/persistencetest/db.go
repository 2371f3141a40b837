package persistencetest

import (
	"testing"

	"github.com/xiangzhu626/jifen/src/internal/infrastructure/persistence"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ===========================
// 測試輔助函數
// ===========================

// SetupTestDB 創建測試用的 SQLite in-memory 資料庫
// 使用場景：整合測試，測試 Repository 與真實資料庫的互動
//
// 每個測試使用獨立的 in-memory DB；連線數限制為 1，
// 確保所有查詢看到同一個 in-memory 資料庫。
// 測試結束時自動關閉連線。
func SetupTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent), // 測試時靜音
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := persistence.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}
