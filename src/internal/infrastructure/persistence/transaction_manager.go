package persistence

import (
	"github.com/xiangzhu626/jifen/src/internal/domain/shared"
	"gorm.io/gorm"
)

// GORMTransactionManager 以 gorm.DB.Transaction 實作 shared.TransactionManager
type GORMTransactionManager struct {
	db *gorm.DB
}

// NewGORMTransactionManager 創建事務管理器
func NewGORMTransactionManager(db *gorm.DB) shared.TransactionManager {
	return &GORMTransactionManager{db: db}
}

// InTransaction 在單一資料庫事務中執行 fn
//
// - fn 返回 nil：提交
// - fn 返回錯誤：回滾並原樣返回該錯誤
// - fn panic：回滾後重新 panic
func (m *GORMTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewGORMTransactionContext(tx))
	})
}
