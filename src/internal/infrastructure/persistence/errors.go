package persistence

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// IsUniqueConstraintError 判斷是否為唯一約束錯誤
//
// 開啟 TranslateError 時驅動會轉換為 gorm.ErrDuplicatedKey；
// 未轉換的情況以錯誤訊息判斷：
// - PostgreSQL: "duplicate key value violates unique constraint"
// - SQLite: "UNIQUE constraint failed"
func IsUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key value violates unique constraint") ||
		strings.Contains(errMsg, "unique constraint failed")
}

// IsNotFound 判斷是否為查無資料
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
