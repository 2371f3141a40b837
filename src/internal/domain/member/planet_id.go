package member

import (
	"strings"
	"unicode/utf8"
)

// MaxPlanetIDLength 星球 ID 最大字元數
const MaxPlanetIDLength = 64

// ===========================
// PlanetID Value Object
// ===========================

// PlanetID 星球 ID 值對象（會員的外部識別碼，可選）
//
// 業務規則：
// 1. 可選：零值（IsZero）表示未設定，資料庫存 NULL
// 2. 設定時在所有會員中唯一（資料庫唯一約束保證）
// 3. 前後空白會被去除，去除後為空視為未設定
//
// 使用範例：
//   planetID, err := NewPlanetID("zhangsan123")
//   planetID.IsZero() // false
type PlanetID struct {
	value string
}

// NewPlanetID 創建星球 ID（Checked Constructor）
//
// 空字串（或只有空白）返回零值，不是錯誤。
func NewPlanetID(value string) (PlanetID, error) {
	trimmed := strings.TrimSpace(value)
	if utf8.RuneCountInString(trimmed) > MaxPlanetIDLength {
		return PlanetID{}, ErrInvalidPlanetID.WithContext(
			"reason", "too long",
			"max_length", MaxPlanetIDLength,
		)
	}
	return PlanetID{value: trimmed}, nil
}

// String 返回星球 ID 字串（未設定時為空字串）
func (p PlanetID) String() string {
	return p.value
}

// IsZero 是否未設定
func (p PlanetID) IsZero() bool {
	return p.value == ""
}

// Equals 值相等比較
func (p PlanetID) Equals(other PlanetID) bool {
	return p.value == other.value
}
