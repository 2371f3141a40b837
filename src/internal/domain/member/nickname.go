package member

import (
	"strings"
	"unicode/utf8"
)

// MaxNicknameLength 暱稱最大字元數（rune）
const MaxNicknameLength = 50

// ===========================
// Nickname Value Object
// ===========================

// Nickname 會員暱稱值對象
//
// 業務規則：
// 1. 前後空白會被去除
// 2. 不能為空
// 3. 最多 50 個字元（以 rune 計算，中文一字算一個）
type Nickname struct {
	value string
}

// NewNickname 創建暱稱（Checked Constructor）
//
// 錯誤：空白或過長時返回 ErrInvalidNickname
func NewNickname(value string) (Nickname, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Nickname{}, ErrInvalidNickname.WithContext("reason", "empty")
	}
	if utf8.RuneCountInString(trimmed) > MaxNicknameLength {
		return Nickname{}, ErrInvalidNickname.WithContext(
			"reason", "too long",
			"max_length", MaxNicknameLength,
		)
	}
	return Nickname{value: trimmed}, nil
}

// String 返回暱稱字串
func (n Nickname) String() string {
	return n.value
}

// Equals 值相等比較
func (n Nickname) Equals(other Nickname) bool {
	return n.value == other.value
}
