package shared

import (
	"strconv"
	"strings"
)

// ===========================
// EntityID[T] 泛型實體 ID
// ===========================

// EntityID 是一個泛型實體 ID 值對象（資料庫自增主鍵）
//
// 設計原則：
// 1. 使用泛型消除重複代碼，所有實體共用一份實作
// 2. 類型安全：EntityID[MemberMarker] 和 EntityID[AdminMarker] 是不同類型
// 3. 不可變性（unexported field）
// 4. 零值代表「尚未持久化」的實體
//
// 泛型參數 T 只是標記類型（marker type），不需要任何方法或字段。
//
// 使用範例：
//   type MemberID = shared.EntityID[shared.MemberMarker]
//   id := shared.EntityIDFromInt[shared.MemberMarker](42)
//   id, err := shared.EntityIDFromString[shared.MemberMarker]("42", ErrInvalidMemberID)
type EntityID[T any] struct {
	value int64
}

// MemberMarker 會員 ID 標記類型
//
// 放在 shared 中：member 與 points 兩個 bounded context 都以會員 ID 為關聯鍵，
// 共用同一個標記類型，兩邊的 MemberID 就是同一個 Go 類型，不需要互相轉換。
type MemberMarker struct{}

// EntityIDFromInt 從資料庫主鍵建立實體 ID
//
// 不驗證（資料庫值視為可信）；非正數會得到空 ID。
func EntityIDFromInt[T any](v int64) EntityID[T] {
	if v <= 0 {
		return EntityID[T]{}
	}
	return EntityID[T]{value: v}
}

// EntityIDFromString 從字串解析實體 ID
//
// 參數：
//   s - 十進位整數字串（前後空白會被忽略）
//   errTemplate - 解析失敗時返回的錯誤（由調用者提供，保持錯誤類型一致）
//
// 返回：
//   EntityID[T] - 解析成功的實體 ID
//   error - 不是正整數時返回 errTemplate（附帶上下文）
func EntityIDFromString[T any](s string, errTemplate error) (EntityID[T], error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || v <= 0 {
		reason := "must be a positive integer"
		if err != nil {
			reason = err.Error()
		}
		if domainErr, ok := errTemplate.(interface {
			WithContext(keyValues ...interface{}) *DomainError
		}); ok {
			return EntityID[T]{}, domainErr.WithContext(
				"input", s,
				"parse_error", reason,
			)
		}
		return EntityID[T]{}, errTemplate
	}
	return EntityID[T]{value: v}, nil
}

// Int64 返回原始主鍵值
func (e EntityID[T]) Int64() int64 {
	return e.value
}

// String 轉換為十進位字串
func (e EntityID[T]) String() string {
	return strconv.FormatInt(e.value, 10)
}

// Equals 比較兩個 EntityID 是否相等（只能比較相同類型）
func (e EntityID[T]) Equals(other EntityID[T]) bool {
	return e.value == other.value
}

// IsEmpty 判斷是否為空 ID（零值，尚未持久化）
func (e EntityID[T]) IsEmpty() bool {
	return e.value == 0
}
