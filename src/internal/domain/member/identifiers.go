package member

import (
	"github.com/xiangzhu626/jifen/src/internal/domain/shared"
)

// ===========================
// MemberID Value Object (Generic Pattern)
// ===========================

// MemberID 會員 ID 值對象（基於泛型 EntityID，資料庫自增主鍵）
//
// 與 points.MemberID 是同一個類型（共用 shared.MemberMarker），
// 會員與積分兩個 context 之間傳遞 ID 不需要轉換。
type MemberID = shared.EntityID[shared.MemberMarker]

// MemberIDFromInt 從資料庫主鍵建立會員 ID
func MemberIDFromInt(v int64) MemberID {
	return shared.EntityIDFromInt[shared.MemberMarker](v)
}

// MemberIDFromString 從字串解析會員 ID（Checked Constructor）
//
// 使用場景：
// - 從 API 路徑參數解析（/members/:id）
//
// 錯誤：不是正整數時返回 ErrInvalidMemberID
func MemberIDFromString(value string) (MemberID, error) {
	return shared.EntityIDFromString[shared.MemberMarker](value, ErrInvalidMemberID)
}
