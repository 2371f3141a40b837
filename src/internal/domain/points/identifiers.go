package points

import (
	"github.com/xiangzhu626/jifen/src/internal/domain/shared"
)

// ===========================
// 實體 ID 類型定義
// ===========================

// AccountMarker 是 AccountID 的標記類型
type AccountMarker struct{}

// AccountID 積分帳戶的唯一標識符（資料庫自增主鍵）
type AccountID = shared.EntityID[AccountMarker]

// AccountIDFromInt 從資料庫主鍵建立帳戶 ID
func AccountIDFromInt(v int64) AccountID {
	return shared.EntityIDFromInt[AccountMarker](v)
}

// TransactionMarker 是 TransactionID 的標記類型
type TransactionMarker struct{}

// TransactionID 積分交易的唯一標識符
type TransactionID = shared.EntityID[TransactionMarker]

// TransactionIDFromInt 從資料庫主鍵建立交易 ID
func TransactionIDFromInt(v int64) TransactionID {
	return shared.EntityIDFromInt[TransactionMarker](v)
}

// MemberID 會員 ID（與 member.MemberID 為同一類型）
type MemberID = shared.EntityID[shared.MemberMarker]

// MemberIDFromInt 從資料庫主鍵建立會員 ID
func MemberIDFromInt(v int64) MemberID {
	return shared.EntityIDFromInt[shared.MemberMarker](v)
}

// MemberIDFromString 從字串解析會員 ID
//
// 錯誤：不是正整數時返回 ErrInvalidMemberID
func MemberIDFromString(s string) (MemberID, error) {
	return shared.EntityIDFromString[shared.MemberMarker](s, ErrInvalidMemberID)
}
