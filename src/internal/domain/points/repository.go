package points

import (
	"time"

	"github.com/xiangzhu626/jifen/src/internal/domain/shared"
)

// ===========================
// PointsAccount Repository 介面
// ===========================

// PointsAccountRepository 積分帳戶倉儲介面
//
// 事務使用範例：
//   txManager.InTransaction(func(ctx shared.TransactionContext) error {
//       account, err := repo.FindByMemberID(ctx, memberID)
//       ...
//       tx, err := account.Debit(amount, description)
//       ...
//       if err := repo.Update(ctx, account); err != nil {
//           return err
//       }
//       return txRepo.Append(ctx, tx)
//   })
type PointsAccountRepository interface {
	// Save 保存新的積分帳戶（含初始餘額）
	// 錯誤：ErrAccountAlreadyExists（如果 MemberID 已有帳戶）
	Save(ctx shared.TransactionContext, account *PointsAccount) error

	// FindByMemberID 根據會員 ID 查找積分帳戶
	// 錯誤：ErrAccountNotFound
	FindByMemberID(ctx shared.TransactionContext, memberID MemberID) (*PointsAccount, error)

	// Update 套用帳戶自載入以來的餘額差額
	//
	// 以單一條件式 UPDATE 執行：points = points + delta WHERE points + delta >= 0。
	// 錯誤：
	// - ErrAccountNotFound（帳戶不存在）
	// - ErrInsufficientPoints（並發扣減後餘額不足，條件不成立）
	Update(ctx shared.TransactionContext, account *PointsAccount) error

	// DeleteByMemberID 刪除會員的積分帳戶（會員刪除時使用）
	DeleteByMemberID(ctx shared.TransactionContext, memberID MemberID) error
}

// ===========================
// PointsTransaction Repository 介面
// ===========================

// TransactionQuery 交易記錄查詢條件
type TransactionQuery struct {
	// MemberID 為空時查詢所有會員的交易（跨會員動態）
	MemberID MemberID
	Page     shared.PageRequest
	Range    DateRange
}

// AllMembers 是否為跨會員查詢
func (q TransactionQuery) AllMembers() bool {
	return q.MemberID.IsEmpty()
}

// TransactionView 交易記錄讀模型（含會員暱稱）
type TransactionView struct {
	ID             TransactionID
	MemberID       MemberID
	MemberNickname string
	Type           TransactionType
	Points         int
	Description    string
	CreatedAt      time.Time
}

// PointsTransactionRepository 交易記錄倉儲介面（append-only）
type PointsTransactionRepository interface {
	// Append 新增交易記錄（ctx 必須 non-nil），成功後指派 ID
	Append(ctx shared.TransactionContext, tx *PointsTransaction) error

	// List 依建立時間由新到舊分頁查詢
	List(ctx shared.TransactionContext, query TransactionQuery) ([]TransactionView, error)

	// Count 符合條件的總筆數
	Count(ctx shared.TransactionContext, query TransactionQuery) (int64, error)

	// DeleteByMemberID 刪除會員的所有交易（只在刪除會員時使用）
	DeleteByMemberID(ctx shared.TransactionContext, memberID MemberID) (int64, error)
}

// ===========================
// 排行榜 / 統計（讀模型）
// ===========================

// RankingEntry 排行榜項目
type RankingEntry struct {
	MemberID MemberID
	Nickname string
	PlanetID string
	Points   int
}

// Standing 會員名次（rank = 1 + 積分嚴格高於此會員的人數）
type Standing struct {
	RankingEntry
	Rank int64
}

// LeaderboardRepository 排行榜查詢介面
type LeaderboardRepository interface {
	// Top 依積分由高到低，積分相同時依會員 ID 由小到大
	Top(ctx shared.TransactionContext, limit RankingLimit) ([]RankingEntry, error)

	// FindStanding 依星球 ID 查詢會員積分與名次
	// 錯誤：ErrPlanetIDNotFound
	FindStanding(ctx shared.TransactionContext, planetID string) (*Standing, error)
}

// StatisticsRepository 統計查詢介面
type StatisticsRepository interface {
	// Snapshot 彙總會員數、積分總量，以及 day 範圍內的增加 / 扣減總量
	Snapshot(ctx shared.TransactionContext, day DateRange) (StatisticsSnapshot, error)
}
