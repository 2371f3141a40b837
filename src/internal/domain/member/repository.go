package member

import (
	"time"

	"github.com/xiangzhu626/jifen/src/internal/domain/shared"
)

// ===========================
// MemberRepository Interface
// ===========================

// MemberRepository 會員倉儲接口
//
// 事務管理策略：
//
// Write Operations - ctx 必須 non-nil：
//   - Save(): 新增會員，成功後把資料庫 ID 指派回聚合
//   - Update(): 更新暱稱 / 星球 ID
//   - Delete(): 刪除會員列
//
// Read Operations - ctx 可為 nil：
//   - FindByMemberID()
//
// 唯一性：
// - planetId 唯一性由資料庫唯一索引保證，不做 check-then-insert
// - 約束衝突在 Save/Update 中轉換為 ErrPlanetIDAlreadyTaken
type MemberRepository interface {
	// Save 新增會員
	//
	// 錯誤：
	// - ErrPlanetIDAlreadyTaken（星球 ID 衝突）
	// - ErrRepositoryError（其他資料庫錯誤）
	Save(ctx shared.TransactionContext, member *Member) error

	// Update 更新既有會員
	//
	// 錯誤：
	// - ErrMemberNotFound（會員不存在）
	// - ErrPlanetIDAlreadyTaken（星球 ID 與其他會員衝突）
	Update(ctx shared.TransactionContext, member *Member) error

	// Delete 刪除會員列（積分帳戶與交易記錄由調用者在同一事務中先刪除）
	//
	// 錯誤：ErrMemberNotFound
	Delete(ctx shared.TransactionContext, id MemberID) error

	// FindByMemberID 根據會員 ID 查找會員
	//
	// 錯誤：ErrMemberNotFound
	FindByMemberID(ctx shared.TransactionContext, id MemberID) (*Member, error)
}

// ===========================
// Query Side（讀模型）
// ===========================

// MemberSummary 會員列表 / 詳情的讀模型（含積分餘額）
//
// 只用於查詢結果輸出，不是聚合，不做業務判斷。
type MemberSummary struct {
	ID        MemberID
	Nickname  string
	PlanetID  string
	Points    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ListCriteria 會員列表查詢條件
type ListCriteria struct {
	Page shared.PageRequest

	// Search 不為空時，以子字串（不分大小寫）比對暱稱或星球 ID
	Search string
}

// MemberQueryRepository 會員查詢接口（跨表 JOIN 積分帳戶）
type MemberQueryRepository interface {
	// GetSummary 查詢單一會員及其積分
	//
	// 錯誤：ErrMemberNotFound
	GetSummary(ctx shared.TransactionContext, id MemberID) (*MemberSummary, error)

	// List 分頁查詢會員，依 ID 由大到小排序
	List(ctx shared.TransactionContext, criteria ListCriteria) (shared.Page[MemberSummary], error)

	// Count 會員總數
	Count(ctx shared.TransactionContext) (int64, error)
}
