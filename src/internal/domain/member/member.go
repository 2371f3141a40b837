package member

import (
	"time"
)

// ===========================
// Member Aggregate Root
// ===========================

// Member 會員聚合根
//
// 聚合邊界：
// - 會員基本信息（ID, Nickname）
// - 外部識別碼（PlanetID，可選）
// - 審計欄位（CreatedAt, UpdatedAt）
//
// 不變量（Invariants）：
// 1. 會員必須有暱稱
// 2. PlanetID 設定時全域唯一（由資料庫約束保證）
// 3. ID 由資料庫產生，只能指派一次
// 4. CreatedAt 不可變更
//
// 積分帳戶不在此聚合內，由 points context 管理（以 MemberID 關聯）。
type Member struct {
	memberID MemberID
	nickname Nickname
	planetID PlanetID

	createdAt time.Time
	updatedAt time.Time
}

// NewMember 創建新會員（尚未持久化，ID 為空）
//
// 參數已由值對象驗證，這裡不會失敗；保留 error 返回值與其他建構函數一致。
func NewMember(nickname Nickname, planetID PlanetID) (*Member, error) {
	if nickname.String() == "" {
		return nil, ErrInvalidNickname
	}

	now := time.Now()
	return &Member{
		nickname:  nickname,
		planetID:  planetID,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructMember 重建會員聚合（用於從資料庫載入）
//
// 不執行業務規則驗證（假設資料庫中的數據已驗證），只做基本檢查。
func ReconstructMember(
	memberID MemberID,
	nickname string,
	planetID string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Member, error) {
	if nickname == "" {
		return nil, ErrInvalidNickname
	}

	return &Member{
		memberID:  memberID,
		nickname:  Nickname{value: nickname},
		planetID:  PlanetID{value: planetID},
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

// ===========================
// Member Aggregate Behavior Methods
// ===========================

// AssignID 指派資料庫產生的 ID（僅供 Repository 在新增後調用）
func (m *Member) AssignID(id MemberID) error {
	if !m.memberID.IsEmpty() {
		return ErrMemberAlreadyPersisted.WithContext(
			"current_id", m.memberID.String(),
			"new_id", id.String(),
		)
	}
	m.memberID = id
	return nil
}

// Rename 修改暱稱和星球 ID
//
// planetID 為零值時表示清除星球 ID。
// 唯一性不在這裡檢查，由 Repository.Update 的資料庫約束把關。
func (m *Member) Rename(nickname Nickname, planetID PlanetID) {
	m.nickname = nickname
	m.planetID = planetID
	m.updatedAt = time.Now()
}

// ===========================
// Member Aggregate Getters
// ===========================

// MemberID 返回會員 ID
func (m *Member) MemberID() MemberID {
	return m.memberID
}

// Nickname 返回暱稱
func (m *Member) Nickname() Nickname {
	return m.nickname
}

// PlanetID 返回星球 ID（可能為零值）
func (m *Member) PlanetID() PlanetID {
	return m.planetID
}

// HasPlanetID 是否設定了星球 ID
func (m *Member) HasPlanetID() bool {
	return !m.planetID.IsZero()
}

// CreatedAt 返回創建時間
func (m *Member) CreatedAt() time.Time {
	return m.createdAt
}

// UpdatedAt 返回更新時間
func (m *Member) UpdatedAt() time.Time {
	return m.updatedAt
}
