package persistence

import "time"

// ===========================
// GORM Models
// ===========================
//
// 僅用於 Infrastructure Layer，與 Domain 聚合分離（各 Repository 內做轉換）。

// AdminModel 管理員資料表
type AdminModel struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Username     string    `gorm:"column:username;type:varchar(64);uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"column:created_at;not null"`
}

// TableName 指定資料表名稱
func (AdminModel) TableName() string {
	return "admins"
}

// MemberModel 會員資料表
//
// planet_id 允許 NULL（未設定），非 NULL 值唯一。
type MemberModel struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Nickname  string    `gorm:"column:nickname;type:varchar(50);not null"`
	PlanetID  *string   `gorm:"column:planet_id;type:varchar(64);uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (MemberModel) TableName() string {
	return "members"
}

// PointsAccountModel 積分帳戶資料表（一個會員一個帳戶）
type PointsAccountModel struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	MemberID  int64     `gorm:"column:member_id;uniqueIndex;not null"`
	Points    int       `gorm:"column:points;not null;default:0;check:points >= 0"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (PointsAccountModel) TableName() string {
	return "points_accounts"
}

// PointsTransactionModel 積分交易記錄（append-only）
type PointsTransactionModel struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	MemberID    int64     `gorm:"column:member_id;index;not null"`
	Type        string    `gorm:"column:type;type:varchar(10);not null"`
	Points      int       `gorm:"column:points;not null;check:points > 0"`
	Description string    `gorm:"column:description;type:varchar(255);not null;default:''"`
	CreatedAt   time.Time `gorm:"column:created_at;index;not null"`
}

func (PointsTransactionModel) TableName() string {
	return "points_transactions"
}

// AllModels 所有資料表模型（遷移順序）
func AllModels() []interface{} {
	return []interface{}{
		&AdminModel{},
		&MemberModel{},
		&PointsAccountModel{},
		&PointsTransactionModel{},
	}
}
