package admin

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/xiangzhu626/jifen/src/internal/domain/shared"
)

// AdminMarker 管理員 ID 標記類型
type AdminMarker struct{}

// AdminID 管理員 ID（資料庫自增主鍵）
type AdminID = shared.EntityID[AdminMarker]

// AdminIDFromInt 從資料庫主鍵建立管理員 ID
func AdminIDFromInt(v int64) AdminID {
	return shared.EntityIDFromInt[AdminMarker](v)
}

// MinPasswordLength 新密碼最短長度
const MinPasswordLength = 6

// ===========================
// Admin Aggregate Root
// ===========================

// Admin 管理員聚合根
//
// 不變量：
// 1. 用戶名不為空且唯一（唯一性由資料庫保證）
// 2. 只保存密碼雜湊，不保存明文
type Admin struct {
	adminID      AdminID
	username     string
	passwordHash string
	createdAt    time.Time
}

// NewAdmin 建立新管理員（passwordHash 由 PasswordHasher 產生）
func NewAdmin(username, passwordHash string) (*Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrInvalidUsername
	}
	if passwordHash == "" {
		return nil, ErrInvalidNewPassword.WithContext("reason", "empty hash")
	}
	return &Admin{
		username:     username,
		passwordHash: passwordHash,
		createdAt:    time.Now(),
	}, nil
}

// ReconstructAdmin 從資料庫重建管理員
func ReconstructAdmin(id AdminID, username, passwordHash string, createdAt time.Time) *Admin {
	return &Admin{
		adminID:      id,
		username:     username,
		passwordHash: passwordHash,
		createdAt:    createdAt,
	}
}

// AssignID 指派資料庫產生的 ID
func (a *Admin) AssignID(id AdminID) {
	a.adminID = id
}

// VerifyPassword 驗證明文密碼
func (a *Admin) VerifyPassword(hasher PasswordHasher, plain string) bool {
	return hasher.Compare(a.passwordHash, plain) == nil
}

// ChangePassword 修改密碼
//
// 業務規則：
// - 當前密碼必須正確（ErrIncorrectPassword）
// - 新密碼至少 6 個字元（ErrInvalidNewPassword）
func (a *Admin) ChangePassword(hasher PasswordHasher, currentPassword, newPassword string) error {
	if !a.VerifyPassword(hasher, currentPassword) {
		return ErrIncorrectPassword
	}
	if err := ValidateNewPassword(newPassword); err != nil {
		return err
	}

	hash, err := hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	a.passwordHash = hash
	return nil
}

// ValidateNewPassword 檢查新密碼長度
func ValidateNewPassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrInvalidNewPassword.WithContext("min_length", MinPasswordLength)
	}
	return nil
}

// ===========================
// Getters
// ===========================

func (a *Admin) AdminID() AdminID {
	return a.adminID
}

func (a *Admin) Username() string {
	return a.username
}

func (a *Admin) PasswordHash() string {
	return a.passwordHash
}

func (a *Admin) CreatedAt() time.Time {
	return a.createdAt
}
