package admin

import (
	"time"

	"github.com/xiangzhu626/jifen/src/internal/domain/shared"
)

// AdminRepository 管理員倉儲接口
type AdminRepository interface {
	// Save 新增管理員；用戶名重複時返回 ErrUsernameTaken
	Save(ctx shared.TransactionContext, admin *Admin) error

	// FindByID 錯誤：ErrAdminNotFound
	FindByID(ctx shared.TransactionContext, id AdminID) (*Admin, error)

	// FindByUsername 錯誤：ErrAdminNotFound
	FindByUsername(ctx shared.TransactionContext, username string) (*Admin, error)

	// UpdatePassword 保存新的密碼雜湊
	UpdatePassword(ctx shared.TransactionContext, admin *Admin) error

	// Count 管理員總數（用於判斷是否需要建立預設管理員）
	Count(ctx shared.TransactionContext) (int64, error)
}

// ===========================
// Ports（由 Infrastructure 實作）
// ===========================

// PasswordHasher 密碼雜湊
type PasswordHasher interface {
	Hash(plain string) (string, error)

	// Compare 不匹配時返回錯誤
	Compare(hash, plain string) error
}

// Claims 令牌中攜帶的管理員身份
type Claims struct {
	AdminID   AdminID
	Username  string
	ExpiresAt time.Time
}

// TokenService 簽發與驗證 bearer token
type TokenService interface {
	// Issue 簽發令牌，返回令牌字串與到期時間
	Issue(admin *Admin) (string, time.Time, error)

	// Parse 驗證令牌
	//
	// 錯誤：
	// - ErrTokenExpired（已過期）
	// - ErrInvalidToken（簽名錯誤、格式錯誤）
	Parse(token string) (Claims, error)
}
