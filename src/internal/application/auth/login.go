package auth

import (
	"errors"
	"strings"

	"github.com/xiangzhu626/jifen/src/internal/domain/admin"
)

// ===========================
// Login Use Case
// ===========================

// LoginCommand 登入指令
type LoginCommand struct {
	Username string
	Password string
}

// LoginUseCase 管理員登入
//
// 用戶名不存在與密碼錯誤返回同一個錯誤（ErrInvalidCredentials），
// 不透露用戶名是否存在。
type LoginUseCase interface {
	Execute(cmd LoginCommand) (*LoginResult, error)
}

// LoginUseCaseImpl 登入實作
type LoginUseCaseImpl struct {
	adminRepo admin.AdminRepository
	hasher    admin.PasswordHasher
	tokens    admin.TokenService
}

// NewLoginUseCase 創建 LoginUseCase 實例
func NewLoginUseCase(
	adminRepo admin.AdminRepository,
	hasher admin.PasswordHasher,
	tokens admin.TokenService,
) LoginUseCase {
	return &LoginUseCaseImpl{
		adminRepo: adminRepo,
		hasher:    hasher,
		tokens:    tokens,
	}
}

// Execute 驗證帳密並簽發令牌
func (uc *LoginUseCaseImpl) Execute(cmd LoginCommand) (*LoginResult, error) {
	username := strings.TrimSpace(cmd.Username)
	if username == "" || cmd.Password == "" {
		return nil, admin.ErrMissingCredentials
	}

	a, err := uc.adminRepo.FindByUsername(nil, username)
	if errors.Is(err, admin.ErrAdminNotFound) {
		return nil, admin.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !a.VerifyPassword(uc.hasher, cmd.Password) {
		return nil, admin.ErrInvalidCredentials
	}

	token, expiresAt, err := uc.tokens.Issue(a)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		Admin:     newAdminInfo(a),
	}, nil
}
