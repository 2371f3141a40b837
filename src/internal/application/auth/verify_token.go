package auth

import (
	"errors"
	"strings"

	"github.com/xiangzhu626/jifen/src/internal/domain/admin"
)

// VerifyTokenUseCase 驗證 bearer token，返回令牌對應的管理員
//
// 錯誤：
// - ErrMissingToken
// - ErrInvalidToken（簽名錯誤，或管理員已不存在）
// - ErrTokenExpired
type VerifyTokenUseCase interface {
	Execute(token string) (*AdminInfo, error)
}

// VerifyTokenUseCaseImpl 令牌驗證實作
type VerifyTokenUseCaseImpl struct {
	adminRepo admin.AdminRepository
	tokens    admin.TokenService
}

// NewVerifyTokenUseCase 創建 VerifyTokenUseCase 實例
func NewVerifyTokenUseCase(adminRepo admin.AdminRepository, tokens admin.TokenService) VerifyTokenUseCase {
	return &VerifyTokenUseCaseImpl{
		adminRepo: adminRepo,
		tokens:    tokens,
	}
}

// Execute 驗證令牌
func (uc *VerifyTokenUseCaseImpl) Execute(token string) (*AdminInfo, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, admin.ErrMissingToken
	}

	claims, err := uc.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	a, err := uc.adminRepo.FindByID(nil, claims.AdminID)
	if errors.Is(err, admin.ErrAdminNotFound) {
		return nil, admin.ErrInvalidToken.WithContext("admin_id", claims.AdminID.Int64())
	}
	if err != nil {
		return nil, err
	}

	info := newAdminInfo(a)
	return &info, nil
}
