package auth

import (
	"github.com/xiangzhu626/jifen/src/internal/domain/admin"
	"go.uber.org/zap"
)

// EnsureDefaultAdminCommand 預設管理員帳密
type EnsureDefaultAdminCommand struct {
	Username string
	Password string
}

// EnsureDefaultAdminUseCase 沒有任何管理員時建立預設管理員
//
// 可重複執行：已有管理員時不做任何事，返回 false。
type EnsureDefaultAdminUseCase interface {
	Execute(cmd EnsureDefaultAdminCommand) (bool, error)
}

// EnsureDefaultAdminUseCaseImpl 預設管理員實作
type EnsureDefaultAdminUseCaseImpl struct {
	adminRepo admin.AdminRepository
	hasher    admin.PasswordHasher
	logger    *zap.Logger
}

// NewEnsureDefaultAdminUseCase 創建 EnsureDefaultAdminUseCase 實例
func NewEnsureDefaultAdminUseCase(
	adminRepo admin.AdminRepository,
	hasher admin.PasswordHasher,
	logger *zap.Logger,
) EnsureDefaultAdminUseCase {
	return &EnsureDefaultAdminUseCaseImpl{
		adminRepo: adminRepo,
		hasher:    hasher,
		logger:    logger,
	}
}

// Execute 建立預設管理員
func (uc *EnsureDefaultAdminUseCaseImpl) Execute(cmd EnsureDefaultAdminCommand) (bool, error) {
	count, err := uc.adminRepo.Count(nil)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	if err := admin.ValidateNewPassword(cmd.Password); err != nil {
		return false, err
	}
	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		return false, err
	}
	a, err := admin.NewAdmin(cmd.Username, hash)
	if err != nil {
		return false, err
	}
	if err := uc.adminRepo.Save(nil, a); err != nil {
		return false, err
	}

	uc.logger.Info("default admin created", zap.String("username", a.Username()))
	return true, nil
}
