package auth

import (
	"github.com/xiangzhu626/jifen/src/internal/domain/admin"
	"github.com/xiangzhu626/jifen/src/internal/domain/shared"
)

// ChangePasswordCommand 修改密碼指令
type ChangePasswordCommand struct {
	AdminID         int64
	CurrentPassword string
	NewPassword     string
}

// ChangePasswordUseCase 修改管理員密碼
//
// 錯誤：
// - ErrIncorrectPassword（當前密碼錯誤）
// - ErrInvalidNewPassword（新密碼少於 6 個字元）
// - ErrAdminNotFound
type ChangePasswordUseCase interface {
	Execute(cmd ChangePasswordCommand) error
}

// ChangePasswordUseCaseImpl 修改密碼實作
type ChangePasswordUseCaseImpl struct {
	adminRepo admin.AdminRepository
	hasher    admin.PasswordHasher
	txManager shared.TransactionManager
}

// NewChangePasswordUseCase 創建 ChangePasswordUseCase 實例
func NewChangePasswordUseCase(
	adminRepo admin.AdminRepository,
	hasher admin.PasswordHasher,
	txManager shared.TransactionManager,
) ChangePasswordUseCase {
	return &ChangePasswordUseCaseImpl{
		adminRepo: adminRepo,
		hasher:    hasher,
		txManager: txManager,
	}
}

// Execute 執行修改密碼
func (uc *ChangePasswordUseCaseImpl) Execute(cmd ChangePasswordCommand) error {
	adminID := admin.AdminIDFromInt(cmd.AdminID)
	if adminID.IsEmpty() {
		return admin.ErrAdminNotFound.WithContext("admin_id", cmd.AdminID)
	}

	return uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		a, err := uc.adminRepo.FindByID(ctx, adminID)
		if err != nil {
			return err
		}

		if err := a.ChangePassword(uc.hasher, cmd.CurrentPassword, cmd.NewPassword); err != nil {
			return err
		}

		return uc.adminRepo.UpdatePassword(ctx, a)
	})
}
