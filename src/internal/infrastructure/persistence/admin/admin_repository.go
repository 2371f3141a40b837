package admin

import (
	"github.com/xiangzhu626/jifen/src/internal/domain/admin"
	"github.com/xiangzhu626/jifen/src/internal/domain/shared"
	"github.com/xiangzhu626/jifen/src/internal/infrastructure/persistence"
	"gorm.io/gorm"
)

// AdminRepositoryImpl 管理員倉儲實現（GORM）
type AdminRepositoryImpl struct {
	db *gorm.DB
}

// NewAdminRepository 創建管理員倉儲
func NewAdminRepository(db *gorm.DB) admin.AdminRepository {
	return &AdminRepositoryImpl{db: db}
}

// Save 新增管理員
func (r *AdminRepositoryImpl) Save(ctx shared.TransactionContext, a *admin.Admin) error {
	db := persistence.DBFrom(ctx, r.db)

	model := &persistence.AdminModel{
		Username:     a.Username(),
		PasswordHash: a.PasswordHash(),
		CreatedAt:    a.CreatedAt(),
	}
	if err := db.Create(model).Error; err != nil {
		if persistence.IsUniqueConstraintError(err) {
			return admin.ErrUsernameTaken.WithContext("username", a.Username())
		}
		return admin.ErrRepositoryError.WithContext("op", "save", "error", err.Error())
	}

	a.AssignID(admin.AdminIDFromInt(model.ID))
	return nil
}

// FindByID 根據 ID 查找
func (r *AdminRepositoryImpl) FindByID(ctx shared.TransactionContext, id admin.AdminID) (*admin.Admin, error) {
	return r.findOne(ctx, "id = ?", id.Int64())
}

// FindByUsername 根據用戶名查找（精確比對）
func (r *AdminRepositoryImpl) FindByUsername(ctx shared.TransactionContext, username string) (*admin.Admin, error) {
	return r.findOne(ctx, "username = ?", username)
}

// UpdatePassword 保存新的密碼雜湊
func (r *AdminRepositoryImpl) UpdatePassword(ctx shared.TransactionContext, a *admin.Admin) error {
	db := persistence.DBFrom(ctx, r.db)

	result := db.Model(&persistence.AdminModel{}).
		Where("id = ?", a.AdminID().Int64()).
		Update("password_hash", a.PasswordHash())
	if result.Error != nil {
		return admin.ErrRepositoryError.WithContext("op", "update_password", "error", result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return admin.ErrAdminNotFound.WithContext("admin_id", a.AdminID().String())
	}
	return nil
}

// Count 管理員總數
func (r *AdminRepositoryImpl) Count(ctx shared.TransactionContext) (int64, error) {
	var total int64
	if err := persistence.DBFrom(ctx, r.db).Model(&persistence.AdminModel{}).Count(&total).Error; err != nil {
		return 0, admin.ErrRepositoryError.WithContext("op", "count", "error", err.Error())
	}
	return total, nil
}

func (r *AdminRepositoryImpl) findOne(ctx shared.TransactionContext, query string, arg interface{}) (*admin.Admin, error) {
	db := persistence.DBFrom(ctx, r.db)

	var model persistence.AdminModel
	if err := db.Where(query, arg).First(&model).Error; err != nil {
		if persistence.IsNotFound(err) {
			return nil, admin.ErrAdminNotFound
		}
		return nil, admin.ErrRepositoryError.WithContext("op", "find", "error", err.Error())
	}

	return admin.ReconstructAdmin(
		admin.AdminIDFromInt(model.ID),
		model.Username,
		model.PasswordHash,
		model.CreatedAt,
	), nil
}
