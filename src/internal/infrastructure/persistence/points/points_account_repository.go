package points

import (
	"time"

	"github.com/xiangzhu626/jifen/src/internal/domain/points"
	"github.com/xiangzhu626/jifen/src/internal/domain/shared"
	"github.com/xiangzhu626/jifen/src/internal/infrastructure/persistence"
	"gorm.io/gorm"
)

// ===========================
// PointsAccountRepositoryImpl
// ===========================

// PointsAccountRepositoryImpl 積分帳戶倉儲實現（GORM）
//
// 設計原則：
// - 實作 points.PointsAccountRepository 接口
// - 餘額變更以條件式 UPDATE 套用差額，不覆寫整列
// - 將 GORM 錯誤轉換為 Domain 錯誤
type PointsAccountRepositoryImpl struct {
	db *gorm.DB
}

// NewPointsAccountRepository 創建新的積分帳戶倉儲實例
func NewPointsAccountRepository(db *gorm.DB) points.PointsAccountRepository {
	return &PointsAccountRepositoryImpl{db: db}
}

// Save 保存新的積分帳戶（含建立時已增加的初始積分）
//
// 錯誤處理：
// - UNIQUE constraint 違反（member_id 重複）→ ErrAccountAlreadyExists
// - 其他資料庫錯誤 → ErrRepositoryError
func (r *PointsAccountRepositoryImpl) Save(ctx shared.TransactionContext, account *points.PointsAccount) error {
	db := persistence.DBFrom(ctx, r.db)

	model := &persistence.PointsAccountModel{
		MemberID:  account.MemberID().Int64(),
		Points:    account.Balance().Value(),
		CreatedAt: account.CreatedAt(),
		UpdatedAt: account.UpdatedAt(),
	}
	if err := db.Create(model).Error; err != nil {
		if persistence.IsUniqueConstraintError(err) {
			return points.ErrAccountAlreadyExists.WithContext(
				"member_id", account.MemberID().String(),
			)
		}
		return points.ErrRepositoryError.WithContext("op", "save_account", "error", err.Error())
	}

	account.MarkPersisted(points.AccountIDFromInt(model.ID))
	return nil
}

// FindByMemberID 根據會員 ID 查找積分帳戶
//
// 業務規則：一個會員對應一個積分帳戶（1:1 關係，由 unique index 保證）
func (r *PointsAccountRepositoryImpl) FindByMemberID(ctx shared.TransactionContext, memberID points.MemberID) (*points.PointsAccount, error) {
	db := persistence.DBFrom(ctx, r.db)

	var model persistence.PointsAccountModel
	if err := db.Where("member_id = ?", memberID.Int64()).First(&model).Error; err != nil {
		if persistence.IsNotFound(err) {
			return nil, points.ErrAccountNotFound.WithContext(
				"member_id", memberID.String(),
			)
		}
		return nil, points.ErrRepositoryError.WithContext("op", "find_account", "error", err.Error())
	}

	return points.ReconstructPointsAccount(
		points.AccountIDFromInt(model.ID),
		points.MemberIDFromInt(model.MemberID),
		model.Points,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// Update 套用自載入以來的餘額差額
//
// UPDATE points_accounts SET points = points + delta
// WHERE id = ? AND points + delta >= 0
//
// 並發扣減時，資料庫以最新餘額判斷條件，不會出現負餘額或遺失更新。
// RowsAffected == 0 時：帳戶不存在 → ErrAccountNotFound，否則 → ErrInsufficientPoints。
func (r *PointsAccountRepositoryImpl) Update(ctx shared.TransactionContext, account *points.PointsAccount) error {
	delta := account.BalanceDelta()
	if delta == 0 {
		return nil
	}

	db := persistence.DBFrom(ctx, r.db)
	result := db.Model(&persistence.PointsAccountModel{}).
		Where("id = ? AND points + ? >= 0", account.AccountID().Int64(), delta).
		Updates(map[string]interface{}{
			"points":     gorm.Expr("points + ?", delta),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return points.ErrRepositoryError.WithContext("op", "update_account", "error", result.Error.Error())
	}

	if result.RowsAffected == 0 {
		var exists int64
		if err := db.Model(&persistence.PointsAccountModel{}).
			Where("id = ?", account.AccountID().Int64()).
			Count(&exists).Error; err != nil {
			return points.ErrRepositoryError.WithContext("op", "update_account", "error", err.Error())
		}
		if exists == 0 {
			return points.ErrAccountNotFound.WithContext("member_id", account.MemberID().String())
		}
		return points.ErrInsufficientPoints.WithContext(
			"member_id", account.MemberID().String(),
			"delta", delta,
		)
	}

	account.MarkPersisted(account.AccountID())
	return nil
}

// DeleteByMemberID 刪除會員的積分帳戶（帳戶不存在時不視為錯誤）
func (r *PointsAccountRepositoryImpl) DeleteByMemberID(ctx shared.TransactionContext, memberID points.MemberID) error {
	db := persistence.DBFrom(ctx, r.db)

	if err := db.Where("member_id = ?", memberID.Int64()).Delete(&persistence.PointsAccountModel{}).Error; err != nil {
		return points.ErrRepositoryError.WithContext("op", "delete_account", "error", err.Error())
	}
	return nil
}
