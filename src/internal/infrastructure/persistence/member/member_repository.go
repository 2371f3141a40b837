package member

import (
	"github.com/xiangzhu626/jifen/src/internal/domain/member"
	"github.com/xiangzhu626/jifen/src/internal/domain/shared"
	"github.com/xiangzhu626/jifen/src/internal/infrastructure/persistence"
	"gorm.io/gorm"
)

// ===========================
// MemberRepositoryImpl
// ===========================

// MemberRepositoryImpl 會員倉儲實現（GORM）
//
// 設計原則：
// - 實作 member.MemberRepository 接口
// - 處理 Domain 與 GORM 模型轉換
// - 將 GORM 錯誤轉換為 Domain 錯誤
type MemberRepositoryImpl struct {
	db *gorm.DB
}

// NewMemberRepository 創建新的會員倉儲實例
func NewMemberRepository(db *gorm.DB) member.MemberRepository {
	return &MemberRepositoryImpl{db: db}
}

// Save 新增會員，成功後把自增 ID 指派回聚合
//
// 錯誤處理：
// - UNIQUE constraint 違反（planet_id 重複）→ ErrPlanetIDAlreadyTaken
// - 其他資料庫錯誤 → ErrRepositoryError
func (r *MemberRepositoryImpl) Save(ctx shared.TransactionContext, m *member.Member) error {
	db := persistence.DBFrom(ctx, r.db)

	model := toModel(m)
	if err := db.Create(model).Error; err != nil {
		return translateWriteError(err, m)
	}

	return m.AssignID(member.MemberIDFromInt(model.ID))
}

// Update 更新暱稱與星球 ID
//
// 使用 map 更新，planet_id 可被設為 NULL。
func (r *MemberRepositoryImpl) Update(ctx shared.TransactionContext, m *member.Member) error {
	db := persistence.DBFrom(ctx, r.db)

	model := toModel(m)
	result := db.Model(&persistence.MemberModel{}).
		Where("id = ?", m.MemberID().Int64()).
		Updates(map[string]interface{}{
			"nickname":   model.Nickname,
			"planet_id":  model.PlanetID,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return translateWriteError(result.Error, m)
	}
	if result.RowsAffected == 0 {
		return member.ErrMemberNotFound.WithContext("member_id", m.MemberID().String())
	}

	return nil
}

// Delete 刪除會員列
func (r *MemberRepositoryImpl) Delete(ctx shared.TransactionContext, id member.MemberID) error {
	db := persistence.DBFrom(ctx, r.db)

	result := db.Where("id = ?", id.Int64()).Delete(&persistence.MemberModel{})
	if result.Error != nil {
		return member.ErrRepositoryError.WithContext("op", "delete", "error", result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return member.ErrMemberNotFound.WithContext("member_id", id.String())
	}

	return nil
}

// FindByMemberID 根據會員 ID 查找會員
//
// 錯誤處理：
// - gorm.ErrRecordNotFound → member.ErrMemberNotFound
// - 其他資料庫錯誤 → ErrRepositoryError
func (r *MemberRepositoryImpl) FindByMemberID(ctx shared.TransactionContext, id member.MemberID) (*member.Member, error) {
	db := persistence.DBFrom(ctx, r.db)

	var model persistence.MemberModel
	if err := db.Where("id = ?", id.Int64()).First(&model).Error; err != nil {
		if persistence.IsNotFound(err) {
			return nil, member.ErrMemberNotFound.WithContext("member_id", id.String())
		}
		return nil, member.ErrRepositoryError.WithContext("op", "find", "error", err.Error())
	}

	return toDomain(&model)
}

// ===========================
// Mapper Functions
// ===========================

// toDomain 將 GORM 模型轉換為 Domain 模型（NULL planet_id → 零值）
func toDomain(m *persistence.MemberModel) (*member.Member, error) {
	planetID := ""
	if m.PlanetID != nil {
		planetID = *m.PlanetID
	}
	return member.ReconstructMember(
		member.MemberIDFromInt(m.ID),
		m.Nickname,
		planetID,
		m.CreatedAt,
		m.UpdatedAt,
	)
}

// toModel 將 Domain 模型轉換為 GORM 模型（零值 PlanetID → NULL）
func toModel(m *member.Member) *persistence.MemberModel {
	var planetID *string
	if m.HasPlanetID() {
		value := m.PlanetID().String()
		planetID = &value
	}

	return &persistence.MemberModel{
		ID:        m.MemberID().Int64(),
		Nickname:  m.Nickname().String(),
		PlanetID:  planetID,
		CreatedAt: m.CreatedAt(),
		UpdatedAt: m.UpdatedAt(),
	}
}

func translateWriteError(err error, m *member.Member) error {
	if persistence.IsUniqueConstraintError(err) {
		return member.ErrPlanetIDAlreadyTaken.WithContext("planet_id", m.PlanetID().String())
	}
	return member.ErrRepositoryError.WithContext("op", "write", "error", err.Error())
}
