package points

import (
	"time"

	"github.com/xiangzhu626/jifen/src/internal/domain/points"
	"github.com/xiangzhu626/jifen/src/internal/domain/shared"
	"github.com/xiangzhu626/jifen/src/internal/infrastructure/persistence"
	"gorm.io/gorm"
)

// PointsTransactionRepositoryImpl 積分交易記錄倉儲（append-only）
type PointsTransactionRepositoryImpl struct {
	db *gorm.DB
}

// NewPointsTransactionRepository 創建交易記錄倉儲
func NewPointsTransactionRepository(db *gorm.DB) points.PointsTransactionRepository {
	return &PointsTransactionRepositoryImpl{db: db}
}

// transactionRow 交易記錄 JOIN 會員暱稱
type transactionRow struct {
	ID             int64
	MemberID       int64
	MemberNickname string
	Type           string
	Points         int
	Description    string
	CreatedAt      time.Time
}

// Append 新增一筆交易記錄並指派 ID
func (r *PointsTransactionRepositoryImpl) Append(ctx shared.TransactionContext, tx *points.PointsTransaction) error {
	db := persistence.DBFrom(ctx, r.db)

	model := &persistence.PointsTransactionModel{
		MemberID:    tx.MemberID().Int64(),
		Type:        tx.Type().String(),
		Points:      tx.Points().Value(),
		Description: tx.Description().String(),
		CreatedAt:   tx.CreatedAt(),
	}
	if err := db.Create(model).Error; err != nil {
		return points.ErrRepositoryError.WithContext("op", "append_transaction", "error", err.Error())
	}

	tx.AssignID(points.TransactionIDFromInt(model.ID))
	return nil
}

// List 依建立時間由新到舊分頁查詢（時間相同時 ID 大者在前）
func (r *PointsTransactionRepositoryImpl) List(ctx shared.TransactionContext, query points.TransactionQuery) ([]points.TransactionView, error) {
	var rows []transactionRow
	err := r.filtered(ctx, query).
		Select("t.id, t.member_id, COALESCE(m.nickname, '') AS member_nickname, t.type, t.points, t.description, t.created_at").
		Joins("LEFT JOIN members AS m ON m.id = t.member_id").
		Order("t.created_at DESC").
		Order("t.id DESC").
		Offset(query.Page.Offset()).
		Limit(query.Page.PageSize()).
		Scan(&rows).Error
	if err != nil {
		return nil, points.ErrRepositoryError.WithContext("op", "list_transactions", "error", err.Error())
	}

	views := make([]points.TransactionView, 0, len(rows))
	for _, row := range rows {
		views = append(views, points.TransactionView{
			ID:             points.TransactionIDFromInt(row.ID),
			MemberID:       points.MemberIDFromInt(row.MemberID),
			MemberNickname: row.MemberNickname,
			Type:           points.TransactionType(row.Type),
			Points:         row.Points,
			Description:    row.Description,
			CreatedAt:      row.CreatedAt,
		})
	}
	return views, nil
}

// Count 符合條件的總筆數
func (r *PointsTransactionRepositoryImpl) Count(ctx shared.TransactionContext, query points.TransactionQuery) (int64, error) {
	var total int64
	if err := r.filtered(ctx, query).Count(&total).Error; err != nil {
		return 0, points.ErrRepositoryError.WithContext("op", "count_transactions", "error", err.Error())
	}
	return total, nil
}

// DeleteByMemberID 刪除會員的所有交易，返回刪除筆數
func (r *PointsTransactionRepositoryImpl) DeleteByMemberID(ctx shared.TransactionContext, memberID points.MemberID) (int64, error) {
	db := persistence.DBFrom(ctx, r.db)

	result := db.Where("member_id = ?", memberID.Int64()).Delete(&persistence.PointsTransactionModel{})
	if result.Error != nil {
		return 0, points.ErrRepositoryError.WithContext("op", "delete_transactions", "error", result.Error.Error())
	}
	return result.RowsAffected, nil
}

// filtered 套用會員與日期範圍條件
func (r *PointsTransactionRepositoryImpl) filtered(ctx shared.TransactionContext, query points.TransactionQuery) *gorm.DB {
	db := persistence.DBFrom(ctx, r.db).Table("points_transactions AS t")

	if !query.AllMembers() {
		db = db.Where("t.member_id = ?", query.MemberID.Int64())
	}
	if from, ok := query.Range.From(); ok {
		db = db.Where("t.created_at >= ?", from)
	}
	if until, ok := query.Range.Until(); ok {
		db = db.Where("t.created_at < ?", until)
	}
	return db
}
