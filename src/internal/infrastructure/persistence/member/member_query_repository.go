package member

import (
	"strings"
	"time"

	"github.com/xiangzhu626/jifen/src/internal/domain/member"
	"github.com/xiangzhu626/jifen/src/internal/domain/shared"
	"github.com/xiangzhu626/jifen/src/internal/infrastructure/persistence"
	"gorm.io/gorm"
)

// MemberQueryRepositoryImpl 會員讀模型查詢（members LEFT JOIN points_accounts）
type MemberQueryRepositoryImpl struct {
	db *gorm.DB
}

// NewMemberQueryRepository 創建會員查詢倉儲
func NewMemberQueryRepository(db *gorm.DB) member.MemberQueryRepository {
	return &MemberQueryRepositoryImpl{db: db}
}

// memberRow JOIN 查詢結果
type memberRow struct {
	ID        int64
	Nickname  string
	PlanetID  *string
	Points    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

const summaryColumns = "m.id, m.nickname, m.planet_id, COALESCE(a.points, 0) AS points, m.created_at, m.updated_at"

// GetSummary 查詢單一會員及其積分（無帳戶時積分為 0）
func (r *MemberQueryRepositoryImpl) GetSummary(ctx shared.TransactionContext, id member.MemberID) (*member.MemberSummary, error) {
	var rows []memberRow
	err := r.base(ctx).
		Select(summaryColumns).
		Where("m.id = ?", id.Int64()).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, member.ErrRepositoryError.WithContext("op", "get_summary", "error", err.Error())
	}
	if len(rows) == 0 {
		return nil, member.ErrMemberNotFound.WithContext("member_id", id.String())
	}

	summary := rows[0].toSummary()
	return &summary, nil
}

// List 分頁查詢會員，依 ID 由大到小
//
// Search 不為空時，以不分大小寫的子字串比對暱稱或星球 ID。
func (r *MemberQueryRepositoryImpl) List(ctx shared.TransactionContext, criteria member.ListCriteria) (shared.Page[member.MemberSummary], error) {
	page := shared.Page[member.MemberSummary]{
		Items:    []member.MemberSummary{},
		Page:     criteria.Page.Page(),
		PageSize: criteria.Page.PageSize(),
	}

	var rows []memberRow
	err := applySearch(r.base(ctx), criteria.Search).
		Select(summaryColumns).
		Order("m.id DESC").
		Offset(criteria.Page.Offset()).
		Limit(criteria.Page.PageSize()).
		Scan(&rows).Error
	if err != nil {
		return page, member.ErrRepositoryError.WithContext("op", "list", "error", err.Error())
	}

	var total int64
	err = applySearch(r.base(ctx), criteria.Search).Count(&total).Error
	if err != nil {
		return page, member.ErrRepositoryError.WithContext("op", "count", "error", err.Error())
	}

	for _, row := range rows {
		page.Items = append(page.Items, row.toSummary())
	}
	page.Total = total
	return page, nil
}

// Count 會員總數
func (r *MemberQueryRepositoryImpl) Count(ctx shared.TransactionContext) (int64, error) {
	var total int64
	db := persistence.DBFrom(ctx, r.db)
	if err := db.Model(&persistence.MemberModel{}).Count(&total).Error; err != nil {
		return 0, member.ErrRepositoryError.WithContext("op", "count", "error", err.Error())
	}
	return total, nil
}

// ===========================
// Helper Methods
// ===========================

func (r *MemberQueryRepositoryImpl) base(ctx shared.TransactionContext) *gorm.DB {
	return persistence.DBFrom(ctx, r.db).
		Table("members AS m").
		Joins("LEFT JOIN points_accounts AS a ON a.member_id = m.id")
}

func applySearch(db *gorm.DB, search string) *gorm.DB {
	search = strings.TrimSpace(search)
	if search == "" {
		return db
	}
	pattern := "%" + escapeLike(strings.ToLower(search)) + "%"
	return db.Where(
		`LOWER(m.nickname) LIKE ? ESCAPE '\' OR LOWER(COALESCE(m.planet_id, '')) LIKE ? ESCAPE '\'`,
		pattern, pattern,
	)
}

// escapeLike 轉義 LIKE 萬用字元，搜尋字串按字面比對
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (row memberRow) toSummary() member.MemberSummary {
	planetID := ""
	if row.PlanetID != nil {
		planetID = *row.PlanetID
	}
	return member.MemberSummary{
		ID:        member.MemberIDFromInt(row.ID),
		Nickname:  row.Nickname,
		PlanetID:  planetID,
		Points:    row.Points,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
