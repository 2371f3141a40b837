package points

import (
	"strings"

	"github.com/xiangzhu626/jifen/src/internal/domain/points"
	"github.com/xiangzhu626/jifen/src/internal/domain/shared"
	"github.com/xiangzhu626/jifen/src/internal/infrastructure/persistence"
	"gorm.io/gorm"
)

// ===========================
// 排行榜
// ===========================

// LeaderboardRepositoryImpl 排行榜查詢（GORM）
type LeaderboardRepositoryImpl struct {
	db *gorm.DB
}

// NewLeaderboardRepository 創建排行榜查詢倉儲
func NewLeaderboardRepository(db *gorm.DB) points.LeaderboardRepository {
	return &LeaderboardRepositoryImpl{db: db}
}

type rankingRow struct {
	MemberID int64
	Nickname string
	PlanetID *string
	Points   int
}

func (row rankingRow) toEntry() points.RankingEntry {
	planetID := ""
	if row.PlanetID != nil {
		planetID = *row.PlanetID
	}
	return points.RankingEntry{
		MemberID: points.MemberIDFromInt(row.MemberID),
		Nickname: row.Nickname,
		PlanetID: planetID,
		Points:   row.Points,
	}
}

const rankingColumns = "m.id AS member_id, m.nickname, m.planet_id, COALESCE(a.points, 0) AS points"

// Top 依積分由高到低，積分相同時依會員 ID 由小到大
func (r *LeaderboardRepositoryImpl) Top(ctx shared.TransactionContext, limit points.RankingLimit) ([]points.RankingEntry, error) {
	var rows []rankingRow
	err := r.base(ctx).
		Select(rankingColumns).
		Order("COALESCE(a.points, 0) DESC").
		Order("m.id ASC").
		Limit(limit.Value()).
		Scan(&rows).Error
	if err != nil {
		return nil, points.ErrRepositoryError.WithContext("op", "ranking", "error", err.Error())
	}

	entries := make([]points.RankingEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.toEntry())
	}
	return entries, nil
}

// FindStanding 依星球 ID（精確比對）查詢會員積分與名次
//
// 名次 = 1 + 積分嚴格高於此會員的帳戶數，同分同名次。
func (r *LeaderboardRepositoryImpl) FindStanding(ctx shared.TransactionContext, planetID string) (*points.Standing, error) {
	planetID = strings.TrimSpace(planetID)
	if planetID == "" {
		return nil, points.ErrPlanetIDRequired
	}

	var rows []rankingRow
	err := r.base(ctx).
		Select(rankingColumns).
		Where("m.planet_id = ?", planetID).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, points.ErrRepositoryError.WithContext("op", "standing", "error", err.Error())
	}
	if len(rows) == 0 {
		return nil, points.ErrPlanetIDNotFound.WithContext("planet_id", planetID)
	}

	var higher int64
	err = persistence.DBFrom(ctx, r.db).
		Model(&persistence.PointsAccountModel{}).
		Where("points > ?", rows[0].Points).
		Count(&higher).Error
	if err != nil {
		return nil, points.ErrRepositoryError.WithContext("op", "standing", "error", err.Error())
	}

	return &points.Standing{
		RankingEntry: rows[0].toEntry(),
		Rank:         higher + 1,
	}, nil
}

func (r *LeaderboardRepositoryImpl) base(ctx shared.TransactionContext) *gorm.DB {
	return persistence.DBFrom(ctx, r.db).
		Table("members AS m").
		Joins("LEFT JOIN points_accounts AS a ON a.member_id = m.id")
}

// ===========================
// 統計
// ===========================

// StatisticsRepositoryImpl 統計查詢（GORM）
type StatisticsRepositoryImpl struct {
	db *gorm.DB
}

// NewStatisticsRepository 創建統計查詢倉儲
func NewStatisticsRepository(db *gorm.DB) points.StatisticsRepository {
	return &StatisticsRepositoryImpl{db: db}
}

type dailyTotals struct {
	Credited int64
	Debited  int64
}

// Snapshot 彙總會員數、積分總量與 day 範圍內的增加 / 扣減總量
func (r *StatisticsRepositoryImpl) Snapshot(ctx shared.TransactionContext, day points.DateRange) (points.StatisticsSnapshot, error) {
	db := persistence.DBFrom(ctx, r.db)
	var snapshot points.StatisticsSnapshot

	if err := db.Model(&persistence.MemberModel{}).Count(&snapshot.TotalMembers).Error; err != nil {
		return snapshot, points.ErrRepositoryError.WithContext("op", "statistics", "error", err.Error())
	}

	err := db.Model(&persistence.PointsAccountModel{}).
		Select("COALESCE(SUM(points), 0)").
		Scan(&snapshot.TotalPoints).Error
	if err != nil {
		return snapshot, points.ErrRepositoryError.WithContext("op", "statistics", "error", err.Error())
	}

	query := db.Model(&persistence.PointsTransactionModel{}).
		Select(
			"COALESCE(SUM(CASE WHEN type = ? THEN points ELSE 0 END), 0) AS credited, "+
				"COALESCE(SUM(CASE WHEN type = ? THEN points ELSE 0 END), 0) AS debited",
			points.TransactionTypeCredit.String(),
			points.TransactionTypeDebit.String(),
		)
	if from, ok := day.From(); ok {
		query = query.Where("created_at >= ?", from)
	}
	if until, ok := day.Until(); ok {
		query = query.Where("created_at < ?", until)
	}

	var totals dailyTotals
	if err := query.Scan(&totals).Error; err != nil {
		return snapshot, points.ErrRepositoryError.WithContext("op", "statistics", "error", err.Error())
	}
	snapshot.CreditedToday = totals.Credited
	snapshot.DebitedToday = totals.Debited

	return snapshot, nil
}
