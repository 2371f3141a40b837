package points

import (
	"time"

	"github.com/xiangzhu626/jifen/src/internal/domain/points"
)

// GetStatisticsUseCase 儀表板統計
type GetStatisticsUseCase interface {
	Execute() (*StatisticsResult, error)
}

// GetStatisticsUseCaseImpl 統計實作
type GetStatisticsUseCaseImpl struct {
	statistics points.StatisticsRepository
	now        func() time.Time
}

// NewGetStatisticsUseCase 創建統計 Use Case（「今日」為伺服器本地日期）
func NewGetStatisticsUseCase(statistics points.StatisticsRepository) GetStatisticsUseCase {
	return &GetStatisticsUseCaseImpl{
		statistics: statistics,
		now:        time.Now,
	}
}

// Execute 查詢統計
func (uc *GetStatisticsUseCaseImpl) Execute() (*StatisticsResult, error) {
	snapshot, err := uc.statistics.Snapshot(nil, points.DayOf(uc.now()))
	if err != nil {
		return nil, err
	}

	stats := points.NewStatistics(snapshot)
	return &StatisticsResult{
		TotalMembers:  stats.TotalMembers,
		TotalPoints:   stats.TotalPoints,
		AveragePoints: stats.AveragePoints,
		CreditedToday: stats.CreditedToday,
		DebitedToday:  stats.DebitedToday,
	}, nil
}
