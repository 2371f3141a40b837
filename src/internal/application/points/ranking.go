package points

import (
	"github.com/xiangzhu626/jifen/src/internal/domain/points"
)

// ===========================
// GetRanking / SearchByPlanetID Use Cases
// ===========================

// GetRankingUseCase 積分排行榜（limit 0 使用預設 10，上限 100）
type GetRankingUseCase interface {
	Execute(limit int) ([]RankingEntryResult, error)
}

// GetRankingUseCaseImpl 排行榜實作
type GetRankingUseCaseImpl struct {
	leaderboard points.LeaderboardRepository
}

// NewGetRankingUseCase 創建排行榜 Use Case
func NewGetRankingUseCase(leaderboard points.LeaderboardRepository) GetRankingUseCase {
	return &GetRankingUseCaseImpl{leaderboard: leaderboard}
}

// Execute 查詢排行榜
func (uc *GetRankingUseCaseImpl) Execute(limit int) ([]RankingEntryResult, error) {
	rankingLimit, err := points.NewRankingLimit(limit)
	if err != nil {
		return nil, err
	}

	entries, err := uc.leaderboard.Top(nil, rankingLimit)
	if err != nil {
		return nil, err
	}

	results := make([]RankingEntryResult, 0, len(entries))
	for _, e := range entries {
		results = append(results, newRankingEntryResult(e))
	}
	return results, nil
}

// SearchByPlanetIDUseCase 依星球 ID 查詢積分與名次
//
// 錯誤：
// - ErrPlanetIDRequired（空字串）
// - ErrPlanetIDNotFound（沒有會員使用此星球 ID）
type SearchByPlanetIDUseCase interface {
	Execute(planetID string) (*StandingResult, error)
}

// SearchByPlanetIDUseCaseImpl 星球 ID 查詢實作
type SearchByPlanetIDUseCaseImpl struct {
	leaderboard points.LeaderboardRepository
}

// NewSearchByPlanetIDUseCase 創建星球 ID 查詢 Use Case
func NewSearchByPlanetIDUseCase(leaderboard points.LeaderboardRepository) SearchByPlanetIDUseCase {
	return &SearchByPlanetIDUseCaseImpl{leaderboard: leaderboard}
}

// Execute 查詢名次
func (uc *SearchByPlanetIDUseCaseImpl) Execute(planetID string) (*StandingResult, error) {
	standing, err := uc.leaderboard.FindStanding(nil, planetID)
	if err != nil {
		return nil, err
	}

	return &StandingResult{
		RankingEntryResult: newRankingEntryResult(standing.RankingEntry),
		Rank:               standing.Rank,
	}, nil
}
