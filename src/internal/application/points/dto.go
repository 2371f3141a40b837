package points

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/xiangzhu626/jifen/src/internal/domain/points"
)

// ===========================
// Output DTOs
// ===========================

// AccountResult 積分帳戶（增加 / 扣減 / 查詢餘額的輸出）
type AccountResult struct {
	AccountID int64
	MemberID  int64
	Nickname  string
	Points    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TransactionResult 交易記錄
type TransactionResult struct {
	ID             int64
	MemberID       int64
	MemberNickname string
	Type           string
	Points         int
	Description    string
	CreatedAt      time.Time
}

// TransactionPage 交易記錄分頁結果
type TransactionPage struct {
	Items    []TransactionResult
	Total    int64
	Page     int
	PageSize int
}

// RankingEntryResult 排行榜項目
type RankingEntryResult struct {
	MemberID int64
	Nickname string
	PlanetID string
	Points   int
}

// StandingResult 星球 ID 查詢結果（含名次）
type StandingResult struct {
	RankingEntryResult
	Rank int64
}

// StatisticsResult 儀表板統計
type StatisticsResult struct {
	TotalMembers  int64
	TotalPoints   int64
	AveragePoints decimal.Decimal
	CreditedToday int64
	DebitedToday  int64
}

func newAccountResult(account *points.PointsAccount, nickname string) *AccountResult {
	return &AccountResult{
		AccountID: account.AccountID().Int64(),
		MemberID:  account.MemberID().Int64(),
		Nickname:  nickname,
		Points:    account.Balance().Value(),
		CreatedAt: account.CreatedAt(),
		UpdatedAt: account.UpdatedAt(),
	}
}

func newRankingEntryResult(e points.RankingEntry) RankingEntryResult {
	return RankingEntryResult{
		MemberID: e.MemberID.Int64(),
		Nickname: e.Nickname,
		PlanetID: e.PlanetID,
		Points:   e.Points,
	}
}
