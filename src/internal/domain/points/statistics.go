package points

import "github.com/shopspring/decimal"

// StatisticsSnapshot 資料庫彙總結果（原始數值）
type StatisticsSnapshot struct {
	TotalMembers  int64
	TotalPoints   int64
	CreditedToday int64
	DebitedToday  int64
}

// Statistics 儀表板統計
type Statistics struct {
	StatisticsSnapshot

	// AveragePoints 每位會員平均積分，四捨五入到小數點後 2 位
	AveragePoints decimal.Decimal
}

// NewStatistics 由彙總結果計算統計值
//
// 使用 decimal 做除法，避免浮點誤差；沒有會員時平均為 0。
func NewStatistics(snapshot StatisticsSnapshot) Statistics {
	average := decimal.Zero
	if snapshot.TotalMembers > 0 {
		average = decimal.NewFromInt(snapshot.TotalPoints).
			Div(decimal.NewFromInt(snapshot.TotalMembers)).
			Round(2)
	}
	return Statistics{
		StatisticsSnapshot: snapshot,
		AveragePoints:      average,
	}
}
