package points

import (
	"strings"
	"time"
)

// DateLayout 查詢參數日期格式
const DateLayout = "2006-01-02"

// DateRange 交易查詢日期範圍（以伺服器當地時區的日曆日計算）
//
// 規則：
// - 起日包含當天 00:00:00
// - 迄日包含當天整天（查詢時使用「隔天 00:00:00 之前」）
// - 兩端都可省略，零值代表不篩選
type DateRange struct {
	from  time.Time
	until time.Time
}

// NewDateRange 從 YYYY-MM-DD 字串建立日期範圍
//
// 錯誤：格式錯誤或起日晚於迄日時返回 ErrInvalidDateRange
func NewDateRange(start, end string, loc *time.Location) (DateRange, error) {
	if loc == nil {
		loc = time.Local
	}

	var r DateRange
	if s := strings.TrimSpace(start); s != "" {
		d, err := time.ParseInLocation(DateLayout, s, loc)
		if err != nil {
			return DateRange{}, ErrInvalidDateRange.WithContext("start_date", start)
		}
		r.from = d
	}
	if e := strings.TrimSpace(end); e != "" {
		d, err := time.ParseInLocation(DateLayout, e, loc)
		if err != nil {
			return DateRange{}, ErrInvalidDateRange.WithContext("end_date", end)
		}
		r.until = d.AddDate(0, 0, 1)
	}
	if !r.from.IsZero() && !r.until.IsZero() && !r.from.Before(r.until) {
		return DateRange{}, ErrInvalidDateRange.WithContext(
			"start_date", start,
			"end_date", end,
		)
	}
	return r, nil
}

// DayOf 包含 t 所在日曆日的範圍
func DayOf(t time.Time) DateRange {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return DateRange{from: start, until: start.AddDate(0, 0, 1)}
}

// From 起始時間（含），未設定時 ok 為 false
func (r DateRange) From() (time.Time, bool) {
	return r.from, !r.from.IsZero()
}

// Until 結束時間（不含），未設定時 ok 為 false
func (r DateRange) Until() (time.Time, bool) {
	return r.until, !r.until.IsZero()
}

// IsZero 是否沒有任何篩選條件
func (r DateRange) IsZero() bool {
	return r.from.IsZero() && r.until.IsZero()
}

// Contains t 是否落在範圍內
func (r DateRange) Contains(t time.Time) bool {
	if !r.from.IsZero() && t.Before(r.from) {
		return false
	}
	if !r.until.IsZero() && !t.Before(r.until) {
		return false
	}
	return true
}
