package points

import (
	"math"
	"strings"
	"unicode/utf8"
)

// ===========================
// PointsAmount
// ===========================

// MaxPoints 單一帳戶積分上限（資料庫 INTEGER 欄位可容納的範圍）
const MaxPoints = math.MaxInt32

// PointsAmount 積分數量值對象
// 設計原則：值對象不可變、自我驗證
type PointsAmount struct {
	value int
}

// NewPointsAmount 建構函數（checked 版本）
//
// 建構約束：0 <= value <= MaxPoints
func NewPointsAmount(value int) (PointsAmount, error) {
	if value < 0 {
		return PointsAmount{}, ErrNegativePointsAmount.WithContext("value", value)
	}
	if value > MaxPoints {
		return PointsAmount{}, ErrPointsOverflow.WithContext("value", value)
	}
	return PointsAmount{value: value}, nil
}

// NewPositivePointsAmount 增加 / 扣減時使用的建構函數
//
// 業務規則：每一筆交易的積分必須 > 0
func NewPositivePointsAmount(value int) (PointsAmount, error) {
	if value <= 0 {
		return PointsAmount{}, ErrNonPositivePoints.WithContext("value", value)
	}
	return NewPointsAmount(value)
}

// newPointsAmountUnchecked 內部建構函數
// 前提條件：調用者必須保證 0 <= value <= MaxPoints
func newPointsAmountUnchecked(value int) PointsAmount {
	return PointsAmount{value: value}
}

// Value 獲取積分數量
func (p PointsAmount) Value() int {
	return p.value
}

// IsZero 是否為 0
func (p PointsAmount) IsZero() bool {
	return p.value == 0
}

// Add 相加（返回新的 PointsAmount）
//
// 結果超過 MaxPoints 時返回 ErrPointsOverflow
func (p PointsAmount) Add(other PointsAmount) (PointsAmount, error) {
	if other.value > MaxPoints-p.value {
		return PointsAmount{}, ErrPointsOverflow.WithContext(
			"current", p.value,
			"adding", other.value,
		)
	}
	return newPointsAmountUnchecked(p.value + other.value), nil
}

// Subtract 相減（返回新的 PointsAmount）
// 業務規則：不能扣除超過當前數量的積分
func (p PointsAmount) Subtract(other PointsAmount) (PointsAmount, error) {
	if p.value < other.value {
		return PointsAmount{}, ErrInsufficientPoints.WithContext(
			"requested", other.value,
			"available", p.value,
		)
	}
	return newPointsAmountUnchecked(p.value - other.value), nil
}

// Equals 比較兩個 PointsAmount 是否相等
func (p PointsAmount) Equals(other PointsAmount) bool {
	return p.value == other.value
}

// GreaterThan 判斷是否大於另一個 PointsAmount
func (p PointsAmount) GreaterThan(other PointsAmount) bool {
	return p.value > other.value
}

// LessThan 判斷是否小於另一個 PointsAmount
func (p PointsAmount) LessThan(other PointsAmount) bool {
	return p.value < other.value
}

// ===========================
// TransactionType
// ===========================

// TransactionType 交易類型
type TransactionType string

const (
	TransactionTypeCredit TransactionType = "credit"
	TransactionTypeDebit  TransactionType = "debit"
)

// ParseTransactionType 從字串解析交易類型
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case TransactionTypeCredit:
		return TransactionTypeCredit, nil
	case TransactionTypeDebit:
		return TransactionTypeDebit, nil
	default:
		return "", ErrInvalidTransactionType.WithContext("value", s)
	}
}

// String 實現 fmt.Stringer
func (t TransactionType) String() string {
	return string(t)
}

// Sign 積分對餘額的影響方向：credit 為 +1，debit 為 -1
func (t TransactionType) Sign() int {
	if t == TransactionTypeDebit {
		return -1
	}
	return 1
}

// ===========================
// Description
// ===========================

// 預設交易描述
const (
	DefaultCreditDescription = "增加积分"
	DefaultDebitDescription  = "扣减积分"
	InitialCreditDescription = "初始积分设置"
	MaxDescriptionLength     = 255
)

// Description 交易描述值對象
type Description struct {
	value string
}

// NewDescription 建立交易描述
//
// 業務規則：
// - 去除前後空白後為空時，使用 fallback
// - 最多 255 個字元
func NewDescription(value, fallback string) (Description, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		trimmed = fallback
	}
	if utf8.RuneCountInString(trimmed) > MaxDescriptionLength {
		return Description{}, ErrInvalidDescription.WithContext(
			"max_length", MaxDescriptionLength,
		)
	}
	return Description{value: trimmed}, nil
}

// DefaultDescriptionFor 交易類型對應的預設描述
func DefaultDescriptionFor(t TransactionType) string {
	if t == TransactionTypeDebit {
		return DefaultDebitDescription
	}
	return DefaultCreditDescription
}

// String 返回描述文字
func (d Description) String() string {
	return d.value
}

// ===========================
// RankingLimit
// ===========================

const (
	DefaultRankingLimit = 10
	MaxRankingLimit     = 100
)

// RankingLimit 排行榜筆數
type RankingLimit struct {
	value int
}

// NewRankingLimit 0 表示使用預設值；負數為錯誤；超過上限時截斷
func NewRankingLimit(value int) (RankingLimit, error) {
	switch {
	case value < 0:
		return RankingLimit{}, ErrInvalidRankingLimit.WithContext("value", value)
	case value == 0:
		return RankingLimit{value: DefaultRankingLimit}, nil
	case value > MaxRankingLimit:
		return RankingLimit{value: MaxRankingLimit}, nil
	default:
		return RankingLimit{value: value}, nil
	}
}

// Value 返回筆數
func (l RankingLimit) Value() int {
	return l.value
}
