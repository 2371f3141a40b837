package points

import "github.com/xiangzhu626/jifen/src/internal/domain/shared"

// ===========================
// 錯誤代碼定義
// ===========================

const (
	// 積分數量相關
	ErrCodeNegativePointsAmount ErrorCode = "POINTS_NEGATIVE"
	ErrCodeNonPositivePoints    ErrorCode = "POINTS_NON_POSITIVE"
	ErrCodeInsufficientPoints   ErrorCode = "POINTS_INSUFFICIENT"
	ErrCodePointsOverflow       ErrorCode = "POINTS_OVERFLOW"

	// 交易相關
	ErrCodeInvalidTransactionType ErrorCode = "TRANSACTION_TYPE_INVALID"
	ErrCodeInvalidDescription     ErrorCode = "TRANSACTION_DESCRIPTION_INVALID"
	ErrCodeInvalidDateRange       ErrorCode = "TRANSACTION_DATE_RANGE_INVALID"

	// 帳戶相關
	ErrCodeInvalidMemberID      ErrorCode = "POINTS_MEMBER_ID_INVALID"
	ErrCodeAccountNotFound      ErrorCode = "ACCOUNT_NOT_FOUND"
	ErrCodeAccountAlreadyExists ErrorCode = "ACCOUNT_ALREADY_EXISTS"
	ErrCodePlanetIDNotFound     ErrorCode = "PLANET_ID_NOT_FOUND"
	ErrCodeInvalidPlanetIDQuery ErrorCode = "PLANET_ID_REQUIRED"
	ErrCodeInvalidRankingLimit  ErrorCode = "RANKING_LIMIT_INVALID"
	ErrCodeRepositoryError      ErrorCode = "POINTS_REPOSITORY_ERROR"
)

// ErrorCode 錯誤代碼類型
type ErrorCode = shared.ErrorCode

// ===========================
// 預定義錯誤
// ===========================

// 積分數量相關錯誤
var (
	ErrNegativePointsAmount = shared.NewDomainError(
		shared.KindInvalidArgument,
		ErrCodeNegativePointsAmount,
		"积分数量不能为负数",
	)

	// ErrNonPositivePoints 增加 / 扣減的積分必須大於 0
	ErrNonPositivePoints = shared.NewDomainError(
		shared.KindInvalidArgument,
		ErrCodeNonPositivePoints,
		"积分必须大于0",
	)

	ErrInsufficientPoints = shared.NewDomainError(
		shared.KindInsufficientBalance,
		ErrCodeInsufficientPoints,
		"积分不足",
	)

	ErrPointsOverflow = shared.NewDomainError(
		shared.KindInvalidArgument,
		ErrCodePointsOverflow,
		"积分数量超出上限",
	)
)

// 交易相關錯誤
var (
	ErrInvalidTransactionType = shared.NewDomainError(
		shared.KindInvalidArgument,
		ErrCodeInvalidTransactionType,
		"无效的交易类型",
	)

	ErrInvalidDescription = shared.NewDomainError(
		shared.KindInvalidArgument,
		ErrCodeInvalidDescription,
		"交易描述过长",
	)

	// ErrInvalidDateRange 日期格式錯誤（YYYY-MM-DD）或起日晚於迄日
	ErrInvalidDateRange = shared.NewDomainError(
		shared.KindInvalidArgument,
		ErrCodeInvalidDateRange,
		"日期范围无效",
	)
)

// 帳戶相關錯誤
var (
	ErrInvalidMemberID = shared.NewDomainError(
		shared.KindInvalidArgument,
		ErrCodeInvalidMemberID,
		"会员ID无效",
	)

	ErrAccountNotFound = shared.NewDomainError(
		shared.KindNotFound,
		ErrCodeAccountNotFound,
		"未找到该会员的积分账户",
	)

	ErrAccountAlreadyExists = shared.NewDomainError(
		shared.KindConflict,
		ErrCodeAccountAlreadyExists,
		"积分账户已存在",
	)

	ErrPlanetIDNotFound = shared.NewDomainError(
		shared.KindNotFound,
		ErrCodePlanetIDNotFound,
		"未找到该星球ID对应的会员",
	)

	ErrPlanetIDRequired = shared.NewDomainError(
		shared.KindInvalidArgument,
		ErrCodeInvalidPlanetIDQuery,
		"星球ID不能为空",
	)

	ErrInvalidRankingLimit = shared.NewDomainError(
		shared.KindInvalidArgument,
		ErrCodeInvalidRankingLimit,
		"排行榜数量无效",
	)

	// ErrRepositoryError 資料庫錯誤（保留原始錯誤訊息於 context）
	ErrRepositoryError = shared.NewDomainError(
		shared.KindInternal,
		ErrCodeRepositoryError,
		"积分数据访问失败",
	)
)
