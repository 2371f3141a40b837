package member

import "github.com/xiangzhu626/jifen/src/internal/domain/shared"

// ===========================
// Member Domain 錯誤定義
// ===========================

// Member Domain 錯誤代碼常量
const (
	ErrCodeMemberNotFound       shared.ErrorCode = "MEMBER_NOT_FOUND"
	ErrCodeInvalidMemberID      shared.ErrorCode = "MEMBER_ID_INVALID"
	ErrCodeInvalidNickname      shared.ErrorCode = "MEMBER_NICKNAME_INVALID"
	ErrCodeInvalidPlanetID      shared.ErrorCode = "MEMBER_PLANET_ID_INVALID"
	ErrCodePlanetIDAlreadyTaken shared.ErrorCode = "MEMBER_PLANET_ID_TAKEN"
	ErrCodeMemberAlreadySaved   shared.ErrorCode = "MEMBER_ALREADY_PERSISTED"
	ErrCodeRepositoryError      shared.ErrorCode = "MEMBER_REPOSITORY_ERROR"
)

// ===========================
// Member Domain 錯誤實例
// ===========================

var (
	// ErrMemberNotFound 會員不存在
	ErrMemberNotFound = shared.NewDomainError(
		shared.KindNotFound,
		ErrCodeMemberNotFound,
		"会员不存在",
	)

	// ErrInvalidMemberID 會員 ID 無效（不是正整數）
	ErrInvalidMemberID = shared.NewDomainError(
		shared.KindInvalidArgument,
		ErrCodeInvalidMemberID,
		"会员ID无效",
	)

	// ErrInvalidNickname 暱稱無效
	//
	// 觸發條件：
	// - 去除前後空白後為空字串
	// - 超過 MaxNicknameLength 個字元
	ErrInvalidNickname = shared.NewDomainError(
		shared.KindInvalidArgument,
		ErrCodeInvalidNickname,
		"会员昵称不能为空",
	)

	// ErrInvalidPlanetID 星球 ID 過長
	ErrInvalidPlanetID = shared.NewDomainError(
		shared.KindInvalidArgument,
		ErrCodeInvalidPlanetID,
		"星球ID格式无效",
	)

	// ErrPlanetIDAlreadyTaken 星球 ID 已被其他會員使用
	//
	// 由資料庫唯一約束觸發（Repository 將約束錯誤轉換為此錯誤）
	ErrPlanetIDAlreadyTaken = shared.NewDomainError(
		shared.KindConflict,
		ErrCodePlanetIDAlreadyTaken,
		"该星球ID已被使用",
	)

	// ErrMemberAlreadyPersisted 會員已有 ID，不能再次指派
	ErrMemberAlreadyPersisted = shared.NewDomainError(
		shared.KindInternal,
		ErrCodeMemberAlreadySaved,
		"会员已持久化",
	)

	// ErrRepositoryError 資料庫錯誤（非業務錯誤）
	ErrRepositoryError = shared.NewDomainError(
		shared.KindInternal,
		ErrCodeRepositoryError,
		"会员数据访问失败",
	)
)
