package admin

import "github.com/xiangzhu626/jifen/src/internal/domain/shared"

// ===========================
// Admin Domain 錯誤定義
// ===========================

const (
	ErrCodeInvalidCredentials shared.ErrorCode = "ADMIN_INVALID_CREDENTIALS"
	ErrCodeMissingToken       shared.ErrorCode = "ADMIN_TOKEN_MISSING"
	ErrCodeInvalidToken       shared.ErrorCode = "ADMIN_TOKEN_INVALID"
	ErrCodeTokenExpired       shared.ErrorCode = "ADMIN_TOKEN_EXPIRED"
	ErrCodeAdminNotFound      shared.ErrorCode = "ADMIN_NOT_FOUND"
	ErrCodeIncorrectPassword  shared.ErrorCode = "ADMIN_PASSWORD_INCORRECT"
	ErrCodeInvalidNewPassword shared.ErrorCode = "ADMIN_NEW_PASSWORD_INVALID"
	ErrCodeInvalidUsername    shared.ErrorCode = "ADMIN_USERNAME_INVALID"
	ErrCodeUsernameTaken      shared.ErrorCode = "ADMIN_USERNAME_TAKEN"
	ErrCodeMissingCredentials shared.ErrorCode = "ADMIN_CREDENTIALS_MISSING"
	ErrCodeRepositoryError    shared.ErrorCode = "ADMIN_REPOSITORY_ERROR"
)

var (
	// ErrInvalidCredentials 用戶名或密碼錯誤
	//
	// 用戶不存在與密碼錯誤使用同一個錯誤，避免洩漏帳號是否存在。
	ErrInvalidCredentials = shared.NewDomainError(
		shared.KindUnauthorized,
		ErrCodeInvalidCredentials,
		"用户名或密码错误",
	)

	// ErrMissingCredentials 登入時用戶名或密碼為空
	ErrMissingCredentials = shared.NewDomainError(
		shared.KindInvalidArgument,
		ErrCodeMissingCredentials,
		"用户名和密码不能为空",
	)

	ErrMissingToken = shared.NewDomainError(
		shared.KindUnauthorized,
		ErrCodeMissingToken,
		"未提供认证令牌",
	)

	ErrInvalidToken = shared.NewDomainError(
		shared.KindUnauthorized,
		ErrCodeInvalidToken,
		"无效的认证令牌",
	)

	ErrTokenExpired = shared.NewDomainError(
		shared.KindUnauthorized,
		ErrCodeTokenExpired,
		"认证令牌已过期",
	)

	// ErrAdminNotFound 管理員不存在
	//
	// 驗證令牌時若管理員已被刪除，上層會轉換為 ErrInvalidToken。
	ErrAdminNotFound = shared.NewDomainError(
		shared.KindNotFound,
		ErrCodeAdminNotFound,
		"管理员不存在",
	)

	// ErrIncorrectPassword 修改密碼時當前密碼錯誤
	ErrIncorrectPassword = shared.NewDomainError(
		shared.KindInvalidArgument,
		ErrCodeIncorrectPassword,
		"当前密码错误",
	)

	// ErrInvalidNewPassword 新密碼不符合規則
	ErrInvalidNewPassword = shared.NewDomainError(
		shared.KindInvalidArgument,
		ErrCodeInvalidNewPassword,
		"新密码长度不能少于6位",
	)

	ErrInvalidUsername = shared.NewDomainError(
		shared.KindInvalidArgument,
		ErrCodeInvalidUsername,
		"用户名不能为空",
	)

	ErrUsernameTaken = shared.NewDomainError(
		shared.KindConflict,
		ErrCodeUsernameTaken,
		"用户名已存在",
	)

	ErrRepositoryError = shared.NewDomainError(
		shared.KindInternal,
		ErrCodeRepositoryError,
		"管理员数据访问失败",
	)
)
