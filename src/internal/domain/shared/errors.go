package shared

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ===========================
// 錯誤分類（Error Taxonomy）
// ===========================

// ErrorKind 錯誤類別
//
// 每個 DomainError 都歸屬於一個類別，HTTP 層只依據類別決定狀態碼，
// 不需要認識每一個具體錯誤。
type ErrorKind string

const (
	KindInvalidArgument     ErrorKind = "INVALID_ARGUMENT"
	KindUnauthorized        ErrorKind = "UNAUTHORIZED"
	KindNotFound            ErrorKind = "NOT_FOUND"
	KindConflict            ErrorKind = "CONFLICT"
	KindInsufficientBalance ErrorKind = "INSUFFICIENT_BALANCE"
	KindInternal            ErrorKind = "INTERNAL"
)

// ErrorCode 具體錯誤代碼
type ErrorCode string

// DomainError 領域錯誤
//
// 設計原則：
// 1. 結構化錯誤（Kind + Code + Message + Context），不使用字串錯誤
// 2. errors.Is 依 Code 比較，附帶不同上下文的同一錯誤仍然相等
// 3. 不可變性：WithContext 返回新實例
type DomainError struct {
	Kind    ErrorKind
	Code    ErrorCode
	Message string
	Context map[string]interface{}
}

// NewDomainError 建立錯誤模板（通常在 package 層級宣告為 var）
func NewDomainError(kind ErrorKind, code ErrorCode, message string) *DomainError {
	return &DomainError{Kind: kind, Code: code, Message: message}
}

// Error 實現 error 接口
func (e *DomainError) Error() string {
	if len(e.Context) == 0 {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s (context: %s)", e.Code, e.Message, formatContext(e.Context))
}

// WithContext 添加上下文信息（返回新的錯誤實例）
//
// 使用範例：
//   return ErrMemberNotFound.WithContext("member_id", id.String())
func (e *DomainError) WithContext(keyValues ...interface{}) *DomainError {
	if len(keyValues)%2 != 0 {
		panic("WithContext requires even number of arguments (key-value pairs)")
	}

	ctx := make(map[string]interface{}, len(e.Context)+len(keyValues)/2)
	for k, v := range e.Context {
		ctx[k] = v
	}
	for i := 0; i < len(keyValues); i += 2 {
		key, ok := keyValues[i].(string)
		if !ok {
			panic(fmt.Sprintf("context key must be string, got %T", keyValues[i]))
		}
		ctx[key] = keyValues[i+1]
	}

	return &DomainError{
		Kind:    e.Kind,
		Code:    e.Code,
		Message: e.Message,
		Context: ctx,
	}
}

// Is 實現 errors.Is 接口
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// KindOf 取得錯誤類別
//
// 非 DomainError（或 nil 以外的未知錯誤）一律視為 KindInternal。
func KindOf(err error) ErrorKind {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return KindInternal
}

// formatContext 以固定順序輸出上下文，方便日誌比對
func formatContext(context map[string]interface{}) string {
	keys := make([]string, 0, len(context))
	for k := range context {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, context[k]))
	}
	return strings.Join(parts, ", ")
}
