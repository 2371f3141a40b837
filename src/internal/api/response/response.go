package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xiangzhu626/jifen/src/internal/domain/shared"
	"go.uber.org/zap"
)

// InternalErrorMessage 未分類錯誤對外顯示的訊息
const InternalErrorMessage = "服务器错误"

// Envelope 所有 API 回應的統一格式
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// OK 成功回應（200）
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// OKWithMessage 成功回應並附帶訊息
func OKWithMessage(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, Envelope{Success: true, Data: data, Message: message})
}

// Fail 失敗回應
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{Success: false, Message: message})
}

// AbortWithError 中止後續 handler 並回應錯誤（middleware 使用）
func AbortWithError(c *gin.Context, logger *zap.Logger, err error) {
	HandleServiceError(c, logger, err)
	c.Abort()
}

// StatusFor 錯誤分類對應的 HTTP 狀態碼
func StatusFor(err error) int {
	switch shared.KindOf(err) {
	case shared.KindInvalidArgument, shared.KindConflict, shared.KindInsufficientBalance:
		return http.StatusBadRequest
	case shared.KindUnauthorized:
		return http.StatusUnauthorized
	case shared.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// HandleServiceError 將 Use Case 的錯誤轉換為 HTTP 回應
//
// 領域錯誤使用其訊息；內部錯誤只回應通用訊息，詳細內容寫入日誌。
func HandleServiceError(c *gin.Context, logger *zap.Logger, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("trace_id", c.GetString(TraceIDKey)),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		Fail(c, status, InternalErrorMessage)
		return
	}

	message := err.Error()
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		message = domainErr.Message
	}
	Fail(c, status, message)
}

// TraceIDKey gin context 中 trace id 的 key
const TraceIDKey = "trace_id"
