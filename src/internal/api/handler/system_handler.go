package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xiangzhu626/jifen/src/internal/api/response"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// healthTimeout 資料庫 ping 上限
const healthTimeout = 2 * time.Second

// SystemHandler 存活與健康檢查
type SystemHandler struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewSystemHandler(db *gorm.DB, logger *zap.Logger) *SystemHandler {
	return &SystemHandler{db: db, logger: logger}
}

// Root GET /api
func (h *SystemHandler) Root(c *gin.Context) {
	response.OKWithMessage(c, http.StatusOK, nil, "积分管理系统 API 运行中")
}

// Health GET /healthz
func (h *SystemHandler) Health(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err == nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		h.logger.Warn("health check failed", zap.Error(err))
		response.Fail(c, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	response.OK(c, gin.H{"status": "ok"})
}
